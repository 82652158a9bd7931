package types

// Uncertainty flags one field of one parsed entry as low confidence.
// EntryIndex is the position of the entry in the parsed array, not its ID.
type Uncertainty struct {
	EntryIndex int    `json:"entryIndex"`
	Field      string `json:"field"`
	Reason     string `json:"reason"`
}
