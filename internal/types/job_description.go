package types

// JobDescription is the structured job posting returned by the extraction service.
// It is stored as plain data.
type JobDescription struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	SalaryMin        *float64 `json:"salaryMin,omitempty"`
	SalaryMax        *float64 `json:"salaryMax,omitempty"`
	SalaryCurrency   string   `json:"salaryCurrency,omitempty"`
	SalaryRateType   string   `json:"salaryRateType,omitempty"` // hourly, daily, monthly, yearly
	PresenceType     string   `json:"presenceType,omitempty"`   // onsite, hybrid, remote
	ContractType     string   `json:"contractType,omitempty"`
	RequiredSkills   []string `json:"requiredSkills"`
	NiceToHaveSkills []string `json:"niceToHaveSkills"`
	Perks            []string `json:"perks"`
}

// HasSalary reports whether any salary bound was extracted
func (j *JobDescription) HasSalary() bool {
	return j.SalaryMin != nil || j.SalaryMax != nil
}
