package parsing

import "fmt"

// ConfigError reports a parser option that cannot be applied, such as an
// unknown section name in a keyword override
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parser config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parser config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
