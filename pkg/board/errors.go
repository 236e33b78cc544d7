package board

import "fmt"

// ConfigurationError is returned when a board is requested with dimensions or
// a mine density that the engine cannot represent.
type ConfigurationError struct {
	Field   string
	Value   int
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid board configuration: %s=%d: %s", e.Field, e.Value, e.Message)
}
