package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes perft reports as JSON instead of a table.
	JSONFormat bool

	// ShowBoard prints the position after the setup moves (and after each
	// move in play mode).
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
