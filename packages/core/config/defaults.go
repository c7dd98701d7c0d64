package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Format:        FormatText,
		DefaultMethod: "",
		BodySchema:    "",
		NoColor:       BoolPtr(false),
		PrettyBody:    BoolPtr(true),
		Verbose:       BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Format == defaults.Format &&
		c.DefaultMethod == defaults.DefaultMethod &&
		c.BodySchema == defaults.BodySchema &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetPrettyBody() == defaults.GetPrettyBody() &&
		c.GetVerbose() == defaults.GetVerbose()
}
