package config

import (
	"github.com/skillsenselab/demokit/errors"
	"github.com/skillsenselab/demokit/logger"
)

// Config is the root configuration for the demokit binary.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Runner  RunnerConfig  `yaml:"runner" mapstructure:"runner"`
}

// RunnerConfig configures the demonstration run itself.
type RunnerConfig struct {
	// Only restricts the run to the named units. Empty means all.
	Only []string `yaml:"only" mapstructure:"only"`
	// Output selects where demonstration text goes.
	Output string `yaml:"output" mapstructure:"output" validate:"omitempty,oneof=stdout stderr"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Runner.Output == "" {
		c.Runner.Output = "stdout"
	}
}

// Validate validates all sections, combining struct tag validation
// with the logging section's own rules.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}
