package bench

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/HatiCode/jsondate/pkg/logging"
)

const DefaultIterations = 10000

type Config struct {
	Iterations int             `yaml:"iterations" json:"iterations" validate:"required,min=1" default:"10000"`
	Prefix     string          `yaml:"prefix" json:"prefix" validate:"omitempty,printascii"`
	Logging    *logging.Config `yaml:"logging" json:"logging" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid bench config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid bench config: %w", err)
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Iterations: DefaultIterations,
		Logging:    logging.DefaultConfig(),
	}
}
