package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the loaded configuration for out-of-range values.
// Returns a descriptive error naming the first offending field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return fmt.Errorf("invalid configuration: field %s failed %q validation (value %v)",
			e.Field(), e.Tag(), e.Value())
	}
	return fmt.Errorf("invalid configuration: %w", err)
}
