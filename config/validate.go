package config

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/demokit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateStruct runs struct tag validation and converts failures into
// an INVALID_CONFIG AppError listing the offending fields.
func validateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InvalidConfig("configuration validation failed").WithCause(err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Namespace()+": failed "+e.Tag())
	}
	return errors.InvalidConfig(strings.Join(messages, "; "))
}
