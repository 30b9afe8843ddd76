package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	mu       sync.Mutex
	instance *validator.Validate
	errors   map[string]any
}

var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

func GetDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MakeValidatorFrom(
			validator.New(validator.WithRequiredStructEnabled()),
		)
	})

	return defaultValidator
}

// MakeValidatorFrom wraps the given engine, reporting fields by their json
// name when one is declared.
func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	abstract.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	registerCustomValidations(abstract)

	return &Validator{
		instance: abstract,
		errors:   make(map[string]any),
	}
}

func (v *Validator) Passes(data any) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.errors = make(map[string]any)

	err := v.instance.Struct(data)
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false, err
	}

	for _, current := range validationErrors {
		v.errors[current.Field()] = describe(current)
	}

	return false, fmt.Errorf("validation failed: %w", err)
}

func (v *Validator) Rejects(data any) (bool, error) {
	passes, err := v.Passes(data)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string]any, len(v.errors))
	for key, value := range v.errors {
		out[key] = value
	}

	return out
}

func (v *Validator) GetErrorsAsJson() string {
	content, err := json.Marshal(v.GetErrors())
	if err != nil {
		return ""
	}

	return string(content)
}

func describe(field validator.FieldError) string {
	switch field.Tag() {
	case "required", "required_if":
		return "the field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", field.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", field.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", field.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", field.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", field.Param())
	default:
		return fmt.Sprintf("failed the [%s] rule", field.Tag())
	}
}

// Inspect validates data and returns the per-field failures without touching
// the shared error state, so it is safe to call from concurrent handlers.
func (v *Validator) Inspect(data any) (map[string]any, error) {
	err := v.instance.Struct(data)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}

	out := make(map[string]any, len(validationErrors))
	for _, current := range validationErrors {
		out[current.Field()] = describe(current)
	}

	return out, nil
}
