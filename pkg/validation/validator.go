package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxNameLength bounds node names in scenario files.
const MaxNameLength = 64

var (
	validate = newValidator()

	namePattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	err := v.RegisterValidation("nodename", func(fl validator.FieldLevel) bool {
		return ValidateName(fl.Field().String()) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register nodename: %v", err))
	}
	return v
}

// Struct validates s against its `validate` tags and reports the first
// failure with its yaml field path.
func Struct(s any) error {
	if s == nil {
		return errors.New("validation: nil value")
	}
	return formatValidationError(validate.Struct(s))
}

// ValidateName checks a node name: non-empty, bounded, and drawn from
// letters, digits and `_.:-`.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name %q exceeds maximum length of %d characters", name, MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name %q contains invalid characters", name)
	}
	return nil
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	e := validationErrs[0]
	field := trimRoot(e.Namespace())
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Errorf("%s: must not exceed %s", field, e.Param())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
	case "nodename":
		return fmt.Errorf("%s: invalid name %q", field, e.Value())
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}

// trimRoot drops the struct type name from a validator namespace.
func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
