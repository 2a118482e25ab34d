package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/dailyworkout/internal/models"
	"github.com/julianstephens/dailyworkout/internal/rules"
	"github.com/julianstephens/dailyworkout/internal/utils"
)

// Validator validates user-supplied configuration and catalog data
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	validate := validator.New()

	// Rule names must match a built-in rule
	_ = validate.RegisterValidation("rule", func(fl validator.FieldLevel) bool {
		return slices.Contains(rules.Names(), fl.Field().String())
	})

	// IANA zone names plus "Local" for the system zone
	_ = validate.RegisterValidation("tz", func(fl validator.FieldLevel) bool {
		return utils.ValidateTimezone(fl.Field().String())
	})

	// Use JSON field names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// FieldError maps field names to human-readable problems
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &FieldError{Fields: fields}
}

// ValidateLocation checks that a location has a name and real coordinates.
func (v *Validator) ValidateLocation(loc models.Location) error {
	return v.Struct(loc)
}

// ValidateSettings checks timezone, preview length and rule names.
func (v *Validator) ValidateSettings(settings models.Settings) error {
	return v.Struct(settings)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "tz":
		return fmt.Sprintf("unknown timezone %q", fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "rule":
		return fmt.Sprintf("unknown rule %q (known: %s)", fe.Value(), strings.Join(rules.Names(), ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
