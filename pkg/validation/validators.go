package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// ASCII letters, whitespace and the punctuation found in names: - ' .
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("person_name", PersonName)
}

// UseFieldNames makes FieldError.Field() report the field tag name, or the
// json tag name when there is none ("email" instead of "Email").
func UseFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name, ok := fld.Tag.Lookup("field"); ok {
			return name
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// PersonName validates that a string contains only letters, spaces, hyphens,
// apostrophes and periods
func PersonName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use min or required if needed
	}
	return personNameRegex.MatchString(val)
}
