package types

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation tags registered on fieldValidate, one per field type.
const (
	tagPersonName    = "personname"
	tagPersonPhone   = "personphone"
	tagPersonEmail   = "personemail"
	tagPersonAddress = "personaddress"
	tagTagName       = "tagname"
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex   = regexp.MustCompile(`^\d{3,}$`)
	emailRegex   = regexp.MustCompile(`^[\w.]+@[\w.]+$`)
	addressRegex = regexp.MustCompile(`^\S.*$`)
	tagRegex     = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
)

// fieldValidate is shared by all field constructors. validator.Validate is
// safe for concurrent use once registration in init has finished.
var fieldValidate *validator.Validate

func init() {
	fieldValidate = validator.New()
	mustRegisterPattern(tagPersonName, nameRegex)
	mustRegisterPattern(tagPersonPhone, phoneRegex)
	mustRegisterPattern(tagPersonEmail, emailRegex)
	mustRegisterPattern(tagPersonAddress, addressRegex)
	mustRegisterPattern(tagTagName, tagRegex)
}

func mustRegisterPattern(tag string, re *regexp.Regexp) {
	err := fieldValidate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// checkField validates raw against the registered tag and converts any
// validator failure into an *IllegalValueError carrying constraint.
func checkField(field, tag, raw, constraint string) error {
	if err := fieldValidate.Var(raw, "required,"+tag); err != nil {
		return &IllegalValueError{Field: field, Value: raw, Constraint: constraint}
	}
	return nil
}
