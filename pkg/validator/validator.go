package validator

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the app's custom tags on the given
// validator instance.
func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("skillname", validateSkillName)
}

// RegisterGinValidations installs the custom tags on gin's binding engine
// so they work inside binding struct tags.
func RegisterGinValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidations(v)
	}
}

// validateSkillName accepts short human-readable skill names: non-empty,
// at most 50 characters, printable, no leading or trailing space.
func validateSkillName(fl validator.FieldLevel) bool {
	return ValidSkillName(fl.Field().String())
}

func ValidSkillName(name string) bool {
	if name == "" || len(name) > 50 {
		return false
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
