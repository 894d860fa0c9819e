package utils

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	portalEmailPattern = regexp.MustCompile(constvars.RegexPortalEmail)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("portal_email", validatePortalEmail)
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against validator tags, e.g. "required,min=8".
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func validatePortalEmail(fl validator.FieldLevel) bool {
	return portalEmailPattern.MatchString(fl.Field().String())
}

func validateRole(fl validator.FieldLevel) bool {
	_, ok := models.ParseRole(fl.Field().String())
	return ok
}
