package auth

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/utils"
)

// ValidateLogin checks email presence, then password presence, then email
// shape, and returns the first failure.
func ValidateLogin(request *requests.Login) *forms.ValidationError {
	if request == nil {
		request = &requests.Login{}
	}
	if err := utils.ValidateVar(request.Email, "required"); err != nil {
		return &forms.ValidationError{Rule: constvars.RuleMissingRequiredField, Field: models.FieldEmail, Message: constvars.FormMessageEmailRequired}
	}
	if err := utils.ValidateVar(request.Password, "required"); err != nil {
		return &forms.ValidationError{Rule: constvars.RuleMissingRequiredField, Field: models.FieldPassword, Message: constvars.FormMessagePasswordRequired}
	}
	if err := utils.ValidateVar(request.Email, "portal_email"); err != nil {
		return &forms.ValidationError{Rule: constvars.RuleMalformedEmail, Field: models.FieldEmail, Message: constvars.FormMessageInvalidEmail}
	}
	return nil
}
