package forms

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"fmt"
	"strings"
)

type ValidationError struct {
	Rule    string `json:"rule"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) CustomError() *exceptions.CustomError {
	return exceptions.ErrFormRule(e.Rule, e.Field, e.Message)
}

type rule func(schema *models.FormSchema, draft *models.FormDraft) *ValidationError

// signupRules run in this order and the first failure wins.
var signupRules = []rule{
	checkRequiredFields,
	checkPasswordsMatch,
	checkPasswordLength,
	checkEmailShape,
	checkTermsAccepted,
	checkRoleConstraints,
	checkOptions,
}

// roleConstraints hold the checks only some roles have.
var roleConstraints = map[models.Role][]rule{
	models.RoleLab: {checkTestsOffered},
}

// Validate returns nil when draft satisfies schema, otherwise the first
// violated rule. It performs no I/O and never mutates draft.
func Validate(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	for _, check := range signupRules {
		if err := check(schema, draft); err != nil {
			return err
		}
	}
	return nil
}

func checkRequiredFields(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	for _, field := range schema.Fields {
		if !field.Required || !field.Kind.IsValue() {
			continue
		}
		if err := utils.ValidateVar(draft.Value(field.Name), "required"); err != nil {
			return &ValidationError{Rule: constvars.RuleMissingRequiredField, Field: field.Name, Message: constvars.FormMessageRequiredFields}
		}
	}
	return nil
}

func checkPasswordsMatch(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	if _, ok := schema.Field(models.FieldConfirmPassword); !ok {
		return nil
	}
	if draft.Value(models.FieldPassword) != draft.Value(models.FieldConfirmPassword) {
		return &ValidationError{Rule: constvars.RulePasswordMismatch, Field: models.FieldConfirmPassword, Message: constvars.FormMessagePasswordsDoNotMatch}
	}
	return nil
}

func checkPasswordLength(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	if _, ok := schema.Field(models.FieldPassword); !ok {
		return nil
	}
	if err := utils.ValidateVar(draft.Value(models.FieldPassword), "min=8"); err != nil {
		return &ValidationError{Rule: constvars.RulePasswordTooShort, Field: models.FieldPassword, Message: constvars.FormMessagePasswordTooShort}
	}
	return nil
}

func checkEmailShape(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	if _, ok := schema.Field(models.FieldEmail); !ok {
		return nil
	}
	if err := utils.ValidateVar(draft.Value(models.FieldEmail), "portal_email"); err != nil {
		return &ValidationError{Rule: constvars.RuleMalformedEmail, Field: models.FieldEmail, Message: constvars.FormMessageInvalidEmail}
	}
	return nil
}

func checkTermsAccepted(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	if _, ok := schema.Field(models.FieldAgreeToTerms); !ok {
		return nil
	}
	if !draft.Flags[models.FieldAgreeToTerms] {
		return &ValidationError{Rule: constvars.RuleTermsNotAccepted, Field: models.FieldAgreeToTerms, Message: constvars.FormMessageTermsNotAccepted}
	}
	return nil
}

func checkRoleConstraints(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	for _, check := range roleConstraints[schema.Role] {
		if err := check(schema, draft); err != nil {
			return err
		}
	}
	return nil
}

func checkTestsOffered(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	if len(draft.Selections[models.FieldTestsOffered]) == 0 {
		return &ValidationError{Rule: constvars.RuleRoleConstraintViolation, Field: models.FieldTestsOffered, Message: constvars.FormMessageNoTestsOffered}
	}
	return nil
}

// checkOptions rejects select values and selections that are not offered by
// the field. Empty optional selects are fine.
func checkOptions(schema *models.FormSchema, draft *models.FormDraft) *ValidationError {
	for _, field := range schema.Fields {
		switch field.Kind {
		case models.FieldKindSelect:
			value := draft.Value(field.Name)
			if value != "" && !field.HasOption(value) {
				return invalidOption(field)
			}
		case models.FieldKindMultiSelect:
			for _, selected := range draft.Selections[field.Name] {
				if !field.HasOption(selected) {
					return invalidOption(field)
				}
			}
		}
	}
	return nil
}

func invalidOption(field models.FormField) *ValidationError {
	return &ValidationError{
		Rule:    constvars.RuleInvalidOption,
		Field:   field.Name,
		Message: fmt.Sprintf(constvars.FormMessageInvalidOption, strings.ToLower(field.Label)),
	}
}
