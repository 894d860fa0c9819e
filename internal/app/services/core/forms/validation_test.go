package forms

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(Limits{ProfilePictureMaxMB: 5, DocumentMaxMB: 10})
}

// validDraft returns a draft that passes every rule for role.
func validDraft(role models.Role) *models.FormDraft {
	draft := models.NewFormDraft(role)
	draft.Values[models.FieldEmail] = "owner@curasync.test"
	draft.Values[models.FieldPassword] = "s3cure-pass"
	draft.Values[models.FieldConfirmPassword] = "s3cure-pass"
	draft.Values[models.FieldPhoneNumber] = "+62 812 3456 7890"
	draft.Flags[models.FieldAgreeToTerms] = true

	switch role {
	case models.RoleDoctor:
		draft.Values[models.FieldFullName] = "Dr. Jane Doe"
		draft.Values[models.FieldLicenseNumber] = "MD-12345"
		draft.Values[models.FieldSpecialization] = "cardiology"
		draft.Values[models.FieldYearsExperience] = "12"
		draft.Values[models.FieldConsultationFees] = "150"
		draft.Values[models.FieldWorkAddress] = "1 Heart St"
		draft.Values[models.FieldAvailabilityHours] = "Mon-Fri 9AM-5PM"
	case models.RolePatient:
		draft.Values[models.FieldFullName] = "John Roe"
		draft.Values[models.FieldDateOfBirth] = "1990-04-01"
		draft.Values[models.FieldGender] = "male"
		draft.Values[models.FieldBloodGroup] = "AB-"
		draft.Values[models.FieldAddress] = "2 Elm Rd"
		draft.Values[models.FieldEmergencyContactName] = "Mary Roe"
		draft.Values[models.FieldEmergencyContactPhone] = "+62 811 0000 0000"
	case models.RoleLab:
		draft.Values[models.FieldLaboratoryName] = "Central Lab"
		draft.Values[models.FieldLabRegistrationNumber] = "LAB-77"
		draft.Values[models.FieldAddress] = "3 Test Ave"
		draft.Values[models.FieldWorkingHours] = "Mon-Sat 7AM-7PM"
		draft.Toggle(models.FieldTestsOffered, "MRI")
	case models.RolePharmacy:
		draft.Values[models.FieldPharmacyName] = "Corner Pharmacy"
		draft.Values[models.FieldPharmacyRegistrationNumber] = "PH-1"
		draft.Values[models.FieldPharmacyLicenseNumber] = "PL-2"
		draft.Values[models.FieldPharmacistName] = "Ann Lee"
		draft.Values[models.FieldPharmacistLicenseNumber] = "PHL-3"
		draft.Values[models.FieldAddress] = "4 Pill Ln"
		draft.Values[models.FieldOpeningHours] = "9:00 AM"
		draft.Values[models.FieldClosingHours] = "6:00 PM"
	}
	return draft
}

func signupSchema(t *testing.T, role models.Role) *models.FormSchema {
	schema, err := newTestRegistry().SignupSchema(role)
	require.NoError(t, err)
	return schema
}

func TestValidateValidDrafts(t *testing.T) {
	for _, role := range models.Roles {
		t.Run(role.String(), func(t *testing.T) {
			assert.Nil(t, Validate(signupSchema(t, role), validDraft(role)))
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	for _, role := range models.Roles {
		schema := signupSchema(t, role)
		for _, field := range schema.Fields {
			if !field.Required || !field.Kind.IsValue() {
				continue
			}
			t.Run(role.String()+"/"+field.Name, func(t *testing.T) {
				draft := validDraft(role)
				delete(draft.Values, field.Name)
				// Every later rule is broken too, the required rule still wins.
				draft.Values[models.FieldConfirmPassword] = "different"
				draft.Flags[models.FieldAgreeToTerms] = false

				result := Validate(schema, draft)

				require.NotNil(t, result)
				assert.Equal(t, constvars.RuleMissingRequiredField, result.Rule)
				assert.Equal(t, "All required fields must be filled", result.Message)
			})
		}
	}

	t.Run("Optional fields may be empty", func(t *testing.T) {
		draft := validDraft(models.RolePatient)
		delete(draft.Values, models.FieldHealthInsurance)
		delete(draft.Values, models.FieldMedicalHistory)

		assert.Nil(t, Validate(signupSchema(t, models.RolePatient), draft))
	})
}

func TestValidatePasswordMismatch(t *testing.T) {
	for _, role := range models.Roles {
		t.Run(role.String(), func(t *testing.T) {
			draft := validDraft(role)
			draft.Values[models.FieldConfirmPassword] = "s3cure-pasS"
			draft.Values[models.FieldEmail] = "broken"
			draft.Flags[models.FieldAgreeToTerms] = false

			result := Validate(signupSchema(t, role), draft)

			require.NotNil(t, result)
			assert.Equal(t, constvars.RulePasswordMismatch, result.Rule)
			assert.Equal(t, "Passwords do not match", result.Message)
		})
	}
}

func TestValidatePasswordLength(t *testing.T) {
	schema := signupSchema(t, models.RoleDoctor)

	t.Run("Seven characters", func(t *testing.T) {
		draft := validDraft(models.RoleDoctor)
		draft.Values[models.FieldPassword] = "1234567"
		draft.Values[models.FieldConfirmPassword] = "1234567"

		result := Validate(schema, draft)

		require.NotNil(t, result)
		assert.Equal(t, "Password must be at least 8 characters long", result.Message)
	})

	t.Run("Eight characters", func(t *testing.T) {
		draft := validDraft(models.RoleDoctor)
		draft.Values[models.FieldPassword] = "12345678"
		draft.Values[models.FieldConfirmPassword] = "12345678"

		assert.Nil(t, Validate(schema, draft))
	})

	t.Run("Length counts characters", func(t *testing.T) {
		draft := validDraft(models.RoleDoctor)
		draft.Values[models.FieldPassword] = "ééééééé"
		draft.Values[models.FieldConfirmPassword] = "ééééééé"

		result := Validate(schema, draft)

		require.NotNil(t, result)
		assert.Equal(t, constvars.RulePasswordTooShort, result.Rule)
	})
}

func TestValidateEmailShape(t *testing.T) {
	schema := signupSchema(t, models.RolePharmacy)

	for _, email := range []string{"plainaddress", "a@b", "abc", "a b@c.co", "a@b.", "@b.co"} {
		t.Run(email, func(t *testing.T) {
			draft := validDraft(models.RolePharmacy)
			draft.Values[models.FieldEmail] = email

			result := Validate(schema, draft)

			require.NotNil(t, result)
			assert.Equal(t, constvars.RuleMalformedEmail, result.Rule)
			assert.Equal(t, "Please enter a valid email address", result.Message)
		})
	}

	unicodeSpaces := map[string]string{
		"No-break space":    "jane\u00a0doe@x.com",
		"Vertical tab":      "jane\vdoe@x.com",
		"Em space":          "jane\u2003doe@x.com",
		"Byte order mark":   "\ufeffjane@x.com",
		"Ideographic space": "jane@x\u3000.com",
	}
	for name, email := range unicodeSpaces {
		t.Run(name, func(t *testing.T) {
			draft := validDraft(models.RolePharmacy)
			draft.Values[models.FieldEmail] = email

			result := Validate(schema, draft)

			require.NotNil(t, result)
			assert.Equal(t, constvars.RuleMalformedEmail, result.Rule)
		})
	}

	for _, email := range []string{"a@b.co", "first.last@sub.domain.org", "x+y@z.io"} {
		t.Run(email, func(t *testing.T) {
			draft := validDraft(models.RolePharmacy)
			draft.Values[models.FieldEmail] = email

			assert.Nil(t, Validate(schema, draft))
		})
	}
}

func TestValidateTerms(t *testing.T) {
	draft := validDraft(models.RolePatient)
	draft.Flags[models.FieldAgreeToTerms] = false

	result := Validate(signupSchema(t, models.RolePatient), draft)

	require.NotNil(t, result)
	assert.Equal(t, constvars.RuleTermsNotAccepted, result.Rule)
	assert.Equal(t, "You must agree to the terms and conditions", result.Message)
}

func TestValidateLabTestsOffered(t *testing.T) {
	schema := signupSchema(t, models.RoleLab)

	t.Run("Empty selection fails", func(t *testing.T) {
		draft := validDraft(models.RoleLab)
		draft.Toggle(models.FieldTestsOffered, "MRI")

		result := Validate(schema, draft)

		require.NotNil(t, result)
		assert.Equal(t, constvars.RuleRoleConstraintViolation, result.Rule)
		assert.Equal(t, "Please select at least one test offered", result.Message)
	})

	t.Run("One test passes", func(t *testing.T) {
		draft := validDraft(models.RoleLab)
		draft.Selections[models.FieldTestsOffered] = nil
		draft.Toggle(models.FieldTestsOffered, "ECG")

		assert.Nil(t, Validate(schema, draft))
	})

	t.Run("Terms are checked before tests", func(t *testing.T) {
		draft := validDraft(models.RoleLab)
		draft.Selections[models.FieldTestsOffered] = nil
		draft.Flags[models.FieldAgreeToTerms] = false

		result := Validate(schema, draft)

		require.NotNil(t, result)
		assert.Equal(t, constvars.RuleTermsNotAccepted, result.Rule)
	})

	t.Run("Other roles have no test constraint", func(t *testing.T) {
		assert.Nil(t, Validate(signupSchema(t, models.RoleDoctor), validDraft(models.RoleDoctor)))
	})
}

func TestValidateOptions(t *testing.T) {
	t.Run("Unknown specialization", func(t *testing.T) {
		draft := validDraft(models.RoleDoctor)
		draft.Values[models.FieldSpecialization] = "astrology"

		result := Validate(signupSchema(t, models.RoleDoctor), draft)

		require.NotNil(t, result)
		assert.Equal(t, constvars.RuleInvalidOption, result.Rule)
		assert.Equal(t, "Please select a valid specialization", result.Message)
	})

	t.Run("Unknown test", func(t *testing.T) {
		draft := validDraft(models.RoleLab)
		draft.Toggle(models.FieldTestsOffered, "Tarot Reading")

		result := Validate(signupSchema(t, models.RoleLab), draft)

		require.NotNil(t, result)
		assert.Equal(t, models.FieldTestsOffered, result.Field)
		assert.Equal(t, "Please select a valid tests offered", result.Message)
	})
}

func TestValidateDoesNotMutateDraft(t *testing.T) {
	draft := validDraft(models.RoleLab)
	draft.Values[models.FieldPassword] = "short"
	before := draft.Clone()

	Validate(signupSchema(t, models.RoleLab), draft)

	assert.Equal(t, before.Values, draft.Values)
	assert.Equal(t, before.Flags, draft.Flags)
	assert.Equal(t, before.Selections, draft.Selections)
}

func TestValidationErrorCustomError(t *testing.T) {
	result := &ValidationError{Rule: constvars.RulePasswordMismatch, Field: models.FieldConfirmPassword, Message: constvars.FormMessagePasswordsDoNotMatch}

	customErr := result.CustomError()

	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Passwords do not match", customErr.ClientMessage)
	assert.Equal(t, "Passwords do not match", result.Error())
}
