package accounts

import (
	"curasync-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAccount(t *testing.T) {
	account := buildAccount("acc-1", doctorDraft())

	assert.Equal(t, "acc-1", account.ID)
	assert.Equal(t, "jane@curasync.test", account.Email)
	assert.Equal(t, "Dr. Jane Doe", account.DisplayName)
	assert.Equal(t, "+62 812 3456 7890", account.PhoneNumber)
	assert.Equal(t, "cardiology", account.Profile[models.FieldSpecialization])
	assert.NotContains(t, account.Profile, models.FieldPassword)
	assert.NotContains(t, account.Profile, models.FieldConfirmPassword)
	assert.NotContains(t, account.Profile, models.FieldHospitalName)
	assert.True(t, account.Flags[models.FieldAgreeToTerms])
	assert.False(t, account.CreatedAt.IsZero())
}

func TestDisplayName(t *testing.T) {
	t.Run("Organisation name", func(t *testing.T) {
		draft := models.NewFormDraft(models.RolePharmacy)
		draft.Values[models.FieldPharmacyName] = "Corner Pharmacy"

		assert.Equal(t, "Corner Pharmacy", displayName(draft))
	})

	t.Run("Falls back to email", func(t *testing.T) {
		draft := models.NewFormDraft(models.RoleLab)
		draft.Values[models.FieldEmail] = "lab@curasync.test"

		assert.Equal(t, "lab@curasync.test", displayName(draft))
	})
}
