package roles

import "curasync-service/internal/app/models"

var cards = []models.RoleCard{
	newCard(models.RoleDoctor, "FaUserMd", "Medical professional account"),
	newCard(models.RolePatient, "FaUser", "Patient account for appointments"),
	newCard(models.RoleLab, "FaFlask", "Lab testing facility account"),
	newCard(models.RolePharmacy, "FaPrescriptionBottleAlt", "Pharmacy store account"),
}

func newCard(role models.Role, icon, description string) models.RoleCard {
	return models.RoleCard{
		Role:        role,
		Title:       role.Title(),
		Icon:        icon,
		Description: description,
		AriaLabel:   "Sign in as a " + role.Title(),
		LoginPath:   role.Path(models.ActionLogin),
		SignupPath:  role.Path(models.ActionSignup),
	}
}

// Cards returns the role cards in display order.
func Cards() []models.RoleCard {
	return append([]models.RoleCard(nil), cards...)
}

func FindCard(role models.Role) (models.RoleCard, bool) {
	for _, card := range cards {
		if card.Role == role {
			return card, true
		}
	}
	return models.RoleCard{}, false
}
