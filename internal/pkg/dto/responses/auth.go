package responses

import (
	"curasync-service/internal/app/models"
	"time"
)

type Login struct {
	Token     string      `json:"token"`
	Role      models.Role `json:"role"`
	Email     string      `json:"email"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type Signup struct {
	Receipt    *models.AccountReceipt `json:"receipt"`
	State      string                 `json:"state"`
	RedirectTo string                 `json:"redirect_to"`
}
