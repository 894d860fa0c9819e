package contracts

import (
	"context"
	"curasync-service/internal/app/models"
)

// AccountCreator is the seam a validated signup draft is handed to.
// Implementations must honour ctx cancellation. A rejection the user can act
// on is returned as a 4xx *exceptions.CustomError.
type AccountCreator interface {
	CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, role models.Role, email, password string, rememberMe bool) (*models.Session, error)
}

type AccountRepository interface {
	FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) (string, error)
}

type AccountEventPublisher interface {
	PublishAccountRegistered(ctx context.Context, event *models.AccountRegisteredEvent) error
}
