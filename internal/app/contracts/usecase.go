package contracts

import (
	"context"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
)

type RoleUsecase interface {
	ListRoles(ctx context.Context) []models.RoleCard
	FindRole(ctx context.Context, role string) (*models.RoleCard, error)
	Navigate(ctx context.Context, request *requests.Navigation) (*responses.Navigation, error)
}

type SignupUsecase interface {
	GetSignupForm(ctx context.Context, role string) (*models.FormSchema, error)
	Signup(ctx context.Context, role string, request *requests.Signup, files map[string]*models.FileAttachment) (*responses.Signup, error)
}

type LoginUsecase interface {
	GetLoginForm(ctx context.Context, role string) (*models.FormSchema, error)
	Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error)
	CurrentSession(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}
