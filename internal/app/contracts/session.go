package contracts

import (
	"context"
	"curasync-service/internal/app/models"
	"time"
)

type SessionService interface {
	SaveSession(ctx context.Context, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
