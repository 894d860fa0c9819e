package session

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func (svc *sessionService) SaveSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.SaveSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, exp)
	if err != nil {
		svc.Log.Error("sessionService.SaveSession error calling RedisRepository.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if sessionData == "" {
		return nil, exceptions.ErrTokenInvalid(errors.New("session not found"))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	if session.IsExpired() {
		return nil, exceptions.ErrTokenInvalid(errors.New("session expired"))
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	err := svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.DeleteSession error calling RedisRepository.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
}
