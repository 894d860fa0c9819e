package accounts

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SimulatedGateway stands in for a real account backend: every call waits
// for the configured delay and then succeeds. Cancelling ctx ends the wait
// early with ctx.Err(). Sessions it issues live in process memory.
type SimulatedGateway struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	mu       sync.Mutex
	sessions map[string]*models.Session
}

var (
	_ contracts.AccountCreator = (*SimulatedGateway)(nil)
	_ contracts.Authenticator  = (*SimulatedGateway)(nil)
	_ contracts.SessionService = (*SimulatedGateway)(nil)
)

func NewSimulatedGateway(internalConfig *config.InternalConfig, logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		InternalConfig: internalConfig,
		Log:            logger,
		sessions:       make(map[string]*models.Session),
	}
}

func (g *SimulatedGateway) CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("SimulatedGateway.CreateAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, draft.Role.String()),
	)

	err := g.wait(ctx)
	if err != nil {
		g.Log.Error("SimulatedGateway.CreateAccount interrupted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	account := buildAccount(utils.GenerateID(), draft)
	account.Attachments = describeFiles(draft.Files)

	receipt := buildReceipt(account)
	receipt.Attachments = buildAttachmentLinks(account.Attachments, nil)
	return receipt, nil
}

func (g *SimulatedGateway) Authenticate(ctx context.Context, role models.Role, email, password string, rememberMe bool) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("SimulatedGateway.Authenticate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)

	err := g.wait(ctx)
	if err != nil {
		return nil, err
	}

	expiry := g.InternalConfig.SessionExpiry(rememberMe)
	session := buildSession(utils.GenerateID(), "", role, email, rememberMe, expiry)
	err = g.SaveSession(ctx, session, expiry)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (g *SimulatedGateway) SaveSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.sessions[session.SessionID] = session
	return nil
}

func (g *SimulatedGateway) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrTokenInvalid(errors.New("session not found"))
	}
	if session.IsExpired() {
		delete(g.sessions, sessionID)
		return nil, exceptions.ErrTokenInvalid(errors.New("session expired"))
	}
	return session, nil
}

func (g *SimulatedGateway) DeleteSession(ctx context.Context, sessionID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.sessions, sessionID)
	return nil
}

// PurgeExpiredSessions drops every expired session and returns how many
// were removed.
func (g *SimulatedGateway) PurgeExpiredSessions(ctx context.Context) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	purged := 0
	for id, session := range g.sessions {
		if session.IsExpired() {
			delete(g.sessions, id)
			purged++
		}
	}
	return purged
}

func (g *SimulatedGateway) wait(ctx context.Context) error {
	timer := time.NewTimer(g.InternalConfig.SimulatedDelay())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
