package auth

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/app/services/shared/ratelimiter"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"time"

	"go.uber.org/zap"
)

const loginLimiterGroup = "LOGIN"

// AttemptLimiter counts login attempts per role and email.
type AttemptLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *ratelimiter.ApplyResourceLimiterInput) (*ratelimiter.ApplyResourceLimiterOutput, error)
}

type loginUsecase struct {
	Registry       *forms.Registry
	Authenticator  contracts.Authenticator
	SessionService contracts.SessionService
	AttemptLimiter AttemptLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

// NewLoginUsecase builds the login flow. attemptLimiter may be nil, in which
// case attempts are not counted.
func NewLoginUsecase(
	registry *forms.Registry,
	authenticator contracts.Authenticator,
	sessionService contracts.SessionService,
	attemptLimiter AttemptLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LoginUsecase {
	return &loginUsecase{
		Registry:       registry,
		Authenticator:  authenticator,
		SessionService: sessionService,
		AttemptLimiter: attemptLimiter,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *loginUsecase) GetLoginForm(ctx context.Context, role string) (*models.FormSchema, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("loginUsecase.GetLoginForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role)
	}
	return uc.Registry.LoginSchema(parsedRole)
}

func (uc *loginUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("loginUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role),
	)

	parsedRole, ok := models.ParseRole(role)
	if !ok {
		return nil, exceptions.ErrInvalidRoleType(role)
	}

	if result := ValidateLogin(request); result != nil {
		uc.Log.Info("loginUsecase.Login validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRuleKey, result.Rule),
		)
		return nil, result.CustomError()
	}

	err := uc.checkAttempts(ctx, parsedRole, request.Email)
	if err != nil {
		return nil, err
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, uc.InternalConfig.SubmitTimeout())
	defer cancel()

	session, err := uc.Authenticator.Authenticate(ctxWithTimeout, parsedRole, request.Email, request.Password, request.RememberMe)
	if err != nil {
		uc.Log.Error("loginUsecase.Login error calling Authenticator.Authenticate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, mapLoginError(err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, time.Until(session.ExpiresAt))
	if err != nil {
		uc.Log.Error("loginUsecase.Login error calling utils.GenerateSessionJWT",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("loginUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.Login{
		Token:     token,
		Role:      session.Role,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// CurrentSession resolves a session token issued by Login.
func (uc *loginUsecase) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("loginUsecase.CurrentSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("loginUsecase.CurrentSession error calling SessionService.GetSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}

func (uc *loginUsecase) Logout(ctx context.Context, token string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("loginUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.ParseSessionJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("loginUsecase.Logout error calling SessionService.DeleteSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// checkAttempts fails open: an unreachable limiter store is logged and the
// login goes ahead.
func (uc *loginUsecase) checkAttempts(ctx context.Context, role models.Role, email string) error {
	if uc.AttemptLimiter == nil {
		return nil
	}

	resource := role.String() + ":" + email
	result, err := uc.AttemptLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      resource,
		LimiterGroupName:  loginLimiterGroup,
		WindowDurationSec: uc.InternalConfig.Account.LoginAttemptWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Account.LoginAttemptsPerWindow,
	})
	if err != nil {
		uc.Log.Warn("loginUsecase.checkAttempts limiter unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil
	}
	if !result.Allowed {
		return exceptions.ErrTooManyRequests(resource)
	}
	return nil
}

func mapLoginError(err error) *exceptions.CustomError {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.IsClientError() {
		return customErr
	}
	return exceptions.ErrLoginFailed(err)
}
