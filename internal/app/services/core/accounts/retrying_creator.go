package accounts

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"errors"
	"time"

	"github.com/avast/retry-go"
	"go.uber.org/zap"
)

// RetryingCreator retries transient account-creation failures. Rejections
// the user can act on and context errors are returned at once.
type RetryingCreator struct {
	Next     contracts.AccountCreator
	Attempts uint
	Delay    time.Duration
	Log      *zap.Logger
}

func NewRetryingCreator(next contracts.AccountCreator, attempts int, delay time.Duration, logger *zap.Logger) contracts.AccountCreator {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryingCreator{
		Next:     next,
		Attempts: uint(attempts),
		Delay:    delay,
		Log:      logger,
	}
}

func (c *RetryingCreator) CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error) {
	requestID := utils.GetRequestID(ctx)

	var receipt *models.AccountReceipt
	var lastErr error
	err := retry.Do(
		func() error {
			receipt, lastErr = c.Next.CreateAccount(ctx, draft)
			return lastErr
		},
		retry.Context(ctx),
		retry.Attempts(c.Attempts),
		retry.Delay(c.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			c.Log.Warn("RetryingCreator.CreateAccount retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Uint(constvars.LoggingAttemptKey, n+1),
				zap.Error(err),
			)
		}),
	)
	if err == nil {
		return receipt, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil && isTransient(lastErr) {
		return nil, ctxErr
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, err
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return !customErr.IsClientError()
	}
	return true
}
