package accounts

import (
	"context"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/shared/locker"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// LockingCreator holds a lock on the role and email of the draft while the
// account is created, so the same account cannot be submitted twice at once.
type LockingCreator struct {
	Next          contracts.AccountCreator
	LockerService contracts.LockerService
	Expiration    time.Duration
	Log           *zap.Logger
}

func NewLockingCreator(next contracts.AccountCreator, lockerService contracts.LockerService, expiration time.Duration, logger *zap.Logger) contracts.AccountCreator {
	return &LockingCreator{
		Next:          next,
		LockerService: lockerService,
		Expiration:    expiration,
		Log:           logger,
	}
}

func (c *LockingCreator) CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error) {
	requestID := utils.GetRequestID(ctx)
	lockKey := locker.SignupLockKey(draft.Role.String(), normalizedEmail(draft))

	acquired, lockValue, err := c.LockerService.TryLock(ctx, lockKey, c.Expiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		c.Log.Info("LockingCreator.CreateAccount account already being created",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
		)
		return nil, exceptions.ErrAccountLocked(lockKey)
	}

	defer func() {
		unlockErr := c.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		if unlockErr != nil {
			c.Log.Error("LockingCreator.CreateAccount error calling LockerService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	return c.Next.CreateAccount(ctx, draft)
}
