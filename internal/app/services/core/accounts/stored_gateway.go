package accounts

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/exceptions"
	"curasync-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

// StoredGateway creates accounts in MongoDB, uploads their attachments to
// object storage and announces them on the message queue. It also
// authenticates stored accounts into Redis-backed sessions.
type StoredGateway struct {
	AccountRepository contracts.AccountRepository
	Storage           contracts.Storage
	EventPublisher    contracts.AccountEventPublisher
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	_ contracts.AccountCreator = (*StoredGateway)(nil)
	_ contracts.Authenticator  = (*StoredGateway)(nil)
)

func NewStoredGateway(
	accountRepository contracts.AccountRepository,
	storage contracts.Storage,
	eventPublisher contracts.AccountEventPublisher,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *StoredGateway {
	return &StoredGateway{
		AccountRepository: accountRepository,
		Storage:           storage,
		EventPublisher:    eventPublisher,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (g *StoredGateway) CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error) {
	requestID := utils.GetRequestID(ctx)
	email := normalizedEmail(draft)
	g.Log.Info("StoredGateway.CreateAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, draft.Role.String()),
		zap.String(constvars.LoggingEmailKey, email),
	)

	existingAccount, err := g.AccountRepository.FindByEmail(ctx, draft.Role, email)
	if err != nil {
		g.Log.Error("StoredGateway.CreateAccount error calling AccountRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingAccount != nil {
		return nil, exceptions.ErrEmailAlreadyExist(draft.Role.String())
	}

	passwordHash, err := utils.HashPassword(draft.Value(models.FieldPassword))
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	account := buildAccount(utils.GenerateID(), draft)
	account.PasswordHash = passwordHash

	err = g.uploadAttachments(ctx, account, draft.Files)
	if err != nil {
		return nil, err
	}

	accountID, err := g.AccountRepository.CreateAccount(ctx, account)
	if err != nil {
		g.Log.Error("StoredGateway.CreateAccount error calling AccountRepository.CreateAccount",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		g.removeAttachments(ctx, account.Attachments)
		return nil, err
	}
	account.ID = accountID

	// The account is already stored, so a lost event must not fail the signup.
	err = g.EventPublisher.PublishAccountRegistered(ctx, &models.AccountRegisteredEvent{
		Event:       constvars.AccountRegisteredEvent,
		AccountID:   account.ID,
		Role:        account.Role,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		g.Log.Error("StoredGateway.CreateAccount error calling EventPublisher.PublishAccountRegistered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, account.ID),
			zap.Error(err),
		)
	}

	receipt := buildReceipt(account)
	receipt.Attachments = g.presignAttachments(ctx, account)

	g.Log.Info("StoredGateway.CreateAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return receipt, nil
}

// presignAttachments lists the stored attachments with download links. An
// attachment whose link cannot be signed is listed without one.
func (g *StoredGateway) presignAttachments(ctx context.Context, account *models.Account) []models.AttachmentLink {
	requestID := utils.GetRequestID(ctx)
	bucketName := g.InternalConfig.Minio.BucketName
	expiry := time.Duration(g.InternalConfig.Minio.PreSignedUrlExpiryTimeInMinutes) * time.Minute

	return buildAttachmentLinks(account.Attachments, func(attachment models.StoredAttachment) string {
		link, err := g.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, attachment.ObjectKey, expiry)
		if err != nil {
			g.Log.Warn("StoredGateway.presignAttachments error calling Storage.GetObjectUrlWithExpiryTime",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, attachment.ObjectKey),
				zap.Error(err),
			)
			return ""
		}
		return link
	})
}

// uploadAttachments stores every file of the draft on account. When one
// upload fails, the files uploaded before it are removed again.
func (g *StoredGateway) uploadAttachments(ctx context.Context, account *models.Account, files map[string]*models.FileAttachment) error {
	requestID := utils.GetRequestID(ctx)
	bucketName := g.InternalConfig.Minio.BucketName

	fields := make([]string, 0, len(files))
	for field := range files {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		file := files[field]
		if file == nil {
			continue
		}

		objectName := utils.GenerateObjectKey(account.Role.String(), field, file.Name)
		objectKey, err := g.Storage.UploadFile(ctx, file.Reader(), file.Size, file.MimeType, bucketName, objectName)
		if err != nil {
			g.Log.Error("StoredGateway.uploadAttachments error calling Storage.UploadFile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingBucketKey, bucketName),
				zap.String(constvars.LoggingObjectKey, objectName),
				zap.Error(err),
			)
			g.removeAttachments(ctx, account.Attachments)
			return err
		}
		account.Attachments[field] = models.StoredAttachment{
			ObjectKey: objectKey,
			Name:      file.Name,
			MimeType:  file.MimeType,
			Size:      file.Size,
		}
	}
	return nil
}

// removeAttachments deletes objects of a signup that did not complete. It
// runs even when ctx is already cancelled; failures are only logged.
func (g *StoredGateway) removeAttachments(ctx context.Context, attachments map[string]models.StoredAttachment) {
	if len(attachments) == 0 {
		return
	}

	requestID := utils.GetRequestID(ctx)
	bucketName := g.InternalConfig.Minio.BucketName
	cleanupCtx := context.WithoutCancel(ctx)

	for _, attachment := range attachments {
		err := g.Storage.RemoveObject(cleanupCtx, bucketName, attachment.ObjectKey)
		if err != nil {
			g.Log.Warn("StoredGateway.removeAttachments error calling Storage.RemoveObject",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, attachment.ObjectKey),
				zap.Error(err),
			)
		}
	}
}

func (g *StoredGateway) Authenticate(ctx context.Context, role models.Role, email, password string, rememberMe bool) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	g.Log.Info("StoredGateway.Authenticate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, role.String()),
		zap.String(constvars.LoggingEmailKey, email),
	)

	account, err := g.AccountRepository.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, err
	}
	if account == nil || !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	expiry := g.InternalConfig.SessionExpiry(rememberMe)
	session := buildSession(utils.GenerateID(), account.ID, account.Role, account.Email, rememberMe, expiry)
	err = g.SessionService.SaveSession(ctx, session, expiry)
	if err != nil {
		g.Log.Error("StoredGateway.Authenticate error calling SessionService.SaveSession",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}
