package accounts

import (
	"context"
	"curasync-service/internal/app/models"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error) {
	args := m.Called(ctx, role, email)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	args := m.Called(ctx, account)
	return args.String(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, size, contentType, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

type MockAccountEventPublisher struct {
	mock.Mock
}

func (m *MockAccountEventPublisher) PublishAccountRegistered(ctx context.Context, event *models.AccountRegisteredEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) SaveSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockAccountCreator struct {
	mock.Mock
}

func (m *MockAccountCreator) CreateAccount(ctx context.Context, draft *models.FormDraft) (*models.AccountReceipt, error) {
	args := m.Called(ctx, draft)
	receipt, _ := args.Get(0).(*models.AccountReceipt)
	return receipt, args.Error(1)
}

func doctorDraft() *models.FormDraft {
	draft := models.NewFormDraft(models.RoleDoctor)
	draft.Values[models.FieldFullName] = "Dr. Jane Doe"
	draft.Values[models.FieldEmail] = "Jane@CuraSync.test"
	draft.Values[models.FieldPassword] = "s3cure-pass"
	draft.Values[models.FieldConfirmPassword] = "s3cure-pass"
	draft.Values[models.FieldPhoneNumber] = "+62 812 3456 7890"
	draft.Values[models.FieldSpecialization] = "cardiology"
	draft.Values[models.FieldHospitalName] = ""
	draft.Flags[models.FieldAgreeToTerms] = true
	return draft
}
