package controllers

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoleUsecase struct {
	mock.Mock
}

func (m *MockRoleUsecase) ListRoles(ctx context.Context) []models.RoleCard {
	args := m.Called(ctx)
	return args.Get(0).([]models.RoleCard)
}

func (m *MockRoleUsecase) FindRole(ctx context.Context, role string) (*models.RoleCard, error) {
	args := m.Called(ctx, role)
	if card, ok := args.Get(0).(*models.RoleCard); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRoleUsecase) Navigate(ctx context.Context, request *requests.Navigation) (*responses.Navigation, error) {
	args := m.Called(ctx, request)
	if result, ok := args.Get(0).(*responses.Navigation); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLoginUsecase struct {
	mock.Mock
}

func (m *MockLoginUsecase) GetLoginForm(ctx context.Context, role string) (*models.FormSchema, error) {
	args := m.Called(ctx, role)
	if schema, ok := args.Get(0).(*models.FormSchema); ok {
		return schema, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoginUsecase) Login(ctx context.Context, role string, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, role, request)
	if result, ok := args.Get(0).(*responses.Login); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoginUsecase) CurrentSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if session, ok := args.Get(0).(*models.Session); ok {
		return session, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLoginUsecase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockSignupUsecase struct {
	mock.Mock
}

func (m *MockSignupUsecase) GetSignupForm(ctx context.Context, role string) (*models.FormSchema, error) {
	args := m.Called(ctx, role)
	if schema, ok := args.Get(0).(*models.FormSchema); ok {
		return schema, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSignupUsecase) Signup(ctx context.Context, role string, request *requests.Signup, files map[string]*models.FileAttachment) (*responses.Signup, error) {
	args := m.Called(ctx, role, request, files)
	if result, ok := args.Get(0).(*responses.Signup); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Account: config.AppAccount{SubmitTimeoutInSeconds: 5},
	}
}

type responseBody struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) responseBody {
	t.Helper()
	var body responseBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
