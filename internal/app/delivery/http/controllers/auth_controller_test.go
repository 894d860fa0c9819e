package controllers

import (
	"curasync-service/internal/app/models"
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/dto/requests"
	"curasync-service/internal/pkg/dto/responses"
	"curasync-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newAuthRouter(uc *MockLoginUsecase) *chi.Mux {
	ctrl := NewAuthController(zap.NewNop(), uc, testInternalConfig())
	router := chi.NewRouter()
	router.Get("/{role}/login", ctrl.GetLoginForm)
	router.Post("/{role}/login", ctrl.Login)
	return router
}

func TestAuthController_GetLoginForm(t *testing.T) {
	uc := new(MockLoginUsecase)
	uc.On("GetLoginForm", mock.Anything, "doctor").Return(&models.FormSchema{Role: models.RoleDoctor, Action: models.ActionLogin}, nil)
	uc.On("GetLoginForm", mock.Anything, "nurse").Return(nil, exceptions.ErrInvalidRoleType("nurse"))
	router := newAuthRouter(uc)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/doctor/login", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.GetLoginFormSuccessMessage, decodeResponse(t, rr).Message)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nurse/login", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAuthController_Login(t *testing.T) {
	t.Run("sanitizes the email and returns the token", func(t *testing.T) {
		uc := new(MockLoginUsecase)
		uc.On("Login", mock.Anything, "patient", &requests.Login{Email: "pat@curasync.test", Password: " secret ", RememberMe: true}).
			Return(&responses.Login{Token: "jwt", Role: models.RolePatient, Email: "pat@curasync.test", ExpiresAt: time.Now().Add(time.Hour)}, nil)

		body := `{"email":"  PAT@CuraSync.test ","password":" secret ","rememberMe":true}`
		req := httptest.NewRequest(http.MethodPost, "/patient/login", strings.NewReader(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		newAuthRouter(uc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		response := decodeResponse(t, rr)
		assert.Equal(t, constvars.LoginSuccessMessage, response.Message)
		assert.Contains(t, string(response.Data), `"token":"jwt"`)
		uc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := new(MockLoginUsecase)

		rr := httptest.NewRecorder()
		newAuthRouter(uc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/patient/login", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("usecase errors keep their status", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"validation", exceptions.ErrFormRule(constvars.RuleMissingRequiredField, models.FieldEmail, constvars.FormMessageEmailRequired), http.StatusBadRequest, constvars.FormMessageEmailRequired},
			{"credentials", exceptions.ErrInvalidEmailOrPassword(nil), http.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword},
			{"throttled", exceptions.ErrTooManyRequests("lab:x@y.z"), http.StatusTooManyRequests, constvars.ErrClientTooManyRequests},
			{"gateway", exceptions.ErrLoginFailed(nil), http.StatusBadGateway, constvars.FormMessageLoginFailed},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := new(MockLoginUsecase)
				uc.On("Login", mock.Anything, "lab", mock.Anything).Return(nil, tt.err)

				rr := httptest.NewRecorder()
				newAuthRouter(uc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/lab/login", strings.NewReader(`{"email":"x@y.z","password":"p"}`)))

				assert.Equal(t, tt.wantStatus, rr.Code)
				assert.Equal(t, tt.wantMsg, decodeResponse(t, rr).Message)
			})
		}
	})
}

func TestAuthController_Session(t *testing.T) {
	uc := new(MockLoginUsecase)
	ctrl := NewAuthController(zap.NewNop(), uc, testInternalConfig())
	router := chi.NewRouter()
	router.Get("/session", ctrl.GetSession)
	router.Delete("/session", ctrl.Logout)

	uc.On("CurrentSession", mock.Anything, "tok-1").Return(&models.Session{SessionID: "s1", Role: models.RoleDoctor}, nil)
	uc.On("Logout", mock.Anything, "tok-1").Return(nil)
	uc.On("CurrentSession", mock.Anything, "tok-2").Return(nil, exceptions.ErrTokenInvalid(nil))

	send := func(method, authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/session", nil)
		if authorization != "" {
			req.Header.Set(constvars.HeaderAuthorization, authorization)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	rr := send(http.MethodGet, "Bearer tok-1")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, string(decodeResponse(t, rr).Data), `"session_id":"s1"`)

	assert.Equal(t, http.StatusOK, send(http.MethodDelete, "bearer tok-1").Code)
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodGet, "Bearer tok-2").Code)
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodGet, "").Code)
	assert.Equal(t, http.StatusUnauthorized, send(http.MethodGet, "Basic dXNlcg==").Code)
	uc.AssertExpectations(t)
}
