package routers

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/delivery/http/controllers"
	"curasync-service/internal/app/delivery/http/middlewares"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/accounts"
	"curasync-service/internal/app/services/core/auth"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/app/services/core/roles"
	"curasync-service/internal/app/services/core/signup"
	"curasync-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, formBurst int) *chi.Mux {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			CorsAllowedOrigins:         []string{"http://localhost:3000"},
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 10,
		},
		Account: config.AppAccount{
			SubmitTimeoutInSeconds:          5,
			SimulatedDelayInMilliseconds:    1,
			ProfilePictureMaxUploadSizeInMB: 5,
			DocumentMaxUploadSizeInMB:       10,
		},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1, RememberMeExpTimeInHours: 720},
	}

	registry := forms.NewRegistry(forms.Limits{ProfilePictureMaxMB: 5, DocumentMaxMB: 10})
	gateway := accounts.NewSimulatedGateway(internalConfig, logger)
	navigator := func(ctx context.Context, role models.Role, location string) error {
		_, err := registry.LoginSchema(role)
		return err
	}

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		middlewares.NewRateLimiter(formBurst, time.Minute, 30*time.Second, logger),
		controllers.NewRoleController(logger, roles.NewRoleUsecase(navigator, logger)),
		controllers.NewAuthController(logger, auth.NewLoginUsecase(registry, gateway, gateway, nil, internalConfig, logger), internalConfig),
		controllers.NewSignupController(logger, signup.NewSignupUsecase(registry, gateway, internalConfig, logger), internalConfig),
	)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestSetupRoutes_Roles(t *testing.T) {
	router := newTestRouter(t, 100)

	rr := serve(router, http.MethodGet, "/api/v1/roles", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))

	var cards []models.RoleCard
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &cards))
	require.Len(t, cards, 4)
	assert.Equal(t, models.RolePharmacy, cards[3].Role)

	rr = serve(router, http.MethodGet, "/api/v1/roles/lab", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodPost, "/api/v1/navigation/doctor", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"role":"doctor","location":"/doctor/login"}`, string(decode(t, rr).Data))

	rr = serve(router, http.MethodPost, "/api/v1/navigation/nurse", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetupRoutes_Forms(t *testing.T) {
	router := newTestRouter(t, 100)

	rr := serve(router, http.MethodGet, "/api/v1/lab/signup", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var schema models.FormSchema
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &schema))
	assert.Equal(t, models.ActionSignup, schema.Action)
	_, ok := schema.Field(models.FieldTestsOffered)
	assert.True(t, ok)

	rr = serve(router, http.MethodGet, "/api/v1/pharmacy/login", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, "/api/v1/nurse/login", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSetupRoutes_SignupAndLogin(t *testing.T) {
	router := newTestRouter(t, 100)

	signupBody := `{
		"values": {
			"fullName": "John Roe",
			"email": "John@CuraSync.test",
			"password": "s3cure-pass",
			"confirmPassword": "s3cure-pass",
			"dateOfBirth": "1990-04-01",
			"gender": "male",
			"bloodGroup": "O+",
			"phoneNumber": "+62 812 3456 7890",
			"address": "2 Elm Rd",
			"emergencyContactName": "Mary Roe",
			"emergencyContactPhone": "+62 811 0000 0000"
		},
		"flags": {"agreeToTerms": true}
	}`

	rr := serve(router, http.MethodPost, "/api/v1/patient/signup", signupBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, string(decode(t, rr).Data), `"redirect_to":"/patient/login"`)

	rr = serve(router, http.MethodPost, "/api/v1/patient/signup", `{"values":{"fullName":"John Roe"}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constvars.FormMessageRequiredFields, decode(t, rr).Message)

	rr = serve(router, http.MethodPost, "/api/v1/patient/login", `{"email":"john@curasync.test","password":"s3cure-pass"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &login))
	require.NotEmpty(t, login.Token)

	withToken := func(method string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/v1/session", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+login.Token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rr = withToken(http.MethodGet)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Contains(t, string(decode(t, rr).Data), `"email":"john@curasync.test"`)

	assert.Equal(t, http.StatusOK, withToken(http.MethodDelete).Code)
	assert.Equal(t, http.StatusUnauthorized, withToken(http.MethodGet).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/api/v1/session", "").Code)

	rr = serve(router, http.MethodPost, "/api/v1/patient/login", `{"email":"","password":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, constvars.FormMessageEmailRequired, decode(t, rr).Message)
}

func TestSetupRoutes_LoginRememberMe(t *testing.T) {
	router := newTestRouter(t, 100)

	rr := serve(router, http.MethodGet, "/api/v1/patient/login", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var schema models.FormSchema
	require.NoError(t, json.Unmarshal(decode(t, rr).Data, &schema))
	field, ok := schema.Field(models.FieldRememberMe)
	require.True(t, ok)

	login := func(rememberMe bool) time.Time {
		body, err := json.Marshal(map[string]interface{}{
			models.FieldEmail:    "pat@curasync.test",
			models.FieldPassword: "s3cure-pass",
			field.Name:           rememberMe,
		})
		require.NoError(t, err)

		rr := serve(router, http.MethodPost, "/api/v1/patient/login", string(body))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var result struct {
			ExpiresAt time.Time `json:"expires_at"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rr).Data, &result))
		return result.ExpiresAt
	}

	assert.True(t, login(true).After(time.Now().Add(700*time.Hour)))
	assert.True(t, login(false).Before(time.Now().Add(2*time.Hour)))
}

func TestSetupRoutes_FormRateLimit(t *testing.T) {
	router := newTestRouter(t, 3)

	for i := 0; i < 3; i++ {
		rr := serve(router, http.MethodPost, "/api/v1/lab/login", `{"email":"","password":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}

	rr := serve(router, http.MethodPost, "/api/v1/lab/login", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(constvars.HeaderRetryAfter))

	rr = serve(router, http.MethodGet, "/api/v1/lab/login", "")
	assert.Equal(t, http.StatusOK, rr.Code, "reading the form is not throttled")
}
