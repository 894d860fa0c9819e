package constvars

import "time"

type ContextKey string

const (
	ResourceRoles      = "roles"
	ResourceNavigation = "navigation"
	ResourceLogin      = "login"
	ResourceSignup     = "signup"
)

const (
	AppEnvironmentProduction  = "production"
	AppEnvironmentDevelopment = "development"

	AccountBackendSimulated = "simulated"
	AccountBackendStored    = "stored"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_KEY               ContextKey = "client_key"
)

const (
	SignupLockKeyFormat      = "signup:%s:%s"
	SessionKeyFormat         = "session:%s"
	AttachmentObjectFormat   = "%s/%s/%s%s"
	AccountRegisteredEvent   = "account.registered"
	DefaultSubmissionTimeout = 10 * time.Second
	DefaultSimulatedDelay    = 1000 * time.Millisecond

	DefaultSessionSweepCronSpec = "@every 1m"
)

const (
	BytesPerKilobyte = 1024
	BytesPerMegabyte = 1024 * 1024
)
