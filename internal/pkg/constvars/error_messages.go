package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"portal_email": "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"role":         "must be one of [doctor, patient, lab, pharmacy]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
}

// Form messages shown verbatim to the portal user
const (
	FormMessageRequiredFields      = "All required fields must be filled"
	FormMessagePasswordsDoNotMatch = "Passwords do not match"
	FormMessagePasswordTooShort    = "Password must be at least 8 characters long"
	FormMessageInvalidEmail        = "Please enter a valid email address"
	FormMessageTermsNotAccepted    = "You must agree to the terms and conditions"
	FormMessageNoTestsOffered      = "Please select at least one test offered"
	FormMessageInvalidOption       = "Please select a valid %s"
	FormMessageSignupFailed        = "Signup failed. Please try again."

	FormMessageEmailRequired    = "Email is required"
	FormMessagePasswordRequired = "Password is required"
	FormMessageLoginFailed      = "Login failed. Please try again."

	FileMessageMissing     = "Please select a file"
	FileMessageTypeInvalid = "File type not allowed. Please use: %s"
	FileMessageTooLarge    = "File is too large. Maximum size is %dMB"
)

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "server is taking too long to respond, please try again later"
	ErrClientInvalidEmailOrPassword        = "Invalid email or password"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientRoleNotFound                  = "role not found"
	ErrClientEmailAlreadyExists            = "An account with this email already exists"
	ErrClientSubmissionInFlight            = "A submission is already in progress"
	ErrClientNavigationInFlight            = "A navigation is already in progress"
	ErrClientFormLocked                    = "The form cannot be changed while it is being submitted"
	ErrClientUnknownField                  = "Unknown form field"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientUnsupportedMediaType          = "unsupported content type"
)

// Error messages for developers
const (
	ErrDevValidationFailed            = "validation failed"
	ErrDevInvalidInput                = "invalid input"
	ErrDevInvalidRoleType             = "invalid role type %q"
	ErrDevFormRuleFailed              = "form rule %s failed on field %q"
	ErrDevFileRuleFailed              = "file rule %s failed on field %q"
	ErrDevUnknownFormField            = "unknown form field %q for role %s"
	ErrDevFieldKindMismatch           = "form field %q is %s, cannot set it as %s"
	ErrDevFormLocked                  = "form for role %s is locked while submitting"
	ErrDevSubmissionInFlight          = "submission for role %s already in flight"
	ErrDevNavigationInFlight          = "navigation to %s requested while %s is in flight"
	ErrDevSubmissionFailed            = "account creation failed"
	ErrDevLoginFailed                 = "authentication failed"
	ErrDevInvalidCredentials          = "invalid credentials"
	ErrDevAccountAlreadyExists        = "account already exists for role %s"
	ErrDevAccountLocked               = "account creation already in progress for key %s"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm    = "cannot parse multipart form"
	ErrDevCannotReadFile              = "cannot read uploaded file %q"
	ErrDevUnsupportedMediaType        = "unsupported content type %q"
	ErrDevFailedToHashPassword        = "failed to hash password"
	ErrDevAuthGenerateToken           = "failed to generate auth token"
	ErrDevAuthSigningMethod           = "unexpected signing method"
	ErrDevAuthTokenInvalid            = "auth token invalid"
	ErrDevTooManyRequests             = "rate limit exceeded for %s"
	ErrDevMongoDBFindDocument         = "failed to find document in collection %s"
	ErrDevMongoDBInsertDocument       = "failed to insert document into collection %s"
	ErrDevMongoDBDuplicateDocument    = "duplicate document in collection %s"
	ErrDevRedisSet                    = "failed to set redis key"
	ErrDevRedisGet                    = "failed to get redis key"
	ErrDevRedisDelete                 = "failed to delete redis key"
	ErrDevRedisIncrement              = "failed to increment redis key"
	ErrDevRedisLock                   = "failed to acquire redis lock"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevMinioCreateObject           = "failed to create object in bucket %s"
	ErrDevMinioPresignObject          = "failed to presign object in bucket %s"
	ErrDevMinioRemoveObject           = "failed to remove object from bucket %s"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue %s"
	ErrDevSimulatedGatewayInterrupted = "simulated gateway interrupted"
	ErrDevRecoveredPanic              = "recovered from panic"
)
