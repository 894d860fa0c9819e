package config

import (
	"curasync-service/internal/pkg/constvars"
	"curasync-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvironmentDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CorsAllowedOrigins:         utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 32),
			FormRequestsPerSecond:      utils.GetEnvInt("APP_FORM_REQUESTS_PER_SECOND", 2),
			FormRequestsBurst:          utils.GetEnvInt("APP_FORM_REQUESTS_BURST", 5),
			FormBlockTimeInSecond:      utils.GetEnvInt("APP_FORM_BLOCK_TIME_IN_SECOND", 30),
			SessionSweepCronSpec:       utils.GetEnvString("APP_SESSION_SWEEP_CRON_SPEC", constvars.DefaultSessionSweepCronSpec),
		},
		Account: AppAccount{
			Backend:                         utils.GetEnvString("APP_ACCOUNT_BACKEND", constvars.AccountBackendSimulated),
			SubmitTimeoutInSeconds:          utils.GetEnvInt("APP_ACCOUNT_SUBMIT_TIMEOUT_IN_SECONDS", 10),
			SimulatedDelayInMilliseconds:    utils.GetEnvInt("APP_ACCOUNT_SIMULATED_DELAY_IN_MILLISECONDS", 1000),
			RetryAttempts:                   utils.GetEnvInt("APP_ACCOUNT_RETRY_ATTEMPTS", 3),
			RetryDelayInMilliseconds:        utils.GetEnvInt("APP_ACCOUNT_RETRY_DELAY_IN_MILLISECONDS", 200),
			SignupLockExpiryInSeconds:       utils.GetEnvInt("APP_ACCOUNT_SIGNUP_LOCK_EXPIRY_IN_SECONDS", 30),
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt("APP_PROFILE_PICTURE_MAX_UPLOAD_SIZE_IN_MB", 5),
			DocumentMaxUploadSizeInMB:       utils.GetEnvInt("APP_DOCUMENT_MAX_UPLOAD_SIZE_IN_MB", 10),
			LoginAttemptsPerWindow:          utils.GetEnvInt("APP_LOGIN_ATTEMPTS_PER_WINDOW", 10),
			LoginAttemptWindowInSeconds:     utils.GetEnvInt("APP_LOGIN_ATTEMPT_WINDOW_IN_SECONDS", 300),
		},
		JWT: AppJWT{
			Secret:                   utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:            utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
			RememberMeExpTimeInHours: utils.GetEnvInt("JWT_REMEMBER_ME_EXP_TIME_IN_HOURS", 720),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("APP_MINIO_BUCKET_NAME", "curasync-attachments"),
			PreSignedUrlExpiryTimeInMinutes: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15),
		},
		RabbitMQ: AppRabbitMQ{
			AccountEventsQueue: utils.GetEnvString("APP_RABBITMQ_ACCOUNT_EVENTS_QUEUE", "account-events"),
		},
		MongoDB: AppMongoDB{
			DbName:             utils.GetEnvString("APP_MONGODB_DB_NAME", "curasync"),
			AccountsCollection: utils.GetEnvString("APP_MONGODB_ACCOUNTS_COLLECTION", "accounts"),
		},
	}
}

func (c *InternalConfig) SubmitTimeout() time.Duration {
	return time.Duration(c.Account.SubmitTimeoutInSeconds) * time.Second
}

func (c *InternalConfig) SimulatedDelay() time.Duration {
	return time.Duration(c.Account.SimulatedDelayInMilliseconds) * time.Millisecond
}

func (c *InternalConfig) SessionExpiry(rememberMe bool) time.Duration {
	if rememberMe {
		return time.Duration(c.JWT.RememberMeExpTimeInHours) * time.Hour
	}
	return time.Duration(c.JWT.ExpTimeInHour) * time.Hour
}

// UsesStoredBackend reports whether accounts go to MongoDB, MinIO and
// RabbitMQ instead of the simulated gateway.
func (c *InternalConfig) UsesStoredBackend() bool {
	return c.Account.Backend == constvars.AccountBackendStored
}
