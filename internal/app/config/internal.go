package config

type InternalConfig struct {
	App      App
	Account  AppAccount
	JWT      AppJWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
	MongoDB  AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	CorsAllowedOrigins         []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	// Per-client burst limit on signup and login, with a temporary block once exceeded.
	FormRequestsPerSecond int
	FormRequestsBurst     int
	FormBlockTimeInSecond int
	// Cron spec for purging expired in-memory sessions of the simulated backend.
	SessionSweepCronSpec string
}

type AppAccount struct {
	// Backend selects the account-creation seam: simulated or stored.
	Backend                         string
	SubmitTimeoutInSeconds          int
	SimulatedDelayInMilliseconds    int
	RetryAttempts                   int
	RetryDelayInMilliseconds        int
	SignupLockExpiryInSeconds       int
	ProfilePictureMaxUploadSizeInMB int
	DocumentMaxUploadSizeInMB       int
	LoginAttemptsPerWindow          int
	LoginAttemptWindowInSeconds     int
}

type AppJWT struct {
	Secret                   string
	ExpTimeInHour            int
	RememberMeExpTimeInHours int
}

type AppMinio struct {
	BucketName                      string
	PreSignedUrlExpiryTimeInMinutes int
}

type AppRabbitMQ struct {
	AccountEventsQueue string
}

type AppMongoDB struct {
	DbName             string
	AccountsCollection string
}
