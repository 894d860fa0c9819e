package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRoleKey           = "role"
	LoggingEmailKey          = "email"
	LoggingFieldKey          = "field"
	LoggingRuleKey           = "rule"
	LoggingStateKey          = "state"
	LoggingClientKey         = "client_key"
	LoggingAccountIDKey      = "account_id"
	LoggingSessionIDKey      = "session_id"
	LoggingObjectKey         = "object_key"
	LoggingQueueKey          = "queue"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingBucketKey         = "bucket"
	LoggingRetryAfterKey     = "retry_after_secs"
	LoggingAttemptKey        = "attempt"
	LoggingErrorKey          = "error"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingLocationKey       = "location"
	LoggingPurgedCountKey    = "purged_count"
)
