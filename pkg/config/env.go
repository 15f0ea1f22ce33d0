package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvSessionStore           = "SESSION_STORE"
	EnvSessionTTL             = "SESSION_TTL"
	EnvSessionSealKey         = "SESSION_SEAL_KEY"
	EnvSessionCleanupInterval = "SESSION_CLEANUP_INTERVAL"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvClinicTimezone = "CLINIC_TIMEZONE"
	EnvDateWindowDays = "DATE_WINDOW_DAYS"
	EnvContactDelay   = "CONTACT_DELAY"

	EnvEventSink    = "EVENT_SINK"
	EnvBookingTopic = "BOOKING_EVENTS_TOPIC"
	EnvContactTopic = "CONTACT_EVENTS_TOPIC"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
