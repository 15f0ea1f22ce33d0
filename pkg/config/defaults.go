package config

import "time"

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"

	SinkLog   = "log"
	SinkKafka = "kafka"
)

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultSessionStore           = StoreMemory
	DefaultSessionTTL             = 30 * time.Minute
	DefaultSessionCleanupInterval = 1 * time.Minute

	DefaultRedisAddr = "localhost:6379"
	DefaultRedisDB   = 0

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "cemdon"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultClinicTimezone = "America/Argentina/Cordoba"
	DefaultDateWindowDays = 14
	DefaultContactDelay   = 1500 * time.Millisecond

	DefaultEventSink    = SinkLog
	DefaultBookingTopic = "cemdon.booking.confirmed"
	DefaultContactTopic = "cemdon.contact.received"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
