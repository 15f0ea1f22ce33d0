package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strconv"
	"time"
	_ "time/tzdata"

	"cemdon/pkg/client"
	"cemdon/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	SessionStore           string
	SessionTTL             time.Duration
	SessionSealKey         string
	SessionCleanupInterval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	ClinicTimezone string
	ClinicLocation *time.Location
	DateWindowDays int
	ContactDelay   time.Duration

	EventSink    string
	BookingTopic string
	ContactTopic string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log    *logger.Logger
	Client *client.Client
}

// Load reads .env (when present) and the environment, validates the result
// and exits on any problem.
func Load(serviceName string) *Config {
	envErr := godotenv.Load()

	cfg := FromEnv()
	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	})
	cfg.Client = client.NewClient()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		cfg.Log.Warn("Failed to read .env file", "error", envErr)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from environment variables and defaults without
// validating it or creating the logger and client.
func FromEnv() *Config {
	return &Config{
		Port:     getEnvStr(EnvPort, DefaultPort),
		LogLevel: getEnvStr(EnvLogLevel, DefaultLogLevel),

		SessionStore:           getEnvStr(EnvSessionStore, DefaultSessionStore),
		SessionTTL:             getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionSealKey:         getEnvStr(EnvSessionSealKey, ""),
		SessionCleanupInterval: getEnvDuration(EnvSessionCleanupInterval, DefaultSessionCleanupInterval),

		RedisAddr:     getEnvStr(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),
		RedisDB:       getEnvNum(EnvRedisDB, DefaultRedisDB),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		ClinicTimezone: getEnvStr(EnvClinicTimezone, DefaultClinicTimezone),
		DateWindowDays: getEnvNum(EnvDateWindowDays, DefaultDateWindowDays),
		ContactDelay:   getEnvDuration(EnvContactDelay, DefaultContactDelay),

		EventSink:    getEnvStr(EnvEventSink, DefaultEventSink),
		BookingTopic: getEnvStr(EnvBookingTopic, DefaultBookingTopic),
		ContactTopic: getEnvStr(EnvContactTopic, DefaultContactTopic),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) SetRedis() {
	cfg.Client.SetRedis(cfg.Log, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

// SetStoreClient connects whichever backend SessionStore selects.
func (cfg *Config) SetStoreClient() {
	switch cfg.SessionStore {
	case StoreRedis:
		cfg.SetRedis()
	case StoreMongo:
		cfg.SetMongo()
	}
}

// SealKey returns the decoded session seal key, or nil when none is set.
func (cfg *Config) SealKey() []byte {
	if cfg.SessionSealKey == "" {
		return nil
	}
	key, err := base64.StdEncoding.DecodeString(cfg.SessionSealKey)
	if err != nil {
		return nil
	}
	return key
}

// Validate checks every setting and reports all problems at once. On success
// ClinicLocation is populated.
func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if !slices.Contains([]string{StoreMemory, StoreRedis, StoreMongo}, cfg.SessionStore) {
		errors = append(errors, fmt.Sprintf("SessionStore must be one of [memory, redis, mongo], got: %s", cfg.SessionStore))
	}
	if cfg.SessionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}
	if cfg.SessionCleanupInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SessionCleanupInterval must be positive, got: %s", cfg.SessionCleanupInterval))
	}
	if cfg.SessionSealKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.SessionSealKey)
		if err != nil || len(key) != 32 {
			errors = append(errors, "SessionSealKey must be 32 bytes, base64 encoded")
		}
	}

	switch cfg.SessionStore {
	case StoreRedis:
		if cfg.RedisAddr == "" {
			errors = append(errors, "RedisAddr cannot be empty when SessionStore is redis")
		}
		if cfg.RedisDB < 0 {
			errors = append(errors, fmt.Sprintf("RedisDB cannot be negative, got: %d", cfg.RedisDB))
		}
	case StoreMongo:
		if cfg.MongoURI == "" {
			errors = append(errors, "MongoURI cannot be empty")
		} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
			errors = append(errors, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.MongoURI)))
		}
		if cfg.MongoDatabaseName == "" {
			errors = append(errors, "MongoDatabaseName cannot be empty")
		}
		if cfg.MongoConnTimeout <= 0 {
			errors = append(errors, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
		}
	}

	loc, err := time.LoadLocation(cfg.ClinicTimezone)
	if err != nil {
		errors = append(errors, fmt.Sprintf("ClinicTimezone is not a known time zone: %s", cfg.ClinicTimezone))
	} else {
		cfg.ClinicLocation = loc
	}
	if cfg.DateWindowDays <= 0 {
		errors = append(errors, fmt.Sprintf("DateWindowDays must be positive, got: %d", cfg.DateWindowDays))
	}
	if cfg.ContactDelay < 0 {
		errors = append(errors, fmt.Sprintf("ContactDelay cannot be negative, got: %s", cfg.ContactDelay))
	}

	if cfg.EventSink != SinkLog && cfg.EventSink != SinkKafka {
		errors = append(errors, fmt.Sprintf("EventSink must be one of [log, kafka], got: %s", cfg.EventSink))
	}
	if cfg.EventSink == SinkKafka && (cfg.BookingTopic == "" || cfg.ContactTopic == "") {
		errors = append(errors, "BookingTopic and ContactTopic cannot be empty when EventSink is kafka")
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errors = append(errors, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"session_store", cfg.SessionStore,
		"session_ttl", cfg.SessionTTL,
		"session_seal_key_set", cfg.SessionSealKey != "",
		"redis_addr", cfg.RedisAddr,
		"redis_password_set", cfg.RedisPassword != "",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"clinic_timezone", cfg.ClinicTimezone,
		"date_window_days", cfg.DateWindowDays,
		"contact_delay", cfg.ContactDelay,
		"event_sink", cfg.EventSink,
		"booking_topic", cfg.BookingTopic,
		"contact_topic", cfg.ContactTopic,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}
