package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageStream MessageStreamConfig
	HttpClient    HttpClientConfig
	UserService   UserServiceConfig
	Booking       BookingConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"APP_PORT" default:"8081"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"trip_booking"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpen  int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdle  int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	User     string `envconfig:"AMQP_USER" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type               string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Timeout            time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
	ConsecutiveFailure int64         `envconfig:"HTTP_CLIENT_CONSECUTIVE_FAILURE" default:"5"`
	ErrorRate          float64       `envconfig:"HTTP_CLIENT_ERROR_RATE" default:"0.3"`
	MinSamples         int64         `envconfig:"HTTP_CLIENT_MIN_SAMPLES" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"USER_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"USER_SERVICE_PORT" default:"8080"`
}

type BookingConfig struct {
	// StatusBaseURL is the public prefix for the status link handed back on
	// booking creation; the status token is appended to it.
	StatusBaseURL string `envconfig:"BOOKING_STATUS_BASE_URL" default:"http://localhost:8081/api/v1/bookings/status"`
	// RestoreOnReject re-credits both inventory pools atomically with the
	// reject transition when enabled.
	RestoreOnReject bool `envconfig:"BOOKING_RESTORE_ON_REJECT" default:"true"`
	// ReminderLead is how long before departure the reminder task fires.
	ReminderLead time.Duration `envconfig:"BOOKING_REMINDER_LEAD" default:"24h"`
}

func InitConfig() *Config {
	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}
