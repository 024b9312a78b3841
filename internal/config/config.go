package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	HTTP     HTTPConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	OpenAI   OpenAIConfig
	Schedule ScheduleConfig
}

type HTTPConfig struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

type DBConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"hrms"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"hrms.db"`
	MaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5"`
}

type RedisConfig struct {
	Addr       string `env:"REDIS_ADDR"`
	MaxRetries int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
}

type KafkaConfig struct {
	Broker     string `env:"KAFKA_BROKER"`
	MaxRetries int    `env:"KAFKA_MAX_RETRIES" envDefault:"5"`
	GroupID    string `env:"KAFKA_CALENDAR_GROUP_ID" envDefault:"go-hrms-calendar-sync"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"12h"`
}

type OpenAIConfig struct {
	APIKey  string        `env:"OPENAI_API_KEY"`
	BaseURL string        `env:"OPENAI_BASE_URL"`
	Model   string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	Timeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"15s"`
}

type ScheduleConfig struct {
	OutboxPollInterval   time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`
	ReturnToWorkInterval time.Duration `env:"RETURN_TO_WORK_INTERVAL" envDefault:"1h"`
	ReturnToWorkDays     int           `env:"RETURN_TO_WORK_DAYS_IN_ADVANCE" envDefault:"2"`

	ReturnToWorkNotifyManager bool   `env:"RETURN_TO_WORK_NOTIFY_MANAGER" envDefault:"true"`
	ReturnToWorkNotifyIT      bool   `env:"RETURN_TO_WORK_NOTIFY_IT" envDefault:"true"`
	ReturnToWorkNotifyHR      bool   `env:"RETURN_TO_WORK_NOTIFY_HR" envDefault:"false"`
	ReturnToWorkITAddress     string `env:"RETURN_TO_WORK_IT_ADDRESS" envDefault:"it@company.com"`
	ReturnToWorkHRAddress     string `env:"RETURN_TO_WORK_HR_ADDRESS" envDefault:"hr@company.com"`
}

// Load reads an optional .env file, then parses the process environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if c.Schedule.ReturnToWorkDays < 0 {
		return fmt.Errorf("RETURN_TO_WORK_DAYS_IN_ADVANCE must not be negative")
	}
	return nil
}
