package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Events    EventsConfig    `yaml:"events"    validate:"required"`
	Booths    BoothsConfig    `yaml:"booths"    validate:"required"`
	Images    ImagesConfig    `yaml:"images"`
	Broker    BrokerConfig    `yaml:"broker"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"required,oneof=memory sqlite postgres"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"   validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"        validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"    validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"    validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"expobooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"     validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"          validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"           validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"          validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"expobooker.db"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"     env:"AUTH_JWT_SECRET"     env-default:"change-me-in-production" validate:"required,min=8"`
	TokenTTL      time.Duration `yaml:"token_ttl"      env:"AUTH_TOKEN_TTL"      env-default:"24h"                     validate:"gt=0"`
	AdminName     string        `yaml:"admin_name"     env:"AUTH_ADMIN_NAME"     env-default:"Administrator"`
	AdminEmail    string        `yaml:"admin_email"    env:"AUTH_ADMIN_EMAIL"    env-default:""`
	AdminPassword string        `yaml:"admin_password" env:"AUTH_ADMIN_PASSWORD" env-default:""`
}

type EventsConfig struct {
	// Timezone в котором интерпретируются дата и время из формы.
	Timezone string `yaml:"timezone" env:"EVENTS_TIMEZONE" env-default:"UTC" validate:"required"`
}

func (e EventsConfig) Location() (*time.Location, error) {
	return time.LoadLocation(e.Timezone)
}

type BoothsConfig struct {
	Rows    int `yaml:"rows"    env:"BOOTH_ROWS"    env-default:"4" validate:"min=1,max=26"`
	Columns int `yaml:"columns" env:"BOOTH_COLUMNS" env-default:"6" validate:"min=1,max=99"`
}

type ImagesConfig struct {
	MaxBytes    int    `yaml:"max_bytes"     env:"IMAGES_MAX_BYTES"     env-default:"5242880" validate:"min=1"`
	S3Bucket    string `yaml:"s3_bucket"     env:"IMAGES_S3_BUCKET"     env-default:""`
	S3Region    string `yaml:"s3_region"     env:"IMAGES_S3_REGION"     env-default:""`
	S3AccessKey string `yaml:"s3_access_key" env:"IMAGES_S3_ACCESS_KEY" env-default:""`
	S3SecretKey string `yaml:"s3_secret_key" env:"IMAGES_S3_SECRET_KEY" env-default:""`
}

// S3Enabled сообщает, задано ли объектное хранилище для изображений.
func (i ImagesConfig) S3Enabled() bool {
	return i.S3Bucket != "" && i.S3Region != ""
}

type BrokerConfig struct {
	URL      string `yaml:"url"      env:"BROKER_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"BROKER_EXCHANGE" env-default:"expo.events"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m" validate:"required,gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	// .env опционален: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
