package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	Auth     AuthConfig     `yaml:"auth"     validate:"required"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Business BusinessConfig `yaml:"business"`
	Uploads  UploadsConfig  `yaml:"uploads"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

// LogLevel maps the configured level onto the wbf logger levels.
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

// LogEngine maps the configured engine onto the wbf logger engines.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"turismo"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"   env-default:"change_me"        validate:"required"`
	Issuer     string        `yaml:"issuer"      env:"JWT_ISSUER"   env-default:"turismo-api"      validate:"required"`
	Audience   string        `yaml:"audience"    env:"JWT_AUDIENCE" env-default:"turismo-frontend" validate:"required"`
	AccessTTL  time.Duration `yaml:"access_ttl"  env:"ACCESS_TTL"   env-default:"8h"               validate:"gt=0"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env:"REFRESH_TTL"  env-default:"168h"             validate:"gt=0"`

	// Seed admin: created on startup when the email does not exist yet.
	AdminEmail    string `yaml:"admin_email"    env:"ADMIN_EMAIL"    env-default:""`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD" env-default:""`
	AdminName     string `yaml:"admin_name"     env:"ADMIN_NAME"     env-default:"Administrador"`
}

// SMTPConfig is optional: an empty host disables outbound mail entirely.
type SMTPConfig struct {
	Host         string `yaml:"host"          env:"SMTP_HOST" env-default:""`
	Port         int    `yaml:"port"          env:"SMTP_PORT" env-default:"587"`
	User         string `yaml:"user"          env:"SMTP_USER" env-default:""`
	Password     string `yaml:"password"      env:"SMTP_PASS" env-default:""`
	From         string `yaml:"from"          env:"SMTP_FROM" env-default:"Turismo Perú <no-reply@turismo.pe>"`
	BrandName    string `yaml:"brand_name"    env:"BRAND_NAME" env-default:"Turismo Perú"`
	OperatorAddr string `yaml:"operator_addr" env:"OPERATOR_EMAIL" env-default:""`
	QueueSize    int    `yaml:"queue_size"    env:"MAIL_QUEUE_SIZE" env-default:"64" validate:"min=1"`
}

type BusinessConfig struct {
	// TZOffsetHours is the operator's reference timezone for bare booking
	// dates (America/Lima is -5).
	TZOffsetHours int    `yaml:"tz_offset_hours"  env:"BUSINESS_TZ_OFFSET" env-default:"-5" validate:"min=-12,max=14"`
	PublicBaseURL string `yaml:"public_base_url"  env:"PUBLIC_BASE_URL"    env-default:""`

	// StrictEnums rejects unknown city/currency values instead of silently
	// substituting the defaults.
	StrictEnums bool `yaml:"strict_enums" env:"VALIDATION_STRICT" env-default:"false"`
}

type UploadsConfig struct {
	Dir          string `yaml:"dir"            env:"UPLOADS_DIR"     env-default:"uploads"`
	MaxSizeBytes int64  `yaml:"max_size_bytes" env:"UPLOADS_MAX_SIZE" env-default:"26214400" validate:"min=1"`
}

// Location returns the fixed business reference zone.
func (b BusinessConfig) Location() *time.Location {
	return time.FixedZone("business", b.TZOffsetHours*3600)
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
