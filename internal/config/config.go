package config

import (
	"errors"

	"github.com/caarlos0/env/v10"
)

// devSessionSecret se usa solo fuera de produccion cuando SESSION_SECRET
// no esta configurado.
const devSessionSecret = "dev-session-secret"

// ErrSessionSecretRequired indica que falta SESSION_SECRET en produccion.
var ErrSessionSecretRequired = errors.New("SESSION_SECRET is required in production")

// Config centraliza la configuración del servicio.
type Config struct {
	AppEnv        string `env:"APP_ENV" envDefault:"development"`
	HTTPPort      string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	SessionSecret string `env:"SESSION_SECRET"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	SMTPHost      string `env:"SMTP_HOST"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string `env:"SMTP_USER"`
	SMTPPass      string `env:"SMTP_PASS"`
	SMTPFrom      string `env:"SMTP_FROM"`
	SMTPFromName  string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS    bool   `env:"SMTP_USE_TLS" envDefault:"false"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		// Arrancar en produccion con el fallback fijo dejaria las sesiones
		// firmadas con un valor conocido.
		if cfg.IsProduction() {
			return nil, ErrSessionSecretRequired
		}
		cfg.SessionSecret = devSessionSecret
	}
	return &cfg, nil
}

// IsProduction indica si el servicio corre en ambiente productivo.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
