package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	Locale             string        `env:"LOCALE" envDefault:"ja"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	JanitorInterval    time.Duration `env:"JANITOR_INTERVAL" envDefault:"1m"`
	StaticDir          string        `env:"STATIC_DIR" envDefault:"web/static"`
	AdminAPIKey        string        `env:"ADMIN_API_KEY"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
