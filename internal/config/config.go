// internal/config/config.go
//
// Process configuration, parsed from the environment into one struct.
// A .env file is honored in development (godotenv) before parsing.

package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries every tunable the server reads at startup.
type Config struct {
	Port     string `env:"PORT" envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath   string `env:"DB_PATH" envDefault:"./data/wordplay.db"`

	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`

	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"wordplay_token"`
	SecureCookies  bool   `env:"SECURE_COOKIES" envDefault:"false"`

	// SessionBackend selects the session store: "memory" or "redis".
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"`
	RedisAddr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	DailySalt string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
