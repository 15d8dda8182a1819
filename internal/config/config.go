package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del gateway.
type Config struct {
	HTTPPort          string `env:"HTTP_PORT" envDefault:"8080"`
	PlatformBaseURL   string `env:"PLATFORM_BASE_URL,required"`
	PlatformTimeoutMS int    `env:"PLATFORM_TIMEOUT_MS" envDefault:"15000"`
	TokenDBPath       string `env:"TOKEN_DB_PATH" envDefault:"data/tokens.db"`
	TokenSecret       string `env:"TOKEN_SECRET"`
	RedisAddr         string `env:"REDIS_ADDR"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
