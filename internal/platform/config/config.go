package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config reúne la configuración del proceso, leída del entorno al arrancar.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"zoo-management"`

	// SeedFile es opcional: ruta a un fixture YAML con datos de demo que se
	// cargan al arrancar, pasando por los services.
	SeedFile string `env:"SEED_FILE"`
}

// Load parsea el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr devuelve la dirección de escucha para el servidor HTTP.
func (c Config) Addr() string {
	return ":" + c.Port
}
