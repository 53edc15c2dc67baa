package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	BaseURL string        `yaml:"base_url" env:"STORE_API_URL" env-default:"http://localhost:8080/api/v1"`
	Timeout time.Duration `yaml:"timeout" env:"STORE_API_TIMEOUT" env-default:"15s"`
}

type Logging struct {
	// File receives the JSON log stream; the terminal itself belongs to
	// the UI, so stdout is not an option.
	File  string `yaml:"file" env:"STORE_ADMIN_LOG_FILE" env-default:"store-admin.log"`
	Level string `yaml:"level" env:"STORE_ADMIN_LOG_LEVEL" env-default:"info"`
}

type Telemetry struct {
	Enabled  bool   `yaml:"enabled" env:"STORE_ADMIN_OTEL_ENABLED" env-default:"false"`
	Endpoint string `yaml:"endpoint" env:"STORE_ADMIN_OTEL_ENDPOINT" env-default:"localhost:4318"`
}

type Config struct {
	API       API       `yaml:"api"`
	Logging   Logging   `yaml:"logging"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Load reads the optional config file (explicit path argument, else
// CONFIG_PATH) and then the environment. The tool must run with zero
// configuration, so a missing file is not an error.
func Load(path string) (*Config, error) {

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("can not read config file: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("can not read environment: %w", err)
	}

	return &cfg, nil
}
