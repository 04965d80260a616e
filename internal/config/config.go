package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"prod"`
	Storage StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	UsersCapacity     int `yaml:"users_capacity" env:"USERS_CAPACITY" env-default:"10"`
	QuestionsCapacity int `yaml:"questions_capacity" env:"QUESTIONS_CAPACITY" env-default:"10"`
	// ResultsCapacity of zero sizes the result log like the question store.
	ResultsCapacity int `yaml:"results_capacity" env:"RESULTS_CAPACITY" env-default:"0"`
}

// MustLoad reads an optional .env file, then the YAML file named by
// CONFIG_PATH if set, then the environment. It panics on any error.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("failed to load .env file: " + err.Error())
	}

	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load builds the config from the file at path, or from defaults and the
// environment alone when path is empty.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: config file does not exist: %w", op, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", cfg.Env)
	}

	if cfg.Storage.UsersCapacity <= 0 || cfg.Storage.QuestionsCapacity <= 0 {
		return errors.New("capacities must be positive")
	}

	return nil
}
