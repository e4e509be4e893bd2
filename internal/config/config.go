package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type StorageType string

const (
	StorageSQLite StorageType = "sqlite"
	StorageMemory StorageType = "memory"
)

func (t *StorageType) SetValue(s string) error {
	*t = StorageType(s)
	if *t != StorageSQLite && *t != StorageMemory {
		return configNotLoadedErr(`only "sqlite" and "memory" storage types are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-required:""`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Storage struct {
		Type StorageType `yaml:"type" env:"TYPE" env-default:"sqlite"`
		Path string      `yaml:"path" env:"PATH" env-default:"vitalog.db"`
	} `yaml:"storage" env-prefix:"STORAGE_"`

	Seed struct {
		HistoryDays int   `yaml:"history_days" env:"HISTORY_DAYS" env-default:"30"`
		RandomSeed  int64 `yaml:"random_seed" env:"RANDOM_SEED" env-default:"0"`
	} `yaml:"seed" env-prefix:"SEED_"`

	Session struct {
		TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
		Secret   string        `yaml:"secret" env:"SECRET" env-required:""`
	} `yaml:"session" env-prefix:"SESSION_"`
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
