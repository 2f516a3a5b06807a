package config

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AtlasURI                 string `mapstructure:"ATLAS_URI"`
	DatabaseName             string `mapstructure:"DB_NAME"`
	ServerPort               int    `mapstructure:"SERVER_PORT"`
	NatsURL                  string `mapstructure:"NATS_URL"`
	LogLevel                 string `mapstructure:"LOG_LEVEL"`
	LogPretty                bool   `mapstructure:"LOG_PRETTY"`
	EnableBootstrap          bool   `mapstructure:"ENABLE_BOOTSTRAP"`
	BootstrapManagerEmail    string `mapstructure:"BOOTSTRAP_MANAGER_EMAIL"`
	BootstrapManagerPassword string `mapstructure:"BOOTSTRAP_MANAGER_PASSWORD"`
}

var ErrMissingAtlasURI = errors.New("no ATLAS_URI environment variable has been defined")

var defaults = map[string]any{
	"DB_NAME":                    "meanStackExample",
	"SERVER_PORT":                5200,
	"NATS_URL":                   "",
	"LOG_LEVEL":                  "info",
	"LOG_PRETTY":                 false,
	"ENABLE_BOOTSTRAP":           false,
	"BOOTSTRAP_MANAGER_EMAIL":    "manager@example.com",
	"BOOTSTRAP_MANAGER_PASSWORD": "",
}

// New reads an optional .env file from the working directory and then the
// process environment. Values already present in the environment win.
func New() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	if err := v.BindEnv("ATLAS_URI"); err != nil {
		return Config{}, errors.Wrap(err, "binding ATLAS_URI")
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.AtlasURI == "" {
		return ErrMissingAtlasURI
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return errors.Errorf("invalid server port %d", c.ServerPort)
	}
	if c.DatabaseName == "" {
		return errors.New("DB_NAME must not be empty")
	}
	return nil
}
