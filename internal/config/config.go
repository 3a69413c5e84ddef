package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds all runtime settings for the API.
type Config struct {
	Port          string   `mapstructure:"API_PORT"`
	Env           string   `mapstructure:"ENV"`
	MongoURI      string   `mapstructure:"MONGO_URI"`
	MongoDatabase string   `mapstructure:"MONGO_DATABASE"`
	JWTSecret     string   `mapstructure:"JWT_SECRET"`
	AllowOrigins  []string `mapstructure:"ALLOW_ORIGINS"`
}

// Load reads configuration from the environment, with an optional
// config.yaml for local development.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("API_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "doctorsPortal")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ALLOW_ORIGINS", []string{"http://localhost:3000"})

	// A config file is optional; env vars alone are fine.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
