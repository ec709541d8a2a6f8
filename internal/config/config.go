// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = newValidator()

// Config holds the application's configuration, loaded from config/.env and the environment.
type Config struct {
	APIHost           string `validate:"required"`
	Port              int    `validate:"required,min=1,max=65535"`
	APIToken          string
	DescriptorPattern string `validate:"required,glob"`
	VersionField      string `validate:"required,oneof=FileVersion ProductVersion"`
	LogFile           string
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		_, err := filepath.Match(fl.Field().String(), "")
		return err == nil
	})
	return v
}

// Load loads and validates the application configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom loads configuration from the given .env file, letting environment
// variables override file values. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", DefaultAPIHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("DESCRIPTOR_PATTERN", DefaultDescriptorPattern)
	v.SetDefault("VERSION_FIELD", DefaultVersionField)
	v.SetDefault("LOG_FILE", DefaultLogFile)

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		// SetConfigFile surfaces a missing file as a plain *fs.PathError.
		if !errors.As(err, &cfgErr) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appConfig := &Config{
		APIHost:           v.GetString("API_HOST"),
		Port:              v.GetInt("PORT"),
		APIToken:          v.GetString("API_TOKEN"),
		DescriptorPattern: v.GetString("DESCRIPTOR_PATTERN"),
		VersionField:      v.GetString("VERSION_FIELD"),
		LogFile:           v.GetString("LOG_FILE"),
	}

	if err := appConfig.Validate(); err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Validate checks the configuration against its struct rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// AuthEnabled reports whether API requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.APIToken != ""
}
