package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	// SQLite allows a single writer, extra connections only queue on the file lock.
	MaxOpenConns int `mapstructure:"max_open_conns"`
}

func (config DBConfig) validate() error {
	var errs []error

	if config.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("missing variable: db connection string"))
	}
	if config.MaxOpenConns < 1 {
		errs = append(errs, fmt.Errorf("max_open_conns must be positive, got %d", config.MaxOpenConns))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config DBConfig) bindEnvironmentVariables() error {
	if err := viper.BindEnv("db.max_open_conns", "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}
	return viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING")
}
