package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type VacancyBackend string

const (
	BackendMemory VacancyBackend = "memory"
	BackendSqlite VacancyBackend = "sqlite"
)

type StoreConfig struct {
	VacancyBackend          VacancyBackend `mapstructure:"vacancy_backend"`
	PasswordHashCost        int            `mapstructure:"password_hash_cost"`
	VacancyExpirationInDays int            `mapstructure:"vacancy_expiration_days"`
}

func (config StoreConfig) validate() error {
	var errs []error

	switch config.VacancyBackend {
	case BackendMemory, BackendSqlite:
	default:
		errs = append(errs, fmt.Errorf("unknown vacancy_backend: %q", config.VacancyBackend))
	}

	if config.PasswordHashCost < bcrypt.MinCost || config.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("password_hash_cost must be in [%d, %d], got %d",
			bcrypt.MinCost, bcrypt.MaxCost, config.PasswordHashCost))
	}

	if config.VacancyExpirationInDays <= 0 {
		errs = append(errs, fmt.Errorf("vacancy_expiration_days must be greater than zero"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config StoreConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("store.vacancy_backend", "VACANCY_BACKEND"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.password_hash_cost", "PASSWORD_HASH_COST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("store.vacancy_expiration_days", "VACANCY_EXPIRATION_DAYS"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
