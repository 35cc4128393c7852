package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

func (config MetricsConfig) validate() error {
	if config.Addr == "" {
		return fmt.Errorf("missing variable: metrics addr")
	}
	return nil
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("metrics.addr", "METRICS_ADDR")
}
