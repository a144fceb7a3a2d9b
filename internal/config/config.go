package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string `mapstructure:"env"`
		LogLevel string `mapstructure:"log_level"`
	} `mapstructure:"app"`

	HTTP struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"http"`

	Tracing struct {
		Enabled  bool   `mapstructure:"enabled"`
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"tracing"`

	// Planning holds the operator-adjustable defaults for the queue and
	// order-age views. Request parameters override these per call.
	Planning struct {
		UrgentHours    int `mapstructure:"urgent_hours"`
		WarningHours   int `mapstructure:"warning_hours"`
		RestockPercent int `mapstructure:"restock_percent"`
	} `mapstructure:"planning"`

	Inventory struct {
		// RecomputeStatus controls whether a material's status is rederived
		// when its quantity changes after creation. Off by default: status
		// then behaves as a manual override set at create/edit time.
		RecomputeStatus bool     `mapstructure:"recompute_status"`
		Categories      []string `mapstructure:"categories"`
		Units           []string `mapstructure:"units"`
	} `mapstructure:"inventory"`
}

// Load reads configuration from the given file, with APP_* environment
// variables taking precedence. An empty path loads defaults and environment
// only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")
	v.SetDefault("planning.urgent_hours", 24)
	v.SetDefault("planning.warning_hours", 48)
	v.SetDefault("planning.restock_percent", 100)
	v.SetDefault("inventory.recompute_status", false)
	v.SetDefault("inventory.categories", []string{"Fabric", "Accessories", "Thread"})
	v.SetDefault("inventory.units", []string{"pcs", "yards"})

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine; defaults and environment still apply.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return c, err
			}
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
