// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// DefaultAccountPrefix is used when ACCOUNT_PREFIX is empty.
const DefaultAccountPrefix = "ACC"

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress       string `mapstructure:"SERVER_ADDRESS"`
	Environment         string `mapstructure:"GO_ENV"`
	AccountPrefix       string `mapstructure:"ACCOUNT_PREFIX"`
	AccountSequenceBase int64  `mapstructure:"ACCOUNT_SEQUENCE_BASE"`
	SeedDemoAccounts    bool   `mapstructure:"SEED_DEMO_ACCOUNTS"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("ACCOUNT_PREFIX", DefaultAccountPrefix)
	v.SetDefault("ACCOUNT_SEQUENCE_BASE", 1000)
	v.SetDefault("SEED_DEMO_ACCOUNTS", false)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if c.AccountPrefix == "" {
		c.AccountPrefix = DefaultAccountPrefix
	}

	return c, nil
}
