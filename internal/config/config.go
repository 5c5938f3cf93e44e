package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel    string            `mapstructure:"log-level"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Db          DbConfig          `mapstructure:"db"`
	Wallet      WalletConfig      `mapstructure:"wallet"`
	Fees        FeesConfig        `mapstructure:"fees"`
	Obfuscation ObfuscationConfig `mapstructure:"obfuscation"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
	Server      ServerConfig      `mapstructure:"server"`
}

func (cfg *Config) Validate() error {
	if err := cfg.ValidateLogLevel(); err != nil {
		return err
	}

	if err := cfg.Ledger.Validate(); err != nil {
		return err
	}

	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Fees.Validate(); err != nil {
		return err
	}

	if err := cfg.Obfuscation.Validate(); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		if err := cfg.Metrics.Validate(); err != nil {
			return err
		}
	}

	if cfg.Server.IsSet() {
		if err := cfg.Server.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *Config) ValidateLogLevel() error {
	// If log level is not set, we don't need to validate it, a default value will be used
	if cfg.LogLevel == "" {
		return nil
	}

	if parsedLevel, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	} else if parsedLevel < zerolog.DebugLevel || parsedLevel > zerolog.FatalLevel {
		return fmt.Errorf("only log levels from debug to fatal are supported")
	}
	return nil
}

// New returns a fully parsed Config object from a given file directory
func New(cfgFile string) (*Config, error) {
	_, err := os.Stat(cfgFile)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)

	v.AutomaticEnv()
	/*
		Below code will replace nested fields in yml into `_` and any `-` into `__` when you try to override this config via env variable
		To give an example:
		1. `some.config.a` can be overriden by `SOME_CONFIG_A`
		2. `some.config-a` can be overriden by `SOME_CONFIG__A`
		This is to avoid using `-` in the environment variable as it's not supported in all os terminal/bash
		Note: vipner package use `.` as delimitter by default. Read more here: https://pkg.go.dev/github.com/spf13/viper#readme-accessing-nested-keys
	*/
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "__"))

	err = v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
