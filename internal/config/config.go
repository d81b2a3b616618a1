package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv       = EnvLocal
	defaultLogLevel  = "info"
	defaultConfigDir = ".vaxtrack"
	defaultDataFile  = "vaxtrack.db"
)

type Config struct {
	Env       string `mapstructure:"app_env"`
	LogLevel  string `mapstructure:"log_level"`
	ConfigDir string `mapstructure:"config_dir"`
	DataPath  string `mapstructure:"data_path"`
}

// MustLoad loads the client configuration from the environment, with an
// optional .env file, and panics on an invalid result.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", "")
	viper.SetDefault("DATA_PATH", "")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := resolveConfigDir(viper.GetString("CONFIG_DIR"), homeDir)

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config directory: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:       viper.GetString("APP_ENV"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
		ConfigDir: configDir,
		DataPath:  dataPath,
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}

	return cfg
}

// resolveConfigDir picks the config directory: an unset CONFIG_DIR
// (empty sentinel) means the default under the home directory, while an
// explicit value is taken as given — even if it happens to spell the
// default name.
func resolveConfigDir(explicit, homeDir string) string {
	if explicit == "" {
		return filepath.Join(homeDir, defaultConfigDir)
	}
	return explicit
}

func (c *Config) validate() error {
	if c.ConfigDir == "" {
		return fmt.Errorf("config_dir must not be empty")
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	return nil
}

// IsProd reports whether the prod environment is active.
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal reports whether the local environment is active.
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
