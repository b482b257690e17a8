package config

import (
	"reflect"
	"strings"

	"gdkp-ledger/core/database"
	"gdkp-ledger/core/logger"
	"gdkp-ledger/core/server"
	"gdkp-ledger/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Paths holds the default ingestion directories.
	Paths PathsConfig `mapstructure:"paths"`
	// Server holds configuration for the records HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage mirror.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the index mirror database.
	Database database.Config `mapstructure:"database"`
}

// PathsConfig holds the directories used when no path flag is given.
type PathsConfig struct {
	// Root is the raw export archive.
	Root string `mapstructure:"root" default:""`
	// Dest receives index.json and the records directory.
	Dest string `mapstructure:"dest" default:""`
	// Add is the staging directory of new exports.
	Add string `mapstructure:"add" default:""`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PATHS_ROOT -> paths.root)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
