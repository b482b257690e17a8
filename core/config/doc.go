// Package config provides configuration management for gdkp-ledger.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Paths: default root, dest and add directories (PATHS_ROOT, PATHS_DEST, PATHS_ADD)
//   - Server: records API port and API key
//   - Storage: S3/MinIO mirror of the raw archive and records
//   - Database: MySQL/SQLite mirror of the index
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paths.Dest)
package config
