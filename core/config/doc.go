// Package config provides configuration management for the task sync service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file read with godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, CORS origins, upload limit)
//   - Database: task table connection details (postgres, mysql or sqlite)
//   - Storage: S3/MinIO credentials and upload archive settings
//   - Log: Logging level, format and optional rotating file
//   - Sync: worksheet holding the task export
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.Table)
package config
