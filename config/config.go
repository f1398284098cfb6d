package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		// DSN selects the store. A postgres:// URL opens PostgreSQL;
		// "memory" opens an in-memory SQLite database; anything else is
		// treated as a SQLite file path.
		DSN string
	}
	Upload struct {
		// Dir is the local directory uploaded assets are written to. It is
		// served under /uploads.
		Dir string
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from file and environment variables.
// The config file is optional; every setting has a default and the
// environment variables SERVER_PORT, DATABASE_URL and UPLOAD_DIR override
// whatever the file provides.
func LoadConfig() {
	viper.SetConfigName("config")   // Name of config file (without extension)
	viper.SetConfigType("yaml")     // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("./config") // Path to look for the config file in
	viper.AddConfigPath(".")        // Optionally look for config in the working directory

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "helpcenter.db")
	viper.SetDefault("upload.dir", "./uploads")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Println("INFO: [Config] Database DSN overridden by environment variable DATABASE_URL.")
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		AppConfig.Upload.Dir = dir
		log.Printf("INFO: [Config] Upload directory overridden by environment variable UPLOAD_DIR: %s", dir)
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
