package config

import (
	"strings"

	"antistress/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerHost     string
	ServerPort     int
	DatabaseDbPath string
	LogLevel       string
}

// InitConfig loads configuration from an optional .env file, the environment
// (ANTISTRESS_ prefix) and an optional config.yaml in the working directory.
func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	// .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Info("loaded environment from .env file")
	}

	v := viper.New()
	v.SetEnvPrefix("ANTISTRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8000)
	v.SetDefault("database.db_path", "data/antistress.db")
	v.SetDefault("log.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, log.Err("failed to read config file", err)
		}
	}

	config := Config{
		ServerHost:     v.GetString("server.host"),
		ServerPort:     v.GetInt("server.port"),
		DatabaseDbPath: v.GetString("database.db_path"),
		LogLevel:       v.GetString("log.level"),
	}

	log.Info("configuration initialized",
		"serverHost", config.ServerHost,
		"serverPort", config.ServerPort,
		"databaseDbPath", config.DatabaseDbPath,
	)

	return config, nil
}
