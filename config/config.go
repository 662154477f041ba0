package config

import (
	"github.com/anand7600/CodeAlpha-Social-Media-Platform/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the recognized environment options.
type Config struct {
	Port      string
	DBUrl     string
	JWTSecret string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "3000")

	return Config{
		Port:      v.GetString("PORT"),
		DBUrl:     v.GetString("DB_URL"),
		JWTSecret: v.GetString("JWT_SECRET"),
	}
}
