package util

import (
	"os"

	"github.com/joho/godotenv"
)

const DefaultPort = "1983"

type Config struct {
	Port      string `mapstructure:"PORT" validate:"required,number"`
	PublicDir string `mapstructure:"PUBLIC_DIR" validate:"required"`
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:      os.Getenv("PORT"),
		PublicDir: os.Getenv("PUBLIC_DIR"),
	}

	if config.Port == "" {
		config.Port = DefaultPort
	}

	if config.PublicDir == "" {
		config.PublicDir = "./public"
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
