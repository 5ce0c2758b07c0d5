package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken    string        `env:"DISCORD_TOKEN,required,notEmpty"`
	ClipsPath       string        `env:"CLIPS_PATH" envDefault:"./clips"`
	StoragePath     string        `env:"STORAGE_PATH" envDefault:"datastore.json"`
	CommandPrefix   string        `env:"COMMAND_PREFIX" envDefault:"!"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8787"`
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"60s"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
