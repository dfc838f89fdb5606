package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config comes from JOYPAD_* env vars, with a .env file as a dev
// convenience.
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("joypad", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
