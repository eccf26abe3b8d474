package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

func New() *Config {
	once.Do(func() {
		if _, err := os.Stat("./configs/.env"); err == nil {
			err = godotenv.Load("./configs/.env")
			if err != nil {
				log.Fatal("loading envs error: ", err)
			}
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// GetStringDefault falls back when the variable is unset or empty.
func (c *Config) GetStringDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
