package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the env file once. The file is optional: in containers the
// variables usually arrive through the environment itself. Set
// MYNIU_ENV_FILE to read a different file.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("MYNIU_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		err := godotenv.Load(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatal("loading envs error: ", err)
			}
			log.Printf("env file %s not found, using process environment", path)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
