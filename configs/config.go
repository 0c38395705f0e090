package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource string
	Port     string
	Seed     bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment defaults")
	}

	return &Config{
		DBSource: getEnv("DB_SOURCE", "file::memory:?cache=shared"),
		Port:     getEnv("PORT", "8000"),
		Seed:     getEnv("SEED", "true") != "false",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
