package config

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file when present. Deployed environments set
// real environment variables instead, so a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}
