package main

import (
	"jobconnect/internal/app"
	"jobconnect/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}
	app.Run()
}
