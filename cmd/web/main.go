package main

import (
	"lawhub_backend/database"
	"lawhub_backend/internal/app"
	"lawhub_backend/internal/logger"
)

func main() {
	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	app.Run()
}
