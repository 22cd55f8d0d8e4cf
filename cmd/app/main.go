package main

import (
	"mural/pkg/config"
	"mural/pkg/database"
	"mural/pkg/logger"
	"mural/pkg/storage"

	app "mural/internal/app"

	_ "mural/docs" // Swagger docs
)

// @title           Mural API
// @version         1.0
// @description     Community feed backend: posts with attachments, reactions and comments.

// @host      localhost:4000
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		log.Error("Failed to open database: %v", err)
		panic(err)
	}

	storageClient, err := storage.NewClient(cfg.UploadsDir)
	if err != nil {
		log.Error("Failed to prepare uploads directory: %v", err)
		panic(err)
	}

	app.Run(cfg, log, db, storageClient)
}
