package main

import (
	"log"

	"github.com/ncaldwell/flightmap-backend-go/internal/api"
	"github.com/ncaldwell/flightmap-backend-go/internal/config"
	"github.com/ncaldwell/flightmap-backend-go/internal/database"
	"github.com/ncaldwell/flightmap-backend-go/internal/handler"
	"github.com/ncaldwell/flightmap-backend-go/internal/repository"
	"github.com/ncaldwell/flightmap-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	repo := repository.NewRouteRepository(database.GetDB())
	datasetService := service.NewDatasetService(repo, cfg.CSVPath)

	// Import the route dataset once; any load error is fatal before the
	// server reaches a servable state.
	count, err := datasetService.Import()
	if err != nil {
		log.Fatal("Failed to import route dataset:", err)
	}
	log.Printf("Imported %d flight records from %s", count, cfg.CSVPath)

	figureService := service.NewFigureService(repo)
	router := api.SetupRouter(cfg,
		handler.NewFigureHandler(figureService),
		handler.NewDatasetHandler(datasetService))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
