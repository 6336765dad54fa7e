package main

import (
	"log"

	"github.com/Torido-Mir/CxC2026/internal/api"
	"github.com/Torido-Mir/CxC2026/internal/assistant"
	"github.com/Torido-Mir/CxC2026/internal/config"
	"github.com/Torido-Mir/CxC2026/internal/database"
	"github.com/Torido-Mir/CxC2026/internal/dataset"
	"github.com/Torido-Mir/CxC2026/internal/geocode"
	"github.com/Torido-Mir/CxC2026/internal/handler"
	"github.com/Torido-Mir/CxC2026/internal/repository"
	"github.com/Torido-Mir/CxC2026/internal/session"
)

func main() {
	cfg := config.Load()

	store, err := dataset.Load(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	if err := database.Init(database.Config{Path: cfg.GeocodeCachePath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	sess := session.New(store, cfg.AutoGridZoom)

	geocodeSvc := geocode.NewService(
		geocode.NewClient(cfg.NominatimURL, cfg.SearchViewbox),
		repository.NewGeocodeCache(database.GetDB()),
	)

	var bridge *assistant.Bridge
	if cfg.ChatBackendURL != "" {
		bridge = assistant.NewBridge(assistant.NewClient(cfg.ChatBackendURL, assistant.DefaultTimeout), sess)
	} else {
		log.Println("[Server] CHAT_BACKEND_URL not set, assistant disabled")
	}

	router := api.SetupRouter(cfg, api.Handlers{
		Map:          handler.NewMapHandler(sess),
		Chat:         handler.NewChatHandler(bridge),
		Search:       handler.NewSearchHandler(geocodeSvc, sess),
		Export:       handler.NewExportHandler(sess),
		Neighborhood: handler.NewNeighborhoodHandler(store),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
