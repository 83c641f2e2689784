package service

import (
	"log"

	"pressroom/app/config"
	"pressroom/app/news"
	"pressroom/app/routes"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
)

// RunAppServer starts the blog service
func RunAppServer(args []string) {
	cfg, err := config.Load(configPathFromArgs(args))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set up the database and router
	opts := badger.DefaultOptions(cfg.DataDir)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	sessions := services.NewSessionStore(cfg.SessionTTL())
	fetcher := news.NewClient(cfg.News.BaseURL, cfg.News.APIKey)

	router := routes.SetupRoutes(db, fetcher, sessions, cfg)
	if router == nil {
		log.Fatal("Failed to setup routes")
	}

	log.Printf("Starting blog service on %s", cfg.ListenAddr)
	if err := routes.StartServer(cfg.ListenAddr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// configPathFromArgs extracts an optional --config flag
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
