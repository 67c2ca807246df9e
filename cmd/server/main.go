package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Shreyas250406/StudySaathi/internal/adaptive"
	"github.com/Shreyas250406/StudySaathi/internal/api"
	"github.com/Shreyas250406/StudySaathi/internal/config"
	"github.com/Shreyas250406/StudySaathi/internal/database"
	"github.com/Shreyas250406/StudySaathi/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	st := store.New(db)

	// The pool cache sits between the selector and the question store so
	// repeat requests for the same (grade, language) don't re-query.
	pool := adaptive.NewPoolCache(st)
	selector := adaptive.NewSelector(pool, nil)
	history := adaptive.NewHistoryTracker(st)
	service := adaptive.NewService(st, selector, history, st)

	handler := api.NewHandler(service, st)

	r := mux.NewRouter()
	handler.Register(r)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
