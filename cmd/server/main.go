package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"naijastream/api"
	"naijastream/config"
	"naijastream/handlers"
	"naijastream/services/catalog"
	"naijastream/services/subscribe"
	"naijastream/services/tagline"
	"naijastream/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.Load()

	if cfg.LogPath != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}))
	}

	log.Println("Starting naijastream API server...")

	if cfg.TMDBAPIKey == "" {
		log.Println("Warning: TMDB_API_KEY not set, movie endpoints will refuse requests")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, taglines fall back to canned text")
	}

	httpc := &http.Client{Timeout: 15 * time.Second}
	catalogSvc := catalog.NewService(cfg.TMDBAPIKey, cfg.Region, httpc, time.Duration(cfg.CacheTTLHours)*time.Hour)
	taglineSvc := tagline.NewService(cfg.GeminiAPIKey, httpc)
	subscribers := subscribe.NewStore(afero.NewOsFs(), cfg.SubscribersPath)

	movieHandler := handlers.NewMovieHandler(catalogSvc)
	taglineHandler := handlers.NewTaglineHandler(taglineSvc)
	subscribeHandler := handlers.NewSubscribeHandler(subscribers)

	router := utils.NewRouter(cfg.AllowedOrigins)
	apiRouter := router.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/movies/trending", movieHandler.Trending).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/new", movieHandler.New).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/cheapest", movieHandler.Cheapest).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/low-data", movieHandler.LowData).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/search", movieHandler.Search).Methods(http.MethodGet)
	apiRouter.HandleFunc("/movies/{id:[0-9]+}", movieHandler.ByID).Methods(http.MethodGet)
	apiRouter.HandleFunc("/subscribe", subscribeHandler.Subscribe).Methods(http.MethodPost)

	// The tagline endpoint is the only one that spends upstream model quota,
	// so it gets its own per-IP limit of 10 per minute.
	taglineLimiter := api.NewRateLimiter(rate.Every(6*time.Second), 10)
	taglineRouter := apiRouter.PathPrefix("/generate-tagline").Subrouter()
	taglineRouter.Use(taglineLimiter.Middleware())
	taglineRouter.HandleFunc("", taglineHandler.Generate).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %d", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
