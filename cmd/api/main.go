package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	transportHttp "github.com/iamasit07/connect4-engine/internal/transport/http"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	depth := cfg.SearchDepth
	if depth <= 0 {
		depth = bot.ParseDifficulty(cfg.Difficulty).Depth()
	}

	analysisHandler := transportHttp.NewAnalysisHandler(depth, cfg.SearchWorkers)
	router := transportHttp.NewRouter(analysisHandler, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("[HTTP] Analysis server starting on :%s (default depth %d)", cfg.Port, analysisHandler.DefaultDepth)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[HTTP] Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[HTTP] Server exited gracefully")
}
