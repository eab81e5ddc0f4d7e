package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/config"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/server"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var st store.TableStore
	switch cfg.StoreDriver {
	case "memory":
		st = store.NewMemory()
		log.Printf("using in-memory store (data is not persisted)")
	default:
		if cfg.SpreadsheetID == "" {
			log.Fatal("SPREADSHEET_ID is required with STORE_DRIVER=sheets")
		}
		st = store.NewSheets(cfg.SpreadsheetID, cfg.CredentialsFile)
	}

	log.Printf("Starting server env=%s port=%s store=%s", cfg.Env, cfg.Port, cfg.StoreDriver)
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(st, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
