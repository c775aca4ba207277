package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okuzmina/standup_bot/internal/chat"
	"github.com/okuzmina/standup_bot/internal/config"
	"github.com/okuzmina/standup_bot/internal/handler"
	"github.com/okuzmina/standup_bot/internal/mailer"
	"github.com/okuzmina/standup_bot/internal/repository/postgres"
	"github.com/okuzmina/standup_bot/internal/router"
	"github.com/okuzmina/standup_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := postgres.NewDB(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := postgres.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	var digestMailer mailer.Mailer
	if cfg.SMTP.Enabled() {
		digestMailer, err = mailer.NewSMTPMailer(cfg.SMTP.Server, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Login, cfg.SMTP.Password)
		if err != nil {
			log.Fatalf("Failed to configure mailer: %v", err)
		}
	} else {
		log.Println("SMTP is not configured, standup digests cannot be delivered")
		digestMailer = mailer.Disabled{}
	}

	teamService := service.NewTeamService(postgres.NewTeamStore(db), chat.NewResolver())
	standupService := service.NewStandupService(teamService, postgres.NewSessionStore(db), digestMailer, cfg.Bot.Name, cfg.SMTP.Timeout)

	teamHandler := handler.NewTeamHandler(teamService)
	standupHandler := handler.NewStandupHandler(standupService)
	eventHandler := handler.NewEventHandler(standupService)

	r := router.SetupRoutes(teamHandler, standupHandler, eventHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
