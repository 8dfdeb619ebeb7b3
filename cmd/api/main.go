package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bluepeak_backend/internal/agents"
	"bluepeak_backend/internal/chat"
	"bluepeak_backend/internal/email"
	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/internal/http/router"
	"bluepeak_backend/internal/leads"
	"bluepeak_backend/internal/listings"
	"bluepeak_backend/internal/mortgage"
	"bluepeak_backend/platform/config"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// Single authoritative EUR→USD rate for price-ceiling normalization
	conv := currency.NewConverter(cfg.EURToUSDRate)

	sender := email.NewSender(cfg, log)

	listingsModule, err := listings.NewModule(conv, val, log)
	if err != nil {
		log.Error("failed to load listings catalog", "error", err)
		panic("failed to load listings catalog: " + err.Error())
	}
	log.Info("listings catalog loaded", "count", len(listingsModule.Repository().All()))

	chatModule := chat.NewModule(cfg, val, log)
	leadsModule := leads.NewModule(sender, listingsModule.Repository(), val, log)
	mortgageModule := mortgage.NewModule(val)
	agentsModule := agents.NewModule()

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			listingsModule,
			chatModule,
			leadsModule,
			mortgageModule,
			agentsModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
