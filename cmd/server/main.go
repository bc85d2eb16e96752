package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "action-agent/internal/api/http"
	"action-agent/internal/di"
	"action-agent/internal/infrastructure/env"
)

func main() {
	envService := env.NewEnvService()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, di.Config{
		Headless:         envService.GetBool("HEADLESS", true),
		LogLevel:         orDefault(envService.Get("LOG_LEVEL"), "info"),
		OpenRouterAPIKey: envService.Get("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.Get("OPENROUTER_MODEL_NAME"),
		UnitTimeout:      envService.GetDuration("EXECUTION_TIMEOUT", 60*time.Second),
	}, envService)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}
	defer container.Close()

	srv := httpapi.NewServer(httpapi.Executors{
		Pattern:    container.PatternExecutor,
		Generative: container.GenerativeExecutor,
	}, container.Registry, container.Credentials)

	addr := orDefault(envService.Get("HTTP_ADDR"), ":8001")
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		container.Logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			container.Logger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Shutdown failed", "error", err)
	}
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
