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

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/appcontext"
	"github.com/RoyceAzure/lab/storefront/internal/config"
)

func main() {
	cf, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		log.Fatalf("failed to init application context: %v", err)
	}

	handlers := router.Handlers{
		Product: handler.NewProductHandler(app.CatalogService),
		Cart:    handler.NewCartHandler(app.CartService, app.CatalogService),
		Order:   handler.NewOrderHandler(app.OrderService),
		Auth:    handler.NewAuthHandler(app.AuthService),
		User:    handler.NewUserHandler(app.UserService),
		Session: handler.NewSessionHandler(app.SessionService),
	}

	r := router.SetupRouter(handlers, app.AuthService, &app.Logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		app.Logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("server shutdown error")
		}
		if err := app.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("application shutdown error")
		}
		shutdownCompleted <- struct{}{}
	}()

	app.Logger.Info().Str("port", cf.ServerPort).Msg("storefront server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	<-shutdownCompleted
	app.Logger.Info().Msg("storefront server stopped")
}
