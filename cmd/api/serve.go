package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Raymond9734/linkpager/internal/config"
	"github.com/Raymond9734/linkpager/internal/db"
	"github.com/Raymond9734/linkpager/internal/events"
	"github.com/Raymond9734/linkpager/internal/handler"
	"github.com/Raymond9734/linkpager/internal/repository"
	"github.com/Raymond9734/linkpager/internal/service"
)

func newServeCmd(logger *slog.Logger) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.API.Port = port
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on (overrides API_PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting linkpager API server")

	database, err := db.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	logger.Info("connected to database")

	store, err := events.NewRedisStore(cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer store.Close()

	customerRepo := repository.NewCustomerRepository(database.DB)
	campaignRepo := repository.NewCampaignRepository(database.DB)
	messageRepo := repository.NewOutboundMessageRepository(database.DB)

	router := handler.NewRouter(handler.Dependencies{
		Pagination:   cfg.Pagination,
		Customers:    service.NewCustomerService(customerRepo, logger),
		Campaigns:    service.NewCampaignService(campaignRepo, messageRepo, logger),
		Messages:     service.NewMessageService(messageRepo, logger),
		Events:       service.NewEventService(store, logger),
		DBHealth:     database,
		EventsHealth: store,
		Logger:       logger,
	})

	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info("server stopped gracefully")
		return nil
	}
}
