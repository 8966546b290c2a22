package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ZeroDay-Lk/vuldb/blog/application"
	"github.com/ZeroDay-Lk/vuldb/blog/persistence"
	"github.com/ZeroDay-Lk/vuldb/internal/auth"
	"github.com/ZeroDay-Lk/vuldb/internal/logger"
	"github.com/ZeroDay-Lk/vuldb/internal/middleware"
	"github.com/ZeroDay-Lk/vuldb/internal/rest"
	"github.com/ZeroDay-Lk/vuldb/shared/store"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		logger.Setup(cfg.App.LogLevel)

		client, err := store.Connect(store.Config{
			URL:       cfg.Surreal.URL,
			Username:  cfg.Surreal.Username,
			Password:  cfg.Surreal.Password,
			Namespace: cfg.Surreal.Namespace,
			Database:  cfg.Surreal.Database,
		})
		if err != nil {
			return err
		}
		defer client.Close()

		sessionTTL, err := time.ParseDuration(cfg.Admin.SessionTTL)
		if err != nil {
			return err
		}

		postRepo := persistence.NewPostRepository(client)
		postService := application.NewPostService(postRepo)
		parser := application.NewContentParser()
		sessions := auth.NewSessions(sessionTTL)

		router := gin.New()
		router.Use(middleware.LoggingMiddleware())
		router.Use(gin.CustomRecovery(middleware.HandlePanics()))

		rest.NewAPI(
			router,
			rest.NewPostsHandler(postService, parser),
			rest.NewAdminHandler(postRepo, sessions, cfg.Admin.Password),
			sessions,
		)

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: router,
		}

		go func() {
			log.Info().Str("addr", cfg.Server.Addr).Msg("Starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start server")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info().Msg("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return err
		}

		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
