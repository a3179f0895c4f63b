package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpapi "github.com/forum-hub/forum-hub/internal/api/http"
	appComment "github.com/forum-hub/forum-hub/internal/application/comment"
	appReaction "github.com/forum-hub/forum-hub/internal/application/reaction"
	appTopic "github.com/forum-hub/forum-hub/internal/application/topic"
	"github.com/forum-hub/forum-hub/internal/config"
	domainComment "github.com/forum-hub/forum-hub/internal/domain/comment"
	domainTopic "github.com/forum-hub/forum-hub/internal/domain/topic"
	"github.com/forum-hub/forum-hub/internal/infrastructure/likeguard"
	"github.com/forum-hub/forum-hub/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, cfg.MigrationsDir); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	topicRepo := postgres.NewTopicRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)

	// one shared guard for the whole process
	guard := likeguard.NewGuard()

	// services
	topicSvc := appTopic.NewService(topicRepo, logger)
	commentSvc := appComment.NewService(commentRepo, logger)
	topicReactions := appReaction.NewService[*domainTopic.Topic](topicRepo, logger)
	commentReactions := appReaction.NewService[*domainComment.Comment](commentRepo, logger)

	apiServer := httpapi.NewServer(topicSvc, commentSvc, topicReactions, commentReactions, guard, cfg.SessionCookieName, cfg.SessionCookieSecure)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Int("guard_entries", guard.Len()).Msg("shutting down")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
