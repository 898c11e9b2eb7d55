package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bagbot/internal/catalog"
	"bagbot/internal/config"
	"bagbot/internal/conversation"
	"bagbot/internal/infrastructure/logger"
	"bagbot/internal/infrastructure/mysql"
	"bagbot/internal/line"
	"bagbot/internal/order"
	"bagbot/internal/order/repository"
	"bagbot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zapLogger.Fatal("loading product catalog", zap.Error(err))
	}

	notifiers := order.Notifiers{order.NewLogNotifier(zapLogger)}
	if cfg.Archive.Enabled {
		db, err := mysql.NewConnection(cfg.Archive)
		if err != nil {
			zapLogger.Fatal("connecting to archive database", zap.Error(err))
		}
		defer db.Close()
		zapLogger.Info("archive database connected")

		notifiers = append(notifiers, repository.NewMySQLArchiveRepository(db))
	}

	store := order.NewStore(notifiers, zapLogger)
	handler := conversation.NewHandler(store, cat, zapLogger)

	sender, err := line.NewSender(cfg.Line.ChannelToken, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating LINE client", zap.Error(err))
	}
	webhook := line.NewWebhook(cfg.Line.ChannelSecret, handler, sender, zapLogger)

	router := server.NewRouter(webhook, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
