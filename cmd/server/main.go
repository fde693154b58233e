package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emmanuelethelbert04/account-haven/config"
	"github.com/emmanuelethelbert04/account-haven/internal/database"
	"github.com/emmanuelethelbert04/account-haven/internal/jobs"
	"github.com/emmanuelethelbert04/account-haven/internal/metrics"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
	"github.com/emmanuelethelbert04/account-haven/internal/router"
	"github.com/emmanuelethelbert04/account-haven/pkg/cloudinary"
	"github.com/emmanuelethelbert04/account-haven/pkg/notifier"
	"github.com/emmanuelethelbert04/account-haven/pkg/ordercode"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	database.SeedAdmin(db, &cfg.Admin)

	cloud, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		log.Fatalf("cloudinary: %v", err)
	}

	events := notifier.New(cfg.Notify.EndpointURL, cfg.Notify.APIKey, cfg.Notify.Timeout)
	if events.Enabled() {
		log.WithField("endpoint", cfg.Notify.EndpointURL).Info("notification dispatch enabled")
	} else {
		log.Info("notification dispatch disabled: set NOTIFY_ENDPOINT_URL to enable")
	}

	codes, err := ordercode.NewGenerator()
	if err != nil {
		log.Fatalf("order codes: %v", err)
	}

	m := metrics.NewMarketplaceMetrics()

	scheduler := jobs.NewScheduler(repository.NewWalletRepository(db), log)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	engine := router.Setup(cfg, db, cloud, events, m, codes)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Infof("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")
	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	log.Info("server stopped")
}
