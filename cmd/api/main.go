package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/GoSim-25-26J-441/project-verification/config"
	"github.com/GoSim-25-26J-441/project-verification/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/cronjob"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/service"
)

const serviceName = "project-verification"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	store, closer, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closer.Close()

	svc := service.NewVerificationService(bootstrap.NewRegistry(&cfg.Registry, store))
	svc.SetLogLevel(cfg.App.LogLevel)

	scheduler := cronjob.NewScheduler(svc)
	if err := scheduler.Start(cfg.App.SnapshotSchedule); err != nil {
		log.Printf("Failed to create cron job: %v", err)
	} else {
		defer scheduler.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Store:          store,
		Service:        svc,
		RateLimitRPS:   cfg.App.RateLimitRPS,
		RateLimitBurst: cfg.App.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("%s listening on :%s (store=%s admin=%s)", serviceName, cfg.Server.Port, cfg.Store.Backend, cfg.Registry.AdminID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	return nil
}
