package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/bootstrap"
	"github.com/osse101/ChinchiroBot_Go/internal/config"
	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/handler"
	"github.com/osse101/ChinchiroBot_Go/internal/history"
	"github.com/osse101/ChinchiroBot_Go/internal/reveal"
	"github.com/osse101/ChinchiroBot_Go/internal/round"
	"github.com/osse101/ChinchiroBot_Go/internal/server"
	"github.com/osse101/ChinchiroBot_Go/internal/sse"
)

// ShutdownTimeout bounds the graceful shutdown sequence
const ShutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system setup failed", "error", err)
		os.Exit(1)
	}

	// SSE hub streams reveal frames and round outcomes to spectators
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	roller := dice.NewRoller(nil)
	sequencer := reveal.NewSequencer(reveal.Config{
		SpinDuration:    cfg.SpinDuration,
		TickInterval:    cfg.TickInterval,
		ConfirmDelay:    cfg.ConfirmDelay,
		LastNormalDelay: cfg.LastNormalDelay,
		TenseDelayMin:   cfg.TenseDelayMin,
		TenseDelayMax:   cfg.TenseDelayMax,
	}, reveal.SystemClock{}, rand.Intn)
	animator := reveal.NewAnimator(sequencer, sse.NewFrameSink(hub))

	roundService := round.NewService(roller, animator, publisher)

	store, err := history.NewStore(cfg.HistorySize)
	if err != nil {
		slog.Error("History store setup failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, roundService, store, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Hub:                hub,
		ResilientPublisher: publisher,
	})
}
