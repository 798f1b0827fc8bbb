package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/osse101/ChinchiroBot_Go/internal/config"
	"github.com/osse101/ChinchiroBot_Go/internal/dice"
	"github.com/osse101/ChinchiroBot_Go/internal/display"
	"github.com/osse101/ChinchiroBot_Go/internal/logger"
	"github.com/osse101/ChinchiroBot_Go/internal/reveal"
	"github.com/osse101/ChinchiroBot_Go/internal/round"
	"github.com/osse101/ChinchiroBot_Go/internal/session"
)

func main() {
	auto := flag.Bool("auto", false, "let the CPU place bets automatically")
	aggression := flag.Float64("aggression", session.DefaultCPUAggression, "CPU betting aggression in [0,1]")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration failed:", err)
		os.Exit(1)
	}

	// Structured logs go to a file so they never garble the terminal feed
	logFile, err := setupFileLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer logFile.Close()

	term := display.NewTerminal(os.Stdout)
	in := bufio.NewReader(os.Stdin)

	roller := dice.NewRoller(nil)
	sequencer := reveal.NewSequencer(reveal.Config{
		SpinDuration:    cfg.SpinDuration,
		TickInterval:    cfg.TickInterval,
		ConfirmDelay:    cfg.ConfirmDelay,
		LastNormalDelay: cfg.LastNormalDelay,
		TenseDelayMin:   cfg.TenseDelayMin,
		TenseDelayMax:   cfg.TenseDelayMax,
	}, reveal.SystemClock{}, rand.Intn)
	animator := reveal.NewAnimator(sequencer, term)

	roundService := round.NewService(roller, animator, nil)

	var bettor session.Bettor
	if *auto {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		bettor = session.NewCPUBettor(session.DefaultPlayerName, *aggression, rng)
	} else {
		bettor = session.NewHumanBettor(session.DefaultPlayerName, in)
	}

	sess := session.New(session.Config{
		Bettor:       bettor,
		Rounds:       roundService,
		Terminal:     term,
		Input:        in,
		Bankroll:     cfg.InitialBankroll,
		AutoContinue: *auto,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "session failed:", err)
		os.Exit(1)
	}
}

// setupFileLogger routes slog output to a session log file
func setupFileLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, err
	}

	name := filepath.Join(cfg.LogDir, fmt.Sprintf("cli_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	loggerCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(loggerCfg, logFile)

	return logFile, nil
}
