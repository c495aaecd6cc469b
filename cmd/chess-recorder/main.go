package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/park285/chess-notation-recorder/internal/builder"
	appcfg "github.com/park285/chess-notation-recorder/internal/config"
	"github.com/park285/chess-notation-recorder/internal/console"
	"github.com/park285/chess-notation-recorder/internal/obslog"
	"github.com/park285/chess-notation-recorder/internal/session"
	"go.uber.org/zap"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	flush, err := obslog.Init(cfg.Log)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer flush()
	logger := obslog.L()

	// First interrupt cancels the running replay and ends the loop; a second
	// one falls back to the default handler.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	deps, err := builder.New(ctx, cfg, os.Stdout, logger)
	if err != nil {
		logger.Error("recorder init failed", zap.Error(err))
		flush()
		log.Fatalf("init error: %v", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()

	final, err := console.Run(ctx, deps.Dispatcher, console.NewPrompter(os.Stdin), deps.Presenter, session.NewState())
	if err != nil && ctx.Err() == nil {
		logger.Error("input loop stopped", zap.Error(err))
	}
	logger.Info("session_end",
		zap.String("session_id", deps.SessionID),
		zap.Int("moves", final.Ledger.Len()),
	)
}
