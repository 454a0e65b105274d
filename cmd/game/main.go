package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tomz197/spaaace/internal/config"
	"github.com/tomz197/spaaace/internal/logging"
	"github.com/tomz197/spaaace/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal is the screen, so logs go to a file.
	logPath := config.GetEnv(config.EnvLogFile, filepath.Join(os.TempDir(), "spaaace.log"))
	logger, err := logging.New(settings.LogLevel, logging.EncodingConsole, logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger.With(zap.String("frontend", "terminal")),
	})
	if err != nil {
		logger.Error("game failed", zap.Error(err))
	}
	return err
}
