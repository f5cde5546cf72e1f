package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/destroyds/internal/audio"
	"github.com/tomz197/destroyds/internal/audio/playback"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The terminal belongs to the game while it runs; logs are held back until
	// it is restored unless LOG_FILE points elsewhere.
	var held bytes.Buffer
	var logOut io.Writer = &held
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut)
	defer func() {
		_, _ = held.WriteTo(os.Stderr)
	}()

	settings := config.Load(logger)
	bank, err := audio.LoadBank(settings.SoundsDir)
	if err != nil {
		return err
	}
	player := openAudio(bank, logger)
	if p, ok := player.(*playback.Player); ok {
		defer p.Close()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, loop.Options{
		Settings: settings,
		Audio:    player,
		Logger:   logger,
	})
}

// openAudio returns a speaker-backed player, or silence when no device is
// available.
func openAudio(bank *audio.Bank, logger *log.Logger) loop.Audio {
	player, err := playback.NewPlayer(bank, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Silent{}
	}
	return player
}
