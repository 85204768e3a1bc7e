package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/mines/internal/config"
	"github.com/vancomm/mines/internal/logging"
	"github.com/vancomm/mines/internal/mines"
	"github.com/vancomm/mines/internal/tui"
)

var log = logrus.New()

func runTUI(cfg *config.Config, board *mines.Board) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	model := tui.New(board, tui.Options{Color: cfg.UI.Color, Auto: cfg.UI.Auto}, log)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithoutSignalHandler())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		p.Quit()
		return nil
	})

	return g.Wait()
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	log = logger
	mines.Log = logger

	log.Info("starting up, plain = ", cfg.UI.Plain)
	log.WithFields(cfg.Fields()).Debug("config")

	if cfg.Profile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(cfg.Profile),
			profile.Quiet,
			profile.NoShutdownHook,
		).Stop()
	}

	board, err := mines.New(
		cfg.Board.Rows, cfg.Board.Cols, cfg.Board.Mines,
		mines.NewRand(cfg.Board.Seed),
	)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}

	if cfg.UI.Plain {
		return runPlain(os.Stdin, os.Stdout, board, cfg.UI.Auto)
	}
	return runTUI(cfg, board)
}

// exitCode logs the error returned by run and echoes it to stderr unless the
// logger already writes there.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	log.WithError(err).Error("exit")
	if log.Out != stderr {
		fmt.Fprintf(stderr, "mines: %s\n", err)
	}
	return 1
}

func main() {
	if code := exitCode(run(os.Args[1:]), os.Stderr); code != 0 {
		os.Exit(code)
	}
}
