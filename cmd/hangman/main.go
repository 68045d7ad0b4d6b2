package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"

	"github.com/lox/hangman/internal/config"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/session"
	"github.com/lox/hangman/internal/tui"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"hangman.hcl" help:"Path to HCL configuration file"`
	LogFile  string           `help:"Log file path (overrides config)"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Banner   string           `help:"Decorative banner file (overrides config)"`
	Seed     int64            `help:"Random seed for word selection (0 = time based)"`
	NoColor  bool             `help:"Disable colour output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hangman"),
		kong.Description("Guess the word one letter at a time"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	err := run(&cli)
	ctx.FatalIfErrorf(err)
}

func run(cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	bank, err := cfg.Bank()
	if err != nil {
		return err
	}

	seed := randutil.ResolveSeed(cli.Seed)
	logger.Info("Starting hangman", "version", version, "words", bank.Len(), "seed", seed)

	s := session.New(bank, randutil.New(seed), quartz.NewReal(), logger)
	banner := tui.LoadBanner(cfg.Banner, logger)
	model := tui.New(s, tui.NewStyles(cfg.Theme), banner, logger)

	// Set up signal handling for graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(sigCtx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("Interrupted, shutting down")
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	st := s.Stats()
	logger.Info("Session finished", "rounds", st.Rounds, "wins", st.Wins, "losses", st.Losses)
	return nil
}

func loadConfig(cli *CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	// Apply command line overrides
	if cli.LogFile != "" {
		cfg.LogFile = cli.LogFile
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Banner != "" {
		cfg.Banner = cli.Banner
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
