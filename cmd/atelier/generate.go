package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/atelier/internal/catalog"
	"github.com/mark3labs/atelier/internal/config"
	"github.com/mark3labs/atelier/internal/generation"
	"github.com/mark3labs/atelier/internal/hooks"
	"github.com/mark3labs/atelier/internal/logger"
	"github.com/mark3labs/atelier/internal/tui/patternwizard"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	designDelay  time.Duration
	patternDelay time.Duration
	catalog      string
	hooksFile    string
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"new"},
	Short:   "Start a new pattern brief",
	Long: `Start the pattern wizard.

Fill in the brief step by step, review it, and generate. Generation is
simulated: the design and the pattern each appear after a configurable
delay. Press esc on the first step to return to the studio.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().DurationVar(&generateFlags.designDelay, "design-delay", config.DefaultDesignDelay, "How long design generation takes")
	generateCmd.Flags().DurationVar(&generateFlags.patternDelay, "pattern-delay", config.DefaultPatternDelay, "How long pattern generation takes")
	generateCmd.Flags().StringVarP(&generateFlags.catalog, "catalog", "c", "", "Catalog YAML file (default: built-in catalog)")
	generateCmd.Flags().StringVar(&generateFlags.hooksFile, "hooks", "", "Hooks file (default: .atelier.hooks.yml)")
}

// loadConfig loads config files and env, then applies flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("design-delay") {
		cfg.DesignDelay = generateFlags.designDelay
	}
	if flags.Changed("pattern-delay") {
		cfg.PatternDelay = generateFlags.patternDelay
	}
	if flags.Changed("catalog") {
		cfg.CatalogFile = generateFlags.catalog
	}
	if flags.Changed("hooks") {
		cfg.HooksFile = generateFlags.hooksFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	hooksPath := cfg.HooksFile
	if !filepath.IsAbs(hooksPath) {
		hooksPath = filepath.Join(workDir, hooksPath)
	}
	hooksCfg, err := hooks.LoadFile(hooksPath)
	if err != nil {
		return fmt.Errorf("failed to load hooks: %w", err)
	}

	opts := patternwizard.Options{
		Catalog: cat,
		Delays:  generation.Delays{Design: cfg.DesignDelay, Pattern: cfg.PatternDelay},
		CartURL: cfg.CartURL,
		WorkDir: workDir,
	}
	if hooksCfg != nil {
		opts.Hooks = hooksCfg
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting pattern wizard (design %s, pattern %s)", cfg.DesignDelay, cfg.PatternDelay)
	outcome, err := patternwizard.Run(ctx, opts)
	if err != nil {
		return err
	}
	if outcome == patternwizard.OutcomeBackToStudio {
		fmt.Println("Back to the studio.")
	}
	return nil
}
