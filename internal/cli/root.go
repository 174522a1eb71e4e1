// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the inkwell terminal front-end.

Each invocation loads the seed catalog, applies the display flags and renders
one view. State is not kept between invocations.

Usage:

	inkwell library
	inkwell read saltwind-cartographer --chapter 2 --preset sepia
	inkwell presets
*/
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/inkwell/internal/app"
	"github.com/taibuivan/inkwell/internal/core/settings"
	"github.com/taibuivan/inkwell/internal/platform/config"
)

// # Root Command

// options holds the global flags and the service they configure.
type options struct {
	catalogPath string
	preset      string
	fontSize    string

	application *app.App
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree writing views to stdout and logs to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "Read web novels from the terminal",
		Long: `inkwell shows your story library and renders chapters with your display settings.

The catalog is loaded from CATALOG_PATH or the built-in seed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file (default: CATALOG_PATH or the built-in seed)")
	rootCmd.PersistentFlags().StringVar(&opts.preset, "preset", "", "Colour preset: light, dark, sepia, night-blue")
	rootCmd.PersistentFlags().StringVar(&opts.fontSize, "font-size", "", "Font size: small, medium, large, xl")

	rootCmd.AddCommand(
		newLibraryCmd(opts),
		newReadCmd(opts),
		newPresetsCmd(),
	)

	return rootCmd
}

// load assembles the service and applies the display flags.
func (opts *options) load(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "inkwell"))

	appOptions := app.FromConfig(cfg)
	appOptions.CreateDelay = 0
	if opts.catalogPath != "" {
		appOptions.CatalogPath = opts.catalogPath
	}

	opts.application, err = app.New(appOptions, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.preset != "" {
		if _, err := opts.application.Settings.ApplyPreset(ctx, opts.preset); err != nil {
			return fmt.Errorf("--preset %q: %w", opts.preset, err)
		}
	}
	if opts.fontSize != "" {
		if _, err := opts.application.Settings.Update(ctx, settings.KeyFontSize, opts.fontSize); err != nil {
			return fmt.Errorf("--font-size %q: %w", opts.fontSize, err)
		}
	}

	return nil
}
