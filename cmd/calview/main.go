package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/calview/internal/update"
)

type options struct {
	date      string
	trimWeeks bool
	noToday   bool
	logFile   string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "calview",
		Short:        "Month view calendar in the terminal",
		Long:         "Browse a month calendar: step between months, select a day, or jump straight to a typed date.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config(cmd)
			logger, closeLog, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			m, err := update.NewModelWithConfig(cfg, update.RealClock{}, logger)
			if err != nil {
				return err
			}
			logger.Info("starting", "active", m.Active().String())
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("calview failed: %w", err)
			}
			return nil
		},
	}

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print one month grid to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := update.NewModelWithConfig(opts.config(cmd), update.RealClock{}, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.RenderMonth())
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.date, "date", "", "initial date, YYYY-MM-DD or YYYY-MM (default today)")
	flags.BoolVar(&opts.trimWeeks, "trim-weeks", false, "hide trailing week rows with no days")
	flags.BoolVar(&opts.noToday, "no-today", false, "do not mark today in the grid")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	root.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(printCmd)
	return root
}

// config layers explicitly set flags over CALVIEW_* environment values.
func (o *options) config(cmd *cobra.Command) update.RuntimeConfig {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	flags := cmd.Flags()
	if flags.Changed("date") {
		cfg.InitialDate = o.date
	}
	if flags.Changed("trim-weeks") {
		cfg.TrimWeeks = o.trimWeeks
	}
	if flags.Changed("no-today") {
		cfg.HighlightToday = !o.noToday
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	return cfg
}

func openLogger(cfg update.RuntimeConfig) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "calview")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return logger, func() { _ = f.Close() }, nil
}
