package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/config"
	"github.com/akyairhashvil/datepick/internal/database"
	"github.com/akyairhashvil/datepick/internal/tui"
	"github.com/akyairhashvil/datepick/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// app carries what every command needs once the config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	clock      calendar.Clock
	isTerminal func() bool
}

func main() {
	if err := newRootCmd(defaultApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultApp() *app {
	return &app{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

func newRootCmd(a *app) *cobra.Command {
	var value string

	rootCmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "Pick a calendar date in the terminal",
		Long:          "Interactive month-grid date picker. Prints the chosen date on exit.",
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := parseValue("value", value)
			if err != nil {
				return err
			}
			return a.runPicker(cmd.Context(), cmd.OutOrStdout(), initial)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().StringVar(&value, "value", "", "Initial value (YYYY/MM/DD)")

	rootCmd.AddCommand(gridCmd(a), pdfCmd(a), settingsCmd(a))
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	logger, err := util.NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) today() calendar.CalendarDate {
	if a.clock != nil {
		return calendar.FromTime(a.clock())
	}
	return calendar.FromTime(timeNow())
}

// parseValue turns an optional date flag into a date.
func parseValue(flag, value string) (*calendar.CalendarDate, error) {
	if value == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return &d, nil
}

func (a *app) runPicker(ctx context.Context, out io.Writer, initial *calendar.CalendarDate) error {
	if !a.isTerminal() {
		ref := a.today().YearMonth()
		if initial != nil {
			ref = initial.YearMonth()
		}
		grid, err := calendar.ComputeGrid(ref)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.PlainMonth(grid, tui.LabelsFor(a.cfg.Picker.Locale), initial))
		if initial != nil {
			fmt.Fprintln(out, initial.Format(calendar.DisplayLayout))
		}
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var store tui.SettingsStore
	db, err := database.Open(ctx, a.cfg.Storage.DBPath, a.logger)
	if err != nil {
		a.logger.Warn("settings store unavailable", zap.Error(err))
	} else {
		defer func() { util.LogError(a.logger, "close settings store", db.Close()) }()
		store = db
	}

	model, err := tui.NewPickerModel(ctx, tui.PickerOptions{
		Config:   a.cfg,
		Initial:  initial,
		Clock:    a.clock,
		Settings: store,
		Logger:   a.logger,
		OnChange: func(change calendar.SelectionChange) {
			a.logger.Info("selection changed",
				zap.String("source", string(change.Source)),
				zap.Bool("cleared", change.Cleared),
				zap.Stringer("date", change.Date))
		},
	})
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if pm, ok := final.(tui.PickerModel); ok {
		if sel, ok := pm.Selected(); ok {
			fmt.Fprintln(out, sel.Format(calendar.DisplayLayout))
		}
	}
	return nil
}
