package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/datepick/internal/calendar"
	"github.com/akyairhashvil/datepick/internal/database"
	"github.com/akyairhashvil/datepick/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var timeNow = time.Now

// resolveMonth parses --month, defaulting to the month of today.
func resolveMonth(month string, today calendar.CalendarDate) (calendar.YearMonth, error) {
	if month == "" {
		return today.YearMonth(), nil
	}
	ym, err := calendar.ParseYearMonth(month)
	if err != nil {
		return calendar.YearMonth{}, fmt.Errorf("invalid --month: %w", err)
	}
	return ym, nil
}

func gridCmd(a *app) *cobra.Command {
	var month, mark string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month grid as plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := resolveMonth(month, a.today())
			if err != nil {
				return err
			}
			grid, err := calendar.ComputeGrid(ref)
			if err != nil {
				return err
			}
			selected, err := parseValue("mark", mark)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.PlainMonth(grid, tui.LabelsFor(a.cfg.Picker.Locale), selected))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM)")
	cmd.Flags().StringVar(&mark, "mark", "", "Date to highlight (YYYY/MM/DD)")
	return cmd
}

func pdfCmd(a *app) *cobra.Command {
	var month, mark, out string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write the month grid to a PDF sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := resolveMonth(month, a.today())
			if err != nil {
				return err
			}
			grid, err := calendar.ComputeGrid(ref)
			if err != nil {
				return err
			}
			selected, err := parseValue("mark", mark)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(a.cfg.Export.Dir, fmt.Sprintf("datepick_%s.pdf", ref))
			}
			if err := tui.ExportMonthPDF(out, grid, selected); err != nil {
				return err
			}
			a.logger.Info("month sheet written", zap.String("path", out), zap.Stringer("month", ref))
			fmt.Fprintf(cmd.OutOrStdout(), "PDF written: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to export (YYYY-MM)")
	cmd.Flags().StringVar(&mark, "mark", "", "Date to highlight (YYYY/MM/DD)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file")
	return cmd
}

func settingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(cmd.Context(), a.cfg.Storage.DBPath, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()

			settings, err := db.ListSettings(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tVALUE\tUPDATED")
			for _, s := range settings {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Key, s.Value, s.UpdatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset KEY",
		Short: "Delete a stored preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(cmd.Context(), a.cfg.Storage.DBPath, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()
			return db.DeleteSetting(cmd.Context(), args[0])
		},
	})
	return cmd
}
