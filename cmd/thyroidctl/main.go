package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"thyroidrisk/adapters/datareadiness/synthesizer"
	"thyroidrisk/adapters/excel"
	"thyroidrisk/domain/dataset"
	"thyroidrisk/internal/analysis"
	"thyroidrisk/internal/config"
	"thyroidrisk/internal/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1f77b4", Dark: "#5fafff"}).
			Bold(true).
			Margin(1, 0)

	metricStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#626262", Dark: "#a8a8a8"})

	noticeStyles = map[loader.NoticeLevel]lipgloss.Style{
		loader.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		loader.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		loader.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "thyroidctl",
		Short: "Inspect and export the thyroid cancer risk dataset",
	}

	rootCmd.AddCommand(
		newSummaryCmd(),
		newDescribeCmd(),
		newSampleCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Load the dataset and print the overview metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(table))
			return nil
		},
	}
}

func newDescribeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Export the statistical summary and column types to an xlsx workbook",
		Long: `Export the statistical summary and column types to an xlsx workbook.

Example: thyroidctl describe --out stats.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ext := strings.ToLower(filepath.Ext(out)); ext != ".xlsx" {
				return fmt.Errorf("--out must name an .xlsx file, got %q", out)
			}
			table, err := loadTable(cmd)
			if err != nil {
				return err
			}
			if err := excel.WriteWorkbook(out, describeSheets(table)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "stats.xlsx", "Workbook to write")
	return cmd
}

func newSampleCmd() *cobra.Command {
	defaults := synthesizer.DefaultSynthesisConfig()
	var out string
	var rows int
	var seed int64

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write the synthetic demonstration dataset as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 {
				return fmt.Errorf("--rows must be positive, got %d", rows)
			}
			table, err := synthesizer.NewSampleGenerator(synthesizer.SynthesisConfig{Rows: rows, Seed: seed}).Generate()
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := excel.WriteCSV(table, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", table.Rows, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "sample.csv", "CSV file to write")
	cmd.Flags().IntVar(&rows, "rows", defaults.Rows, "Number of rows to generate")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed")
	return cmd
}

// loadTable runs the dashboard loader and prints its notices to stderr
func loadTable(cmd *cobra.Command) (*dataset.Table, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	sink := loader.SinkFunc(func(n loader.Notice) {
		fmt.Fprintln(cmd.ErrOrStderr(), noticeStyles[n.Level].Render(n.Message))
	})
	return loader.New(cfg.Data, sink).Load(context.Background())
}

func renderSummary(table *dataset.Table) string {
	metrics := analysis.Overview(table).All()
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = metricStyle.Render(labelStyle.Render(m.Label) + "\n" + fmt.Sprintf("%d", m.Value))
	}

	rows, cols := table.Shape()
	shape := labelStyle.Render(fmt.Sprintf("Source: %s  Shape: (%d, %d)  Memory usage: %s",
		table.Source, rows, cols, analysis.FormatMegabytes(analysis.MemoryUsage(table))))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🏥 Thyroid Cancer Risk Analysis"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		shape,
	)
}
