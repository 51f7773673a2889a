// Command canteen-report runs the canteen analytics pipeline over a menu CSV
// and a sales CSV, writing the multi-sheet workbook and optional chart images
// to the output directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"canteenpulse/internal/config"
	"canteenpulse/internal/pipeline"
	"canteenpulse/pkg/contracts/domain"
)

func main() {
	menuPath := flag.String("menu", "", "menu CSV path (item_id,item_name,category,price)")
	salesPath := flag.String("sales", "", "sales CSV path (item_id,quantity,student_count,date)")
	outDir := flag.String("out", "", "output directory (defaults to configured paths)")
	charts := flag.Bool("charts", true, "render PNG charts alongside the workbook")
	topN := flag.Int("top", 0, "rank cutoff for the top-items table (default 5)")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	if *menuPath == "" || *salesPath == "" {
		slog.Error("both -menu and -sales are required")
		flag.Usage()
		os.Exit(1)
	}

	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}
	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	bundle, err := pipeline.RunFiles(ctx, *menuPath, *salesPath, pipeline.Options{
		TopN:   *topN,
		Charts: *charts,
	})
	if err != nil {
		slog.Error("report generation failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(paths.ReportPath(), bundle.Workbook, 0644); err != nil {
		slog.Error("failed to write workbook", "path", paths.ReportPath(), "error", err)
		os.Exit(1)
	}
	slog.Info("wrote workbook",
		slog.String("path", paths.ReportPath()),
		slog.Int("bytes", len(bundle.Workbook)))

	writeChart(paths.DailyChartPath(), bundle.DailyChartPNG)
	writeChart(paths.CategoryChartPath(), bundle.CategoryChartPNG)

	logLatestDay(bundle)
}

// writeChart persists an optional chart buffer; a nil buffer means the chart
// was skipped or had no data.
func writeChart(path string, png []byte) {
	if len(png) == 0 {
		return
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		slog.Error("failed to write chart", "path", path, "error", err)
		os.Exit(1)
	}
	slog.Info("wrote chart", slog.String("path", path), slog.Int("bytes", len(png)))
}

// logLatestDay prints the KPI strip for the most recent report date.
func logLatestDay(bundle *domain.ReportBundle) {
	if len(bundle.Daily) == 0 {
		slog.Warn("no dated sales rows; daily summary is empty")
		return
	}

	latest := bundle.Daily[len(bundle.Daily)-1]
	attrs := []any{
		slog.String("date", latest.Date.Format(domain.DateFormat)),
		slog.Float64("revenue", latest.Revenue),
		slog.Float64("profit", latest.Profit),
		slog.Int("orders", latest.Orders),
		slog.Int("students", latest.UniqueStudents),
	}
	if latest.AvgSpendPerStudent != nil {
		attrs = append(attrs, slog.Float64("avg_spend_per_student", *latest.AvgSpendPerStudent))
	}
	slog.Info("latest day KPIs", attrs...)
}
