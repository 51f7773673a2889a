// Package pipeline sequences one report run: load and validate the two CSV
// inputs, join and aggregate, derive the daily metrics, and render the
// workbook and optional charts. A run is synchronous and stateless; any
// fatal stage error aborts the whole run with no partial bundle.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"canteenpulse/internal/dataprocessing"
	"canteenpulse/internal/exporter"
	"canteenpulse/internal/loader"
	"canteenpulse/pkg/contracts/domain"
)

// Options configures one run.
type Options struct {
	// TopN is the rank cutoff of the top-items table; zero means the
	// default of 5.
	TopN int
	// Charts enables PNG chart rendering alongside the workbook.
	Charts bool
}

// Run executes the full pipeline over the two tabular sources and returns
// the result bundle. The context is checked between stages; there is no
// internal concurrency to cancel.
func Run(ctx context.Context, menu io.Reader, sales io.Reader, opts Options) (*domain.ReportBundle, error) {
	logger := slog.Default()

	menuItems, err := loader.LoadMenu(menu)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	salesRecords, err := loader.LoadSales(sales)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	joined, err := dataprocessing.Join(menuItems, salesRecords)
	if err != nil {
		return nil, fmt.Errorf("join sales to menu: %w", err)
	}

	daily := dataprocessing.DeriveMetrics(dataprocessing.SummarizeDaily(joined))
	split := dataprocessing.SplitByCategory(joined)
	top := dataprocessing.TopItemsPerDay(joined, opts.TopN)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workbook, err := exporter.BuildWorkbook(joined, daily, split, top)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	bundle := &domain.ReportBundle{
		Joined:        joined,
		Daily:         daily,
		CategorySplit: split,
		TopItems:      top,
		Workbook:      workbook,
	}

	if opts.Charts {
		bundle.DailyChartPNG, err = exporter.RenderDailyChart(daily)
		if err != nil {
			return nil, fmt.Errorf("render daily chart: %w", err)
		}
		bundle.CategoryChartPNG, err = exporter.RenderCategoryChart(split)
		if err != nil {
			return nil, fmt.Errorf("render category chart: %w", err)
		}
	}

	logger.InfoContext(ctx, "pipeline run completed",
		slog.Int("joined_rows", len(joined)),
		slog.Int("days", len(daily)),
		slog.Int("workbook_bytes", len(workbook)))

	return bundle, nil
}

// RunFiles is a convenience wrapper over Run for file-path inputs.
func RunFiles(ctx context.Context, menuPath, salesPath string, opts Options) (*domain.ReportBundle, error) {
	menuFile, err := os.Open(menuPath)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer menuFile.Close()

	salesFile, err := os.Open(salesPath)
	if err != nil {
		return nil, fmt.Errorf("open sales file: %w", err)
	}
	defer salesFile.Close()

	return Run(ctx, menuFile, salesFile, opts)
}
