package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths centralizes where a run's artifacts land on disk.
type Paths struct {
	OutputDir string
}

// Default artifact file names under the output directory.
const (
	ReportFileName        = "canteen_report.xlsx"
	DailyChartFileName    = "daily_revenue.png"
	CategoryChartFileName = "category_revenue.png"
)

// NewPaths creates a Paths helper from configuration.
func NewPaths(cfg PathsConfig) *Paths {
	return &Paths{OutputDir: cfg.OutputDir}
}

// EnsureDirectories creates the output directory if it does not exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", p.OutputDir, err)
	}
	return nil
}

// ReportPath returns the full path of the workbook artifact.
func (p *Paths) ReportPath() string {
	return filepath.Join(p.OutputDir, ReportFileName)
}

// DailyChartPath returns the full path of the daily revenue chart image.
func (p *Paths) DailyChartPath() string {
	return filepath.Join(p.OutputDir, DailyChartFileName)
}

// CategoryChartPath returns the full path of the category revenue chart image.
func (p *Paths) CategoryChartPath() string {
	return filepath.Join(p.OutputDir, CategoryChartFileName)
}
