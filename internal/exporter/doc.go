// Package exporter renders one report run into its output artifacts.
//
// This package contains two independent components:
//
// BuildWorkbook: serializes the joined table and the three aggregates into a
// multi-sheet xlsx workbook held entirely in memory, with one extra sheet per
// report date. Callers own persistence of the returned buffer.
//
// RenderDailyChart / RenderCategoryChart: rasterize the daily revenue trend
// and the per-category revenue series as PNG buffers. Both are optional and
// return nil buffers for empty aggregates; a deployment that skips charts
// does not touch the workbook path and vice versa.
package exporter
