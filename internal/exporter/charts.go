package exporter

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"canteenpulse/pkg/contracts/domain"
)

// Below this many distinct dates a connected line is visually meaningless,
// so both charts fall back to bars.
const lineChartMinDates = 3

// RenderDailyChart rasterizes the daily revenue trend as a PNG. An empty
// daily series yields a nil buffer and no error.
func RenderDailyChart(daily []domain.DailyKPI) ([]byte, error) {
	if len(daily) == 0 {
		return nil, nil
	}

	sorted := make([]domain.DailyKPI, len(daily))
	copy(sorted, daily)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var buf bytes.Buffer
	if len(sorted) < lineChartMinDates {
		bars := make([]chart.Value, 0, len(sorted))
		for _, d := range sorted {
			bars = append(bars, chart.Value{
				Label: d.Date.Format(domain.DateFormat),
				Value: d.Revenue,
			})
		}
		graph := chart.BarChart{
			Title:    "Daily Revenue",
			Width:    800,
			Height:   500,
			BarWidth: 80,
			Bars:     bars,
		}
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render daily revenue bars: %w", err)
		}
		return buf.Bytes(), nil
	}

	xs := make([]time.Time, 0, len(sorted))
	ys := make([]float64, 0, len(sorted))
	for _, d := range sorted {
		xs = append(xs, d.Date)
		ys = append(ys, d.Revenue)
	}
	graph := chart.Chart{
		Title:  "Daily Revenue",
		Width:  800,
		Height: 500,
		XAxis:  chart.XAxis{Name: "Date"},
		YAxis:  chart.YAxis{Name: "Revenue"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Revenue",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: 2,
					DotWidth:    4,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render daily revenue line: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderCategoryChart rasterizes revenue by category over time as a PNG,
// pivoting the split into a date x category grid with zero fill. An empty
// split yields a nil buffer and no error.
func RenderCategoryChart(split []domain.CategoryRevenue) ([]byte, error) {
	if len(split) == 0 {
		return nil, nil
	}

	dates, categories, grid := pivotSplit(split)

	var buf bytes.Buffer
	if len(dates) < lineChartMinDates {
		var bars []chart.Value
		for _, date := range dates {
			for _, category := range categories {
				bars = append(bars, chart.Value{
					Label: fmt.Sprintf("%s %s", date.Format(domain.DateFormat), category),
					Value: grid[gridKey(date, category)],
				})
			}
		}
		graph := chart.BarChart{
			Title:    "Revenue by Category (Veg vs Non-veg)",
			Width:    800,
			Height:   500,
			BarWidth: 60,
			Bars:     bars,
		}
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("render category revenue bars: %w", err)
		}
		return buf.Bytes(), nil
	}

	series := make([]chart.Series, 0, len(categories))
	for _, category := range categories {
		ys := make([]float64, 0, len(dates))
		for _, date := range dates {
			ys = append(ys, grid[gridKey(date, category)])
		}
		series = append(series, chart.TimeSeries{
			Name:    category,
			XValues: dates,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 2,
				DotWidth:    4,
			},
		})
	}
	graph := chart.Chart{
		Title:  "Revenue by Category (Veg vs Non-veg)",
		Width:  800,
		Height: 500,
		XAxis:  chart.XAxis{Name: "Date"},
		YAxis:  chart.YAxis{Name: "Revenue"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render category revenue lines: %w", err)
	}
	return buf.Bytes(), nil
}

// pivotSplit turns the split rows into sorted distinct dates and categories
// plus a zero-filled revenue grid keyed by both.
func pivotSplit(split []domain.CategoryRevenue) ([]time.Time, []string, map[string]float64) {
	dateSet := make(map[string]time.Time)
	categorySet := make(map[string]bool)
	grid := make(map[string]float64)
	for _, s := range split {
		dateSet[s.Date.Format(domain.DateFormat)] = s.Date
		categorySet[s.Category] = true
		grid[gridKey(s.Date, s.Category)] += s.Revenue
	}

	dates := make([]time.Time, 0, len(dateSet))
	for _, d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return dates, categories, grid
}

func gridKey(date time.Time, category string) string {
	return date.Format(domain.DateFormat) + "|" + category
}
