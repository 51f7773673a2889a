// Package loader reads the two CSV inputs (menu catalog and sales log),
// normalizes their headers, validates the required column sets, and coerces
// cell values into the domain types.
//
// Validation is strict, coercion is lenient: a missing required column aborts
// the run with a SchemaError before any rows are parsed, while malformed
// numeric or date cells fall back to documented defaults (0, 0.0, or an
// invalid-date sentinel) and the run continues.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"canteenpulse/internal/apperrors"
	"canteenpulse/internal/dataprocessing"
	"canteenpulse/pkg/contracts/domain"
)

// Required columns, matched after headers are trimmed and lower-cased.
// Column order and extra columns are unconstrained.
var (
	menuColumns  = []string{"item_id", "item_name", "category", "price"}
	salesColumns = []string{"item_id", "quantity", "student_count", "date"}
)

// unitCostShare is the assumed cost fraction when the menu has no cost column.
const unitCostShare = 0.60

// LoadMenuFile reads and validates the menu catalog from a CSV file.
func LoadMenuFile(path string) ([]domain.MenuItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()
	return LoadMenu(f)
}

// LoadSalesFile reads and validates the sales log from a CSV file.
func LoadSalesFile(path string) ([]domain.SaleRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sales file: %w", err)
	}
	defer f.Close()
	return LoadSales(f)
}

// LoadMenu reads the menu catalog from r. When the source has no unit-cost
// column, UnitCost defaults to round(price*0.60, 2).
func LoadMenu(r io.Reader) ([]domain.MenuItem, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("read menu table: %w", err)
	}

	cols, err := mapColumns("menu", header, menuColumns)
	if err != nil {
		return nil, err
	}

	costCol, hasCost := cols["unitcost"]
	if !hasCost {
		costCol, hasCost = cols["unit_cost"]
	}

	items := make([]domain.MenuItem, 0, len(rows))
	for _, row := range rows {
		price := parseFloat(cell(row, cols["price"]))
		unitCost := dataprocessing.Round2(price * unitCostShare)
		if hasCost {
			unitCost = parseFloat(cell(row, costCol))
		}
		items = append(items, domain.MenuItem{
			ItemID:   strings.TrimSpace(cell(row, cols["item_id"])),
			ItemName: strings.TrimSpace(cell(row, cols["item_name"])),
			Category: cell(row, cols["category"]),
			Price:    price,
			UnitCost: unitCost,
		})
	}

	slog.Info("loaded menu table",
		slog.Int("items", len(items)),
		slog.Bool("unit_cost_derived", !hasCost))

	return items, nil
}

// LoadSales reads the sales log from r. Rows with unparseable dates are kept
// with DateValid=false; downstream date-keyed aggregates skip them while the
// full joined export retains them.
func LoadSales(r io.Reader) ([]domain.SaleRecord, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, fmt.Errorf("read sales table: %w", err)
	}

	cols, err := mapColumns("sales", header, salesColumns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0, len(rows))
	invalidDates := 0
	for _, row := range rows {
		rawDate := strings.TrimSpace(cell(row, cols["date"]))
		date, ok := parseDate(rawDate)
		if !ok {
			invalidDates++
		}
		records = append(records, domain.SaleRecord{
			ItemID:       strings.TrimSpace(cell(row, cols["item_id"])),
			Quantity:     parseCount(cell(row, cols["quantity"])),
			StudentCount: parseCount(cell(row, cols["student_count"])),
			Date:         date,
			DateValid:    ok,
			RawDate:      rawDate,
		})
	}

	slog.Info("loaded sales table",
		slog.Int("records", len(records)),
		slog.Int("invalid_dates", invalidDates))

	return records, nil
}

// readTable reads a delimited table into its header row and data rows.
// Rows may have uneven field counts; short rows yield empty cells.
func readTable(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// mapColumns normalizes the header (trim + lowercase) and maps column names to
// indices. Missing required columns produce a SchemaError naming the full
// missing set.
func mapColumns(table string, header []string, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := cols[key]; !exists {
			cols[key] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewSchemaError(table, missing)
	}
	return cols, nil
}

// cell returns the value at idx, or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseFloat coerces a cell to a non-negative float64. Thousands separators
// are stripped; unparseable or negative values become 0.
func parseFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// parseCount coerces a cell to a non-negative integer count. Decimal forms
// like "12.0" are truncated; unparseable, negative, or out-of-int-range
// values become 0. The range guard keeps the float-to-int conversion defined:
// float64(math.MaxInt64) is exactly 2^63, so any value below it converts
// safely.
func parseCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v >= float64(math.MaxInt64) {
		return 0
	}
	return int(v)
}

// dateFormats is the ladder of accepted date layouts, most common first.
// Time-of-day components are dropped by the formats that carry them.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"01-02-2006",
}

// parseDate attempts each accepted layout in order, truncating any time
// component to the calendar date. The second return is false when no layout
// matches.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
