package exporter

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"canteenpulse/internal/dataprocessing"
	"canteenpulse/pkg/contracts/domain"
)

// Fixed sheet names of the workbook. Per-date sheets follow, named by the
// date string (domain.DateFormat).
const (
	SheetFullJoined   = "Full_Joined"
	SheetSummaryDaily = "Summary_Daily"
	SheetVegNonVeg    = "Veg_NonVeg_Ratio"
	SheetTopItems     = "Top5_Items_Per_Day"
)

// breakdownStartRow places the item-level block of a per-date sheet below the
// KPI block, leaving a visual gap after the two KPI rows.
const breakdownStartRow = 6

// BuildWorkbook serializes the joined table and the three aggregates into an
// in-memory xlsx workbook: the four fixed sheets, then one sheet per distinct
// valid date with that date's KPI row on top and an item breakdown beneath.
func BuildWorkbook(joined []domain.JoinedRow, daily []domain.DailyKPI, split []domain.CategoryRevenue, top []domain.RankedItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetFullJoined); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	if err := writeBlock(f, SheetFullJoined, 1, joinedHeaders, joinedRows(joined)); err != nil {
		return nil, fmt.Errorf("write %s: %w", SheetFullJoined, err)
	}

	fixed := []struct {
		name    string
		headers []string
		rows    [][]interface{}
	}{
		{SheetSummaryDaily, dailyHeaders, dailyRows(daily)},
		{SheetVegNonVeg, splitHeaders, splitRows(split)},
		{SheetTopItems, topHeaders, topRows(top)},
	}
	for _, sheet := range fixed {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		if err := writeBlock(f, sheet.name, 1, sheet.headers, sheet.rows); err != nil {
			return nil, fmt.Errorf("write %s: %w", sheet.name, err)
		}
	}

	if err := writeDateSheets(f, joined, daily); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeDateSheets adds one sheet per distinct valid date: the daily KPI row
// as the top block, the per-item breakdown as the second block.
func writeDateSheets(f *excelize.File, joined []domain.JoinedRow, daily []domain.DailyKPI) error {
	byDate := make(map[string][]domain.JoinedRow)
	var dates []string
	for _, r := range joined {
		if !r.DateValid {
			continue
		}
		key := r.Date.Format(domain.DateFormat)
		if _, seen := byDate[key]; !seen {
			dates = append(dates, key)
		}
		byDate[key] = append(byDate[key], r)
	}
	sort.Strings(dates)

	kpiByDate := make(map[string]domain.DailyKPI, len(daily))
	for _, d := range daily {
		kpiByDate[d.Date.Format(domain.DateFormat)] = d
	}

	for _, dateKey := range dates {
		if _, err := f.NewSheet(dateKey); err != nil {
			return fmt.Errorf("create sheet %s: %w", dateKey, err)
		}

		var kpiRows [][]interface{}
		if kpi, ok := kpiByDate[dateKey]; ok {
			kpiRows = dailyRows([]domain.DailyKPI{kpi})
		}
		if err := writeBlock(f, dateKey, 1, dailyHeaders, kpiRows); err != nil {
			return fmt.Errorf("write KPI block for %s: %w", dateKey, err)
		}

		breakdown := dataprocessing.BreakdownByItem(byDate[dateKey])
		if err := writeBlock(f, dateKey, breakdownStartRow, breakdownHeaders, breakdownRows(breakdown)); err != nil {
			return fmt.Errorf("write breakdown block for %s: %w", dateKey, err)
		}
	}
	return nil
}

// writeBlock writes a header row and data rows starting at startRow (1-based)
// in the first column. Blocks at different start rows let a sheet hold
// multiple tables with gaps between them.
func writeBlock(f *excelize.File, sheet string, startRow int, headers []string, rows [][]interface{}) error {
	headerCells := make([]interface{}, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	cell, err := excelize.CoordinatesToCellName(1, startRow)
	if err != nil {
		return fmt.Errorf("resolve block start: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &headerCells); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, startRow+1+i)
		if err != nil {
			return fmt.Errorf("resolve row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

var (
	joinedHeaders    = []string{"ItemID", "Quantity", "StudentCount", "Date", "Item", "Category", "Price", "UnitCost", "Revenue", "Cost", "Profit"}
	dailyHeaders     = []string{"Date", "Revenue", "Cost", "Profit", "Orders", "UniqueStudents", "AvgSpendPerStudent", "CostMA3"}
	splitHeaders     = []string{"Date", "Category", "Revenue", "Qty"}
	topHeaders       = []string{"Date", "Item", "Revenue", "Qty", "Rank"}
	breakdownHeaders = []string{"Item", "Category", "Qty", "Revenue", "Profit"}
)

func joinedRows(joined []domain.JoinedRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(joined))
	for _, r := range joined {
		rows = append(rows, []interface{}{
			r.ItemID, r.Quantity, r.StudentCount, dateCell(r.Date, r.DateValid, r.RawDate),
			r.Item, r.Category, r.Price, r.UnitCost, r.Revenue, r.Cost, r.Profit,
		})
	}
	return rows
}

func dailyRows(daily []domain.DailyKPI) [][]interface{} {
	rows := make([][]interface{}, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, []interface{}{
			d.Date.Format(domain.DateFormat), d.Revenue, d.Cost, d.Profit,
			d.Orders, d.UniqueStudents, optionalCell(d.AvgSpendPerStudent), optionalCell(d.CostMA3),
		})
	}
	return rows
}

func splitRows(split []domain.CategoryRevenue) [][]interface{} {
	rows := make([][]interface{}, 0, len(split))
	for _, s := range split {
		rows = append(rows, []interface{}{
			s.Date.Format(domain.DateFormat), s.Category, s.Revenue, s.Qty,
		})
	}
	return rows
}

func topRows(top []domain.RankedItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(top))
	for _, t := range top {
		rows = append(rows, []interface{}{
			t.Date.Format(domain.DateFormat), t.Item, t.Revenue, t.Qty, t.Rank,
		})
	}
	return rows
}

func breakdownRows(breakdown []domain.ItemBreakdown) [][]interface{} {
	rows := make([][]interface{}, 0, len(breakdown))
	for _, b := range breakdown {
		rows = append(rows, []interface{}{b.Item, b.Category, b.Qty, b.Revenue, b.Profit})
	}
	return rows
}

// dateCell renders a date cell as its canonical string, falling back to the
// raw source text for rows whose date failed to parse.
func dateCell(date time.Time, valid bool, raw string) interface{} {
	if !valid {
		return raw
	}
	return date.Format(domain.DateFormat)
}

// optionalCell renders a nullable derived value; nil becomes an empty cell.
func optionalCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
