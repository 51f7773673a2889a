package domain

import (
	"time"
)

// DateFormat is the canonical string form for report dates. It is used for
// grouping keys, per-date sheet names, and date cells in exports.
const DateFormat = "2006-01-02"

// MenuItem is one row of the menu catalog. Loaded once per run and read-only
// afterwards.
type MenuItem struct {
	ItemID   string  `json:"item_id" csv:"ItemID"`
	ItemName string  `json:"item_name" csv:"ItemName"`
	Category string  `json:"category" csv:"Category"`
	Price    float64 `json:"price" csv:"Price"`
	UnitCost float64 `json:"unit_cost" csv:"UnitCost"`
}

// SaleRecord is one row of the sales log. ItemID is a many-to-one foreign key
// into the menu. DateValid is false when the source date cell could not be
// parsed; RawDate keeps the original cell text for exports in that case.
type SaleRecord struct {
	ItemID       string    `json:"item_id" csv:"ItemID"`
	Quantity     int       `json:"quantity" csv:"Quantity"`
	StudentCount int       `json:"student_count" csv:"StudentCount"`
	Date         time.Time `json:"date" csv:"Date"`
	DateValid    bool      `json:"date_valid"`
	RawDate      string    `json:"raw_date,omitempty"`
}

// JoinedRow is a sale left-joined with its menu item plus row-wise financials.
// Revenue = Quantity * Price, Cost = Quantity * UnitCost, Profit = Revenue - Cost.
// HasMenu is false when the sale's ItemID has no menu row; such rows keep zero
// price and unit cost, so their financial fields compute to zero.
type JoinedRow struct {
	ItemID       string    `json:"item_id"`
	Quantity     int       `json:"quantity"`
	StudentCount int       `json:"student_count"`
	Date         time.Time `json:"date"`
	DateValid    bool      `json:"date_valid"`
	RawDate      string    `json:"raw_date,omitempty"`

	Item     string  `json:"item"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	UnitCost float64 `json:"unit_cost"`
	HasMenu  bool    `json:"has_menu"`

	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// DailyKPI is the per-calendar-date rollup. Dates are unique within a daily
// series. UniqueStudents is a sum of per-record student counts inherited from
// the input shape, not a deduplicated count of distinct students.
// AvgSpendPerStudent and CostMA3 are derived columns; nil means no value
// (zero students for the day, or an empty series).
type DailyKPI struct {
	Date               time.Time `json:"date"`
	Revenue            float64   `json:"revenue"`
	Cost               float64   `json:"cost"`
	Profit             float64   `json:"profit"`
	Orders             int       `json:"orders"`
	UniqueStudents     int       `json:"unique_students"`
	AvgSpendPerStudent *float64  `json:"avg_spend_per_student,omitempty"`
	CostMA3            *float64  `json:"cost_ma3,omitempty"`
}

// CategoryRevenue is one row of the per-(date, category) revenue split,
// ordered by date ascending then revenue descending within a date.
type CategoryRevenue struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Revenue  float64   `json:"revenue"`
	Qty      int       `json:"qty"`
}

// RankedItem is one row of the top-items-per-day table. Rank is 1-based within
// a date, highest revenue first, ties broken by first-seen order.
type RankedItem struct {
	Date    time.Time `json:"date"`
	Item    string    `json:"item"`
	Revenue float64   `json:"revenue"`
	Qty     int       `json:"qty"`
	Rank    int       `json:"rank"`
}

// ItemBreakdown is one row of a per-date sheet's item-level block, grouped by
// item and category and sorted by revenue descending.
type ItemBreakdown struct {
	Item     string  `json:"item"`
	Category string  `json:"category"`
	Qty      int     `json:"qty"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

// ReportBundle is the full result of one pipeline run. Workbook always holds
// the xlsx artifact; the chart buffers are nil when chart rendering was
// skipped or the corresponding aggregate was empty.
type ReportBundle struct {
	Joined        []JoinedRow       `json:"joined"`
	Daily         []DailyKPI        `json:"daily"`
	CategorySplit []CategoryRevenue `json:"category_split"`
	TopItems      []RankedItem      `json:"top_items"`

	Workbook         []byte `json:"-"`
	DailyChartPNG    []byte `json:"-"`
	CategoryChartPNG []byte `json:"-"`
}
