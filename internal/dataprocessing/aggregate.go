package dataprocessing

import (
	"sort"

	"canteenpulse/pkg/contracts/domain"
)

// DefaultTopN is the rank cutoff for the top-items-per-day table.
const DefaultTopN = 5

// SummarizeDaily rolls joined rows up into one KPI row per calendar date,
// sorted by date ascending. Rows with an invalid date are excluded from all
// date-keyed aggregates; they remain only in the full joined table.
func SummarizeDaily(rows []domain.JoinedRow) []domain.DailyKPI {
	idx := make(map[string]int)
	var out []domain.DailyKPI
	for _, r := range rows {
		if !r.DateValid {
			continue
		}
		key := r.Date.Format(domain.DateFormat)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			idx[key] = i
			out = append(out, domain.DailyKPI{Date: r.Date})
		}
		out[i].Revenue += r.Revenue
		out[i].Cost += r.Cost
		out[i].Profit += r.Profit
		out[i].Orders += r.Quantity
		out[i].UniqueStudents += r.StudentCount
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// SplitByCategory sums revenue and quantity per (date, category). The result
// is ordered by date ascending, then revenue descending within each date;
// this ordering is part of the output contract.
func SplitByCategory(rows []domain.JoinedRow) []domain.CategoryRevenue {
	type key struct {
		date     string
		category string
	}
	idx := make(map[key]int)
	var out []domain.CategoryRevenue
	for _, r := range rows {
		if !r.DateValid {
			continue
		}
		k := key{date: r.Date.Format(domain.DateFormat), category: r.Category}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, domain.CategoryRevenue{Date: r.Date, Category: r.Category})
		}
		out[i].Revenue += r.Revenue
		out[i].Qty += r.Quantity
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Revenue > out[j].Revenue
	})
	return out
}

// TopItemsPerDay sums revenue and quantity per (date, item), ranks items
// within each date by revenue descending, and keeps ranks 1..n. Ties keep
// their first-seen order in the grouped result (stable sort, not item name or
// id). Output is ordered by date ascending then rank ascending. Rows without
// a resolved menu item have no item name and are skipped.
func TopItemsPerDay(rows []domain.JoinedRow, n int) []domain.RankedItem {
	if n <= 0 {
		n = DefaultTopN
	}

	type key struct {
		date string
		item string
	}
	idx := make(map[key]int)
	var grouped []domain.RankedItem
	for _, r := range rows {
		if !r.DateValid || r.Item == "" {
			continue
		}
		k := key{date: r.Date.Format(domain.DateFormat), item: r.Item}
		i, ok := idx[k]
		if !ok {
			i = len(grouped)
			idx[k] = i
			grouped = append(grouped, domain.RankedItem{Date: r.Date, Item: r.Item})
		}
		grouped[i].Revenue += r.Revenue
		grouped[i].Qty += r.Quantity
	}

	// Bucket in first-seen order so the stable sort's tie-break is by arrival.
	buckets := make(map[string][]domain.RankedItem)
	var dates []string
	for _, g := range grouped {
		dateKey := g.Date.Format(domain.DateFormat)
		if _, seen := buckets[dateKey]; !seen {
			dates = append(dates, dateKey)
		}
		buckets[dateKey] = append(buckets[dateKey], g)
	}
	sort.Strings(dates)

	var out []domain.RankedItem
	for _, dateKey := range dates {
		bucket := buckets[dateKey]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Revenue > bucket[j].Revenue
		})
		for i := range bucket {
			if i >= n {
				break
			}
			bucket[i].Rank = i + 1
			out = append(out, bucket[i])
		}
	}
	return out
}

// BreakdownByItem groups joined rows by (item, category), summing quantity,
// revenue and profit, sorted by revenue descending. It backs the item-level
// block of the per-date workbook sheets. Rows without a resolved menu item
// group under their empty item name and the Uncategorized category.
func BreakdownByItem(rows []domain.JoinedRow) []domain.ItemBreakdown {
	type key struct {
		item     string
		category string
	}
	idx := make(map[key]int)
	var out []domain.ItemBreakdown
	for _, r := range rows {
		k := key{item: r.Item, category: r.Category}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, domain.ItemBreakdown{Item: r.Item, Category: r.Category})
		}
		out[i].Qty += r.Quantity
		out[i].Revenue += r.Revenue
		out[i].Profit += r.Profit
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}
