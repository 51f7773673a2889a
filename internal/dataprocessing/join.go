package dataprocessing

import (
	"log/slog"

	"canteenpulse/internal/apperrors"
	"canteenpulse/pkg/contracts/domain"
)

// Join left-joins sales into the menu on item_id and derives per-row
// financials. Every sale is retained; a sale without a matching menu item
// keeps empty item text, the Uncategorized category, and zero price and unit
// cost, so its revenue, cost and profit are zero. Menu items without sales
// are dropped.
//
// Duplicate item_id values in the menu break the many-to-one guarantee and
// abort with a CardinalityError rather than being summed or first-matched.
func Join(menu []domain.MenuItem, sales []domain.SaleRecord) ([]domain.JoinedRow, error) {
	index := make(map[string]domain.MenuItem, len(menu))
	dupSeen := make(map[string]bool)
	var dups []string
	for _, m := range menu {
		if _, exists := index[m.ItemID]; exists {
			if !dupSeen[m.ItemID] {
				dupSeen[m.ItemID] = true
				dups = append(dups, m.ItemID)
			}
			continue
		}
		index[m.ItemID] = m
	}
	if len(dups) > 0 {
		return nil, apperrors.NewCardinalityError(dups)
	}

	rows := make([]domain.JoinedRow, 0, len(sales))
	unmatched := 0
	for _, s := range sales {
		row := domain.JoinedRow{
			ItemID:       s.ItemID,
			Quantity:     s.Quantity,
			StudentCount: s.StudentCount,
			Date:         s.Date,
			DateValid:    s.DateValid,
			RawDate:      s.RawDate,
			Category:     UncategorizedLabel,
		}
		if m, ok := index[s.ItemID]; ok {
			row.Item = m.ItemName
			row.Category = NormalizeCategory(m.Category)
			row.Price = m.Price
			row.UnitCost = m.UnitCost
			row.HasMenu = true
		} else {
			unmatched++
		}
		row.Revenue = float64(row.Quantity) * row.Price
		row.Cost = float64(row.Quantity) * row.UnitCost
		row.Profit = row.Revenue - row.Cost
		rows = append(rows, row)
	}

	if unmatched > 0 {
		slog.Warn("sales reference unknown menu items",
			slog.Int("unmatched_rows", unmatched))
	}

	return rows, nil
}
