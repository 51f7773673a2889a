package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteenpulse/internal/apperrors"
	"canteenpulse/pkg/contracts/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sale(id string, qty, students, d int) domain.SaleRecord {
	return domain.SaleRecord{
		ItemID:       id,
		Quantity:     qty,
		StudentCount: students,
		Date:         day(d),
		DateValid:    true,
	}
}

func TestJoin(t *testing.T) {
	menu := []domain.MenuItem{
		{ItemID: "1", ItemName: "Samosa", Category: "veg", Price: 10, UnitCost: 6},
	}
	sales := []domain.SaleRecord{sale("1", 2, 4, 1)}

	rows, err := Join(menu, sales)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.HasMenu)
	assert.Equal(t, "Samosa", row.Item)
	assert.Equal(t, "Veg", row.Category)
	assert.InDelta(t, 20, row.Revenue, 1e-9)
	assert.InDelta(t, 12, row.Cost, 1e-9)
	assert.InDelta(t, 8, row.Profit, 1e-9)
}

func TestJoinUnmatchedSaleKept(t *testing.T) {
	menu := []domain.MenuItem{
		{ItemID: "1", ItemName: "Samosa", Category: "veg", Price: 10, UnitCost: 6},
	}
	sales := []domain.SaleRecord{sale("99", 3, 2, 1)}

	rows, err := Join(menu, sales)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.False(t, row.HasMenu)
	assert.Empty(t, row.Item)
	assert.Equal(t, UncategorizedLabel, row.Category)
	assert.Zero(t, row.Price)
	assert.Zero(t, row.Revenue)
	assert.Zero(t, row.Cost)
	assert.Zero(t, row.Profit)
	assert.Equal(t, 3, row.Quantity)
}

func TestJoinDuplicateMenuKeys(t *testing.T) {
	menu := []domain.MenuItem{
		{ItemID: "1", ItemName: "Samosa", Category: "veg", Price: 10},
		{ItemID: "2", ItemName: "Kebab", Category: "non_veg", Price: 20},
		{ItemID: "1", ItemName: "Samosa Deluxe", Category: "veg", Price: 15},
	}
	sales := []domain.SaleRecord{sale("1", 1, 1, 1)}

	rows, err := Join(menu, sales)
	require.Error(t, err)
	assert.Nil(t, rows)
	require.True(t, apperrors.IsCardinalityError(err))

	var cardErr *apperrors.CardinalityError
	require.ErrorAs(t, err, &cardErr)
	assert.Equal(t, []string{"1"}, cardErr.Duplicates)
}

func TestJoinProfitIdentity(t *testing.T) {
	menu := []domain.MenuItem{
		{ItemID: "1", ItemName: "Samosa", Category: "veg", Price: 10.5, UnitCost: 6.3},
		{ItemID: "2", ItemName: "Kebab", Category: "non_veg", Price: 22.75, UnitCost: 13.65},
	}
	sales := []domain.SaleRecord{
		sale("1", 2, 4, 1),
		sale("2", 7, 3, 1),
		sale("1", 5, 2, 2),
		sale("99", 4, 1, 2),
	}

	rows, err := Join(menu, sales)
	require.NoError(t, err)
	for i, row := range rows {
		assert.InDelta(t, row.Revenue-row.Cost, row.Profit, 1e-9, "row %d", i)
	}
}

func TestJoinPreservesInvalidDateRows(t *testing.T) {
	menu := []domain.MenuItem{
		{ItemID: "1", ItemName: "Samosa", Category: "veg", Price: 10, UnitCost: 6},
	}
	sales := []domain.SaleRecord{
		{ItemID: "1", Quantity: 1, StudentCount: 1, RawDate: "garbage"},
	}

	rows, err := Join(menu, sales)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].DateValid)
	assert.Equal(t, "garbage", rows[0].RawDate)
	assert.InDelta(t, 10, rows[0].Revenue, 1e-9)
}
