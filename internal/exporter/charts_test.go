package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canteenpulse/pkg/contracts/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func dailySeries(revenues ...float64) []domain.DailyKPI {
	out := make([]domain.DailyKPI, len(revenues))
	for i, r := range revenues {
		out[i] = domain.DailyKPI{Date: day(i + 1), Revenue: r, Cost: r * 0.6}
	}
	return out
}

func TestRenderDailyChart(t *testing.T) {
	tests := []struct {
		name    string
		daily   []domain.DailyKPI
		wantNil bool
	}{
		{"empty series yields no chart", nil, true},
		{"single day renders bars", dailySeries(100), false},
		{"two days render bars", dailySeries(100, 150), false},
		{"three days render a line", dailySeries(100, 150, 120), false},
		{"longer series", dailySeries(100, 150, 120, 180, 90), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := RenderDailyChart(tt.daily)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, png)
				return
			}
			require.Greater(t, len(png), len(pngMagic))
			assert.Equal(t, pngMagic, png[:len(pngMagic)])
		})
	}
}

func TestRenderCategoryChart(t *testing.T) {
	twoDates := []domain.CategoryRevenue{
		{Date: day(1), Category: "Veg", Revenue: 120, Qty: 4},
		{Date: day(1), Category: "Non-veg", Revenue: 80, Qty: 2},
		{Date: day(2), Category: "Veg", Revenue: 90, Qty: 3},
	}
	threeDates := append(twoDates, domain.CategoryRevenue{
		Date: day(3), Category: "Non-veg", Revenue: 140, Qty: 5,
	})

	tests := []struct {
		name    string
		split   []domain.CategoryRevenue
		wantNil bool
	}{
		{"empty split yields no chart", nil, true},
		{"two dates render grouped bars", twoDates, false},
		{"three dates render one line per category", threeDates, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := RenderCategoryChart(tt.split)
			require.NoError(t, err)

			if tt.wantNil {
				assert.Nil(t, png)
				return
			}
			require.Greater(t, len(png), len(pngMagic))
			assert.Equal(t, pngMagic, png[:len(pngMagic)])
		})
	}
}

func TestPivotSplit(t *testing.T) {
	split := []domain.CategoryRevenue{
		{Date: day(2), Category: "Veg", Revenue: 90},
		{Date: day(1), Category: "Non-veg", Revenue: 80},
		{Date: day(1), Category: "Veg", Revenue: 120},
	}

	dates, categories, grid := pivotSplit(split)

	require.Len(t, dates, 2)
	assert.Equal(t, day(1), dates[0])
	assert.Equal(t, day(2), dates[1])
	assert.Equal(t, []string{"Non-veg", "Veg"}, categories)

	assert.InDelta(t, 120, grid[gridKey(day(1), "Veg")], 1e-9)
	assert.InDelta(t, 80, grid[gridKey(day(1), "Non-veg")], 1e-9)
	// Missing combinations read as zero fill.
	assert.Zero(t, grid[gridKey(day(2), "Non-veg")])
}
