package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase veg", "veg", "Veg"},
		{"underscore separator", "Non_Veg", "Non-veg"},
		{"all caps hyphenated", "NON-VEG", "Non-veg"},
		{"already canonical", "Non-veg", "Non-veg"},
		{"surrounding whitespace", "  veg  ", "Veg"},
		{"free text category", "snacks", "Snacks"},
		{"multi word with underscore", "fresh_juice", "Fresh-Juice"},
		{"mixed case free text", "bEVERAGES", "Beverages"},
		{"empty", "", "Uncategorized"},
		{"whitespace only", "   ", "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.input))
		})
	}
}

func TestNormalizeCategoryIsIdempotent(t *testing.T) {
	for _, input := range []string{"veg", "Non_Veg", "NON-VEG", "snacks", ""} {
		once := NormalizeCategory(input)
		assert.Equal(t, once, NormalizeCategory(once), "input %q", input)
	}
}
