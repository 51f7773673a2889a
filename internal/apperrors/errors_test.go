package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSchemaError(t *testing.T) {
	tests := []struct {
		name        string
		table       string
		missing     []string
		wantMissing []string
		wantMessage string
	}{
		{
			name:        "single column",
			table:       "menu",
			missing:     []string{"price"},
			wantMissing: []string{"price"},
			wantMessage: "[SCHEMA] menu missing columns: [price]",
		},
		{
			name:        "unsorted input is sorted",
			table:       "sales",
			missing:     []string{"student_count", "date"},
			wantMissing: []string{"date", "student_count"},
			wantMessage: "[SCHEMA] sales missing columns: [date student_count]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSchemaError(tt.table, tt.missing)

			assert.Equal(t, tt.table, err.Table)
			assert.Equal(t, tt.wantMissing, err.Missing)
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestNewCardinalityError(t *testing.T) {
	err := NewCardinalityError([]string{"7", "3"})

	assert.Equal(t, []string{"3", "7"}, err.Duplicates)
	assert.Equal(t, "[CARDINALITY] menu contains duplicate item_id values: [3 7]", err.Error())
}

func TestErrorPredicates(t *testing.T) {
	schemaErr := fmt.Errorf("load menu: %w", NewSchemaError("menu", []string{"price"}))
	cardErr := fmt.Errorf("join: %w", NewCardinalityError([]string{"1"}))

	assert.True(t, IsSchemaError(schemaErr))
	assert.False(t, IsSchemaError(cardErr))
	assert.True(t, IsCardinalityError(cardErr))
	assert.False(t, IsCardinalityError(schemaErr))
	assert.False(t, IsSchemaError(errors.New("plain")))
}

func TestSchemaErrorSortDoesNotMutateInput(t *testing.T) {
	missing := []string{"b", "a"}
	_ = NewSchemaError("menu", missing)

	assert.Equal(t, []string{"b", "a"}, missing)
}
