package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealbridge/mealbridge/internal/storage"
)

func TestEstimateKg(t *testing.T) {
	tests := []struct {
		name string
		q    storage.Quantity
		want float64
	}{
		{"kilograms pass through", storage.Quantity{Value: 5, Unit: storage.UnitKg}, 5.0},
		{"servings convert down", storage.Quantity{Value: 10, Unit: storage.UnitServings}, 3.0},
		{"liters weigh like water", storage.Quantity{Value: 2, Unit: storage.UnitLiters}, 2.0},
		{"pieces are light", storage.Quantity{Value: 20, Unit: storage.UnitPieces}, 4.0},
		{"unknown unit gets the default factor", storage.Quantity{Value: 4, Unit: "crates"}, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, storage.EstimateKg(tt.q), 1e-9)
		})
	}
}

func TestCompletionPoints(t *testing.T) {
	assert.Equal(t, 50, storage.CompletionPoints(5.0))
	assert.Equal(t, 30, storage.CompletionPoints(3.0))
	// partial kilograms round up
	assert.Equal(t, 26, storage.CompletionPoints(2.51))
	assert.Equal(t, 0, storage.CompletionPoints(0))
}
