package services

import "testing"

func TestStockDelta(t *testing.T) {
	tests := []struct {
		movementType string
		quantity     float64
		want         float64
	}{
		{"IN", 10, 10},
		{"RETURN", 2.5, 2.5},
		{"OUT", 4, -4},
		{"WASTAGE", 1.5, -1.5},
		{"ADJUST", -3, -3},
		{"ADJUST", 3, 3},
	}
	for _, tt := range tests {
		got, err := StockDelta(tt.movementType, tt.quantity)
		if err != nil {
			t.Errorf("StockDelta(%s, %v): %v", tt.movementType, tt.quantity, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StockDelta(%s, %v) = %v, want %v", tt.movementType, tt.quantity, got, tt.want)
		}
	}
}

func TestStockDeltaRejectsBadInput(t *testing.T) {
	tests := []struct {
		movementType string
		quantity     float64
	}{
		{"IN", 0},
		{"IN", -1},
		{"OUT", -2},
		{"WASTAGE", 0},
		{"ADJUST", 0},
		{"TRANSFER", 5},
		{"", 5},
	}
	for _, tt := range tests {
		if _, err := StockDelta(tt.movementType, tt.quantity); err == nil {
			t.Errorf("StockDelta(%q, %v): expected error", tt.movementType, tt.quantity)
		}
	}
}
