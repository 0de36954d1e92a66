package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"resto-backend/internal/cart"
)

func TestCartStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{cart.ErrUnavailable, http.StatusServiceUnavailable},
		{fmt.Errorf("failed to persist cart session: %w", cart.ErrUnavailable), http.StatusServiceUnavailable},
		{errors.New("unknown menu item abc"), http.StatusBadRequest},
		{errors.New("quantity must be positive"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		if got := cartStatus(tt.err); got != tt.want {
			t.Errorf("cartStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
