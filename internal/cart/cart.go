// Package cart holds the customer's in-progress order for a QR session.
// Entries are keyed by (item_id, portion); the whole session round-trips
// through a single persisted JSON blob.
package cart

// Entry is one cart line
type Entry struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Portion  string  `json:"portion"` // half or full
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Taste    string  `json:"taste,omitempty"`
}

// Session is the full client state blob: cart entries plus the context the
// customer picked up by scanning a table QR.
type Session struct {
	RestaurantID string   `json:"restaurant_id"`
	CustomerName string   `json:"customer_name"`
	TableID      string   `json:"table_id"`
	TableNumber  string   `json:"table_number"`
	OrderType    string   `json:"order_type"`
	Items        []Entry  `json:"cart"`
	OrderIDs     []string `json:"order_ids"` // submitted order history
}

// Add accumulates quantity into an existing (item, portion) entry, or
// appends a new entry preserving insertion order.
func (s *Session) Add(e Entry) {
	for i := range s.Items {
		if s.Items[i].ItemID == e.ItemID && s.Items[i].Portion == e.Portion {
			s.Items[i].Quantity += e.Quantity
			return
		}
	}
	s.Items = append(s.Items, e)
}

// UpdateQuantity adds delta to the matching entry's quantity, clamping at
// zero; entries that reach zero are removed. Unknown keys are a no-op.
func (s *Session) UpdateQuantity(itemID, portion string, delta int) {
	kept := s.Items[:0]
	for _, e := range s.Items {
		if e.ItemID == itemID && e.Portion == portion {
			e.Quantity += delta
			if e.Quantity < 0 {
				e.Quantity = 0
			}
		}
		if e.Quantity > 0 {
			kept = append(kept, e)
		}
	}
	s.Items = kept
}

// Remove deletes the matching entry; no-op when absent
func (s *Session) Remove(itemID, portion string) {
	kept := s.Items[:0]
	for _, e := range s.Items {
		if e.ItemID == itemID && e.Portion == portion {
			continue
		}
		kept = append(kept, e)
	}
	s.Items = kept
}

// Clear empties the cart but keeps table/customer context and order history
func (s *Session) Clear() {
	s.Items = nil
}

// Total returns the cart total at current entry prices
func (s *Session) Total() float64 {
	var total float64
	for _, e := range s.Items {
		total += e.Price * float64(e.Quantity)
	}
	return total
}

// clone returns a deep copy used as the rollback snapshot
func (s *Session) clone() *Session {
	cp := *s
	cp.Items = append([]Entry(nil), s.Items...)
	cp.OrderIDs = append([]string(nil), s.OrderIDs...)
	return &cp
}
