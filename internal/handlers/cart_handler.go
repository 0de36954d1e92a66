package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"resto-backend/internal/cart"
	"resto-backend/internal/models"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

// CartHandler exposes the QR cart session. The session ID comes from the
// X-Session-ID header the customer app generates on first load.
type CartHandler struct {
	Service *services.CartService
}

func NewCartHandler(s *services.CartService) *CartHandler {
	return &CartHandler{Service: s}
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get("X-Session-ID")
	if id == "" {
		utils.Error(w, http.StatusBadRequest, "X-Session-ID header required")
		return "", false
	}
	return id, true
}

// cartStatus maps a mutation failure to a status code: a dead persistence
// backend is retryable, everything else is the caller's input
func cartStatus(err error) int {
	if errors.Is(err, cart.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

// Open binds the session to a scanned table QR token
func (h *CartHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		QRToken      string `json:"qr_token"`
		CustomerName string `json:"customer_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sess, err := h.Service.Open(r.Context(), id, req.QRToken, req.CustomerName)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, sess)
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	sess, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load cart")
		return
	}
	utils.JSON(w, http.StatusOK, sess)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req models.OrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sess, err := h.Service.AddItem(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, cartStatus(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, sess)
}

// UpdateQuantity applies a delta; quantities clamp at zero and remove
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		ItemID  string `json:"item_id"`
		Portion string `json:"portion"`
		Delta   int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sess, err := h.Service.UpdateQuantity(r.Context(), id, req.ItemID, req.Portion, req.Delta)
	if err != nil {
		utils.Error(w, cartStatus(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, sess)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		ItemID  string `json:"item_id"`
		Portion string `json:"portion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	sess, err := h.Service.RemoveItem(r.Context(), id, req.ItemID, req.Portion)
	if err != nil {
		utils.Error(w, cartStatus(err), err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, sess)
}

// Checkout places the order from the cart contents
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	order, err := h.Service.Checkout(r.Context(), id)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, order)
}
