package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(s *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

// Create places an order directly (counter/takeaway flow)
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.Service.Place(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to load order")
		return
	}
	utils.JSON(w, http.StatusOK, order)
}

// ListActive returns a customer's open orders for the active-bill view,
// filtered by ?customer= and optional ?table_id=
func (h *OrderHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	customer := r.URL.Query().Get("customer")
	var tableID *string
	if t := r.URL.Query().Get("table_id"); t != "" {
		tableID = &t
	}
	orders, err := h.Service.ListActive(r.Context(), restaurantID, customer, tableID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	utils.JSON(w, http.StatusOK, orders)
}

// KitchenBoard returns pending/preparing/ready orders oldest first
func (h *OrderHandler) KitchenBoard(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Service.KitchenBoard(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load kitchen board")
		return
	}
	utils.JSON(w, http.StatusOK, orders)
}

// UpdateStatus moves an order through its lifecycle
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	order, err := h.Service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, order)
}
