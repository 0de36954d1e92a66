package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type InventoryHandler struct {
	Service *services.InventoryService
}

func NewInventoryHandler(s *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: s}
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.Service.CreateItem(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, item)
}

func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list inventory")
		return
	}
	utils.JSON(w, http.StatusOK, items)
}

// LowStock returns items at or below their reorder level
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListLowStock(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list low-stock items")
		return
	}
	utils.JSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.Service.UpdateItem(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to delete inventory item")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// RecordMovement logs a stock movement and returns the updated stock level
func (h *InventoryHandler) RecordMovement(w http.ResponseWriter, r *http.Request) {
	var req models.RecordMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	movement, newStock, err := h.Service.RecordMovement(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"movement":  movement,
		"new_stock": newStock,
	})
}

func (h *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	movements, err := h.Service.ListMovements(r.Context(),
		mux.Vars(r)["restaurantId"], q.Get("itemId"), q.Get("type"), limit)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, movements)
}

func (h *InventoryHandler) LogCancellation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c, err := h.Service.LogCancellation(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, c)
}

func (h *InventoryHandler) ListCancellations(w http.ResponseWriter, r *http.Request) {
	logs, err := h.Service.ListCancellations(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list cancellations")
		return
	}
	utils.JSON(w, http.StatusOK, logs)
}
