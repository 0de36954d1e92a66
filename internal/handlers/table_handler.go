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

type TableHandler struct {
	Service *services.TableService
}

func NewTableHandler(s *services.TableService) *TableHandler {
	return &TableHandler{Service: s}
}

func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	var table models.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.Create(r.Context(), &table); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, table)
}

func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Service.ListByRestaurant(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list tables")
		return
	}
	utils.JSON(w, http.StatusOK, tables)
}

// Resolve maps a scanned QR token to its table and restaurant
func (h *TableHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	table, err := h.Service.ResolveQRToken(r.Context(), mux.Vars(r)["token"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Unknown or inactive table")
		return
	}
	restaurant, err := h.Service.GetRestaurant(r.Context(), table.RestaurantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load restaurant")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"table":      table,
		"restaurant": restaurant,
	})
}

func (h *TableHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.SetActive(r.Context(), mux.Vars(r)["id"], req.IsActive); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Table not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to update table")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"is_active": req.IsActive})
}
