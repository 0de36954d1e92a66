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

type StaffHandler struct {
	Service *services.StaffService
}

func NewStaffHandler(s *services.StaffService) *StaffHandler {
	return &StaffHandler{Service: s}
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	staff, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, staff)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	staff, err := h.Service.ListByRestaurant(r.Context(), restaurantID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list staff")
		return
	}
	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	staff, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to load staff member")
		return
	}
	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	staff, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *StaffHandler) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	adv, err := h.Service.CreateAdvance(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, adv)
}

func (h *StaffHandler) ListAdvances(w http.ResponseWriter, r *http.Request) {
	advances, err := h.Service.ListAdvances(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list advances")
		return
	}
	utils.JSON(w, http.StatusOK, advances)
}

func (h *StaffHandler) AdvanceBalance(w http.ResponseWriter, r *http.Request) {
	bal, err := h.Service.AdvanceBalance(r.Context(), mux.Vars(r)["staffId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to compute balance")
		return
	}
	utils.JSON(w, http.StatusOK, bal)
}
