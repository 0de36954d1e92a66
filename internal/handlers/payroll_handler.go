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

type PayrollHandler struct {
	Service *services.PayrollService
}

func NewPayrollHandler(s *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{Service: s}
}

// Generate recomputes payroll for one staff member and month
func (h *PayrollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec, err := h.Service.Generate(r.Context(), req.StaffID, req.Month)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// GenerateAll recomputes every active staff member's payroll for a month
func (h *PayrollHandler) GenerateAll(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	records, err := h.Service.GenerateForRestaurant(r.Context(), vars["restaurantId"], vars["month"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, records)
}

// List returns payroll rows for /payroll/{restaurantId}/{month}
func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	records, err := h.Service.List(r.Context(), vars["restaurantId"], vars["month"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, records)
}

// MarkPaid flips a payroll record to paid
func (h *PayrollHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.MarkPaid(r.Context(), mux.Vars(r)["payrollId"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Payroll record not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to mark paid")
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}
