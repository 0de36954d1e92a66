package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type AttendanceHandler struct {
	Service *services.AttendanceService
}

func NewAttendanceHandler(s *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{Service: s}
}

// Upsert marks one day's attendance; repeated marks overwrite
func (h *AttendanceHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rec, err := h.Service.Mark(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rec)
}

// ListByDate returns a restaurant's attendance for ?date=YYYY-MM-DD
func (h *AttendanceHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["restaurantId"]
	date := r.URL.Query().Get("date")
	records, err := h.Service.ListByDate(r.Context(), restaurantID, date)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, records)
}

// ListMonth returns one staff member's attendance for ?month=YYYY-MM
func (h *AttendanceHandler) ListMonth(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]
	month := r.URL.Query().Get("month")
	records, err := h.Service.ListMonth(r.Context(), staffID, month)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, records)
}
