package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(s *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// Bill streams the order bill as a PDF download
func (h *ReportHandler) Bill(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]
	data, err := h.Service.GenerateBillPDF(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to generate bill")
		return
	}
	servePDF(w, fmt.Sprintf("bill_%s.pdf", orderID), data)
}

// Payslip streams a staff member's monthly payslip as a PDF download
func (h *ReportHandler) Payslip(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	data, err := h.Service.GeneratePayslipPDF(r.Context(), vars["staffId"], vars["month"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	servePDF(w, fmt.Sprintf("payslip_%s_%s.pdf", vars["staffId"], vars["month"]), data)
}

func servePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
