package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type VendorHandler struct {
	Service *services.VendorService
}

func NewVendorHandler(s *services.VendorService) *VendorHandler {
	return &VendorHandler{Service: s}
}

func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	vendor, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, vendor)
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.Service.List(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list vendors")
		return
	}
	utils.JSON(w, http.StatusOK, vendors)
}

func (h *VendorHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	purchase, err := h.Service.RecordPurchase(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, purchase)
}

func (h *VendorHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.Service.ListPurchases(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list purchases")
		return
	}
	utils.JSON(w, http.StatusOK, purchases)
}

// Payable returns the outstanding unpaid amount for one vendor
func (h *VendorHandler) Payable(w http.ResponseWriter, r *http.Request) {
	payable, err := h.Service.Payable(r.Context(), mux.Vars(r)["vendorId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to compute payable")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]float64{"payable": payable})
}
