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

type KhataHandler struct {
	Service *services.KhataService
}

func NewKhataHandler(s *services.KhataService) *KhataHandler {
	return &KhataHandler{Service: s}
}

func (h *KhataHandler) UpsertCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	customer, err := h.Service.UpsertCustomer(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customer)
}

func (h *KhataHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.ListCustomers(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list customers")
		return
	}
	utils.JSON(w, http.StatusOK, customers)
}

// RecordTransaction books a debit or credit on a customer's khata
func (h *KhataHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKhataTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.CustomerID = mux.Vars(r)["customerId"]
	txn, err := h.Service.RecordTransaction(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Customer not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, txn)
}

// Ledger returns the full transaction history plus the running balance
func (h *KhataHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	txns, bal, err := h.Service.Ledger(r.Context(), mux.Vars(r)["customerId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load khata ledger")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"balance":      bal,
	})
}
