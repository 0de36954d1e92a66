package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(s *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// Record settles an order with cash/upi/card, or books it on a khata
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		models.InitiatePaymentRequest
		CustomerID string `json:"customer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.Service.RecordPayment(r.Context(), &req.InitiatePaymentRequest, req.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, payment)
}

// CreateOnline opens a Razorpay order for the checkout widget
func (h *PaymentHandler) CreateOnline(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.CreateOnlineOrder(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.Error(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, resp)
}

// Verify handles the checkout success callback
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req services.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.Service.VerifyPayment(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.ListByOrder(r.Context(), mux.Vars(r)["orderId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}

// Webhook receives asynchronous Razorpay events. The raw body is read
// first because the signature covers the exact bytes.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read body")
		return
	}
	if !h.Service.VerifyWebhookSignature(body, r.Header.Get("X-Razorpay-Signature")) {
		utils.Error(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var event struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid webhook body")
		return
	}

	if err := h.Service.ProcessWebhook(r.Context(), event.Event, event.Payload); err != nil {
		log.Printf("[Payment] Webhook processing failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
