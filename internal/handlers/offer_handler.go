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

type OfferHandler struct {
	Service *services.OfferService
}

func NewOfferHandler(s *services.OfferService) *OfferHandler {
	return &OfferHandler{Service: s}
}

func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	offer, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, offer)
}

// ListActive is the public view shown on the customer menu
func (h *OfferHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.ListActive(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list offers")
		return
	}
	utils.JSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Service.ListAll(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list offers")
		return
	}
	utils.JSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.SetActive(r.Context(), mux.Vars(r)["id"], req.IsActive); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Offer not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to update offer")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"is_active": req.IsActive})
}
