package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"resto-backend/internal/models"
	"resto-backend/internal/repositories"
	"resto-backend/internal/services"
	"resto-backend/pkg/utils"
)

// maxImageSize caps menu image uploads at 5 MB
const maxImageSize = 5 << 20

type MenuHandler struct {
	Service *services.MenuService
}

func NewMenuHandler(s *services.MenuService) *MenuHandler {
	return &MenuHandler{Service: s}
}

// GetMenu serves the public menu, cached
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GetMenu(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load menu")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	cat, err := h.Service.CreateCategory(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, cat)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuItemRequest
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

func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.Service.UpdateItem(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Menu item not found")
			return
		}
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, item)
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Menu item not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// UploadImage accepts a multipart image and stores it in media storage
func (h *MenuHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read image")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.Service.UploadItemImage(r.Context(), mux.Vars(r)["id"], data, contentType)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.Error(w, http.StatusNotFound, "Menu item not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"image": url})
}
