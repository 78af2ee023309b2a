// Package services exposes the published service listings: restaurants,
// hotels, vehicle rental and tours.
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"thochu/filemgr"
	"thochu/models"
	"thochu/store"
	"thochu/utils"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

func genID() string {
	return fmt.Sprintf("service-%d", time.Now().UnixMilli())
}

// GET /api/services?category=tour
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	services, err := h.Store.Services(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read services")
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		filtered := []models.ServicePost{}
		for _, p := range services {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		services = filtered
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "services": services})
}

// GET /api/services/:id
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	post, found, err := h.Store.ServiceByID(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read services")
		return
	}
	if !found {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	rating, err := h.Store.AverageRating(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "service": post, "averageRating": rating})
}

// POST /api/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.ServicePost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidCategory(post.Category) {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}
	if post.Title == "" {
		http.Error(w, "Missing title", http.StatusBadRequest)
		return
	}

	post.ID = genID()
	now := models.Timestamp(time.Now())
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := h.Store.SaveService(r.Context(), post); err != nil {
		http.Error(w, "Failed to save service", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "service": post})
}

// PUT /api/services/:id
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	existing, found, err := h.Store.ServiceByID(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read services")
		return
	}
	if !found {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	var post models.ServicePost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidCategory(post.Category) {
		http.Error(w, "Invalid category", http.StatusBadRequest)
		return
	}
	if post.Title == "" {
		http.Error(w, "Missing title", http.StatusBadRequest)
		return
	}

	// identifier and creation time are stable for the listing's lifetime
	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = models.Timestamp(time.Now())
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := h.Store.SaveService(r.Context(), post); err != nil {
		http.Error(w, "Failed to save service", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "service": post})
}

// DELETE /api/services/:id
// Cascades: the listing's reviews, bookings and stored photos go with it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	existing, found, err := h.Store.ServiceByID(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read services")
		return
	}
	if found {
		// external image URLs carry no local file
		for _, img := range existing.Images {
			if name, ok := strings.CutPrefix(img, "/static/servicepic/"); ok {
				filemgr.RemoveServiceImage(name)
			}
		}
	}
	if err := h.Store.DeleteService(r.Context(), id); err != nil {
		log.Printf("delete service %s: %v", id, err)
		http.Error(w, "Failed to delete service", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/uploads/servicepic
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(filemgr.MaxImageSize); err != nil {
		http.Error(w, "Invalid upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename, err := filemgr.SaveServiceImage(file, header)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "path": "/static/servicepic/" + filename})
		return
	}
	switch {
	case errors.Is(err, filemgr.ErrFileTooLarge):
		http.Error(w, "Image exceeds the 2MB limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, filemgr.ErrInvalidMIME):
		http.Error(w, "Unsupported image format", http.StatusBadRequest)
	default:
		log.Printf("save image: %v", err)
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
	}
}
