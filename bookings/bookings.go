// Package bookings handles tour booking requests and their status lifecycle.
package bookings

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

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

// GET /api/bookings — admin view of every booking, newest first is the
// caller's concern, we return insertion order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := h.Store.Bookings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "bookings": bookings})
}

// GET /api/services/:id/bookings
func (h *Handler) ListByService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookings, err := h.Store.ServiceBookings(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "bookings": bookings})
}

// POST /api/services/:id/bookings
// Status is forced to pending regardless of what the client sent.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var booking models.TourBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, "Invalid booking data", http.StatusBadRequest)
		return
	}
	if booking.CustomerName == "" || booking.CustomerPhone == "" || booking.NumberOfPeople < 1 {
		http.Error(w, "Missing booking fields", http.StatusBadRequest)
		return
	}

	serviceID := ps.ByName("id")
	if _, ok, err := h.Store.ServiceByID(r.Context(), serviceID); err != nil {
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	} else if !ok {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	booking.ID = "booking-" + uuid.New().String()
	booking.ServiceID = serviceID
	booking.Status = models.BookingPending
	booking.CreatedAt = models.Timestamp(time.Now())

	if err := h.Store.SaveBooking(r.Context(), booking); err != nil {
		http.Error(w, "Failed to save booking", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "booking": booking})
}

// PATCH /api/bookings/:id/status
// Only pending bookings move; confirmed and cancelled are terminal.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !models.ValidBookingStatus(body.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	id := ps.ByName("id")
	bookings, err := h.Store.Bookings(r.Context())
	if err != nil {
		http.Error(w, "Failed to update booking", http.StatusInternalServerError)
		return
	}
	for _, b := range bookings {
		if b.ID != id {
			continue
		}
		if b.Status != models.BookingPending && b.Status != body.Status {
			http.Error(w, "Booking already "+b.Status, http.StatusConflict)
			return
		}
		break
	}

	// Unknown ids fall through as a silent no-op.
	if err := h.Store.UpdateBookingStatus(r.Context(), id, body.Status); err != nil {
		http.Error(w, "Failed to update booking", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// DELETE /api/bookings/:id
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.Store.DeleteBooking(r.Context(), ps.ByName("id")); err != nil {
		http.Error(w, "Failed to delete booking", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
