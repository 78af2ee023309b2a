// Package reviews handles customer reviews on service listings.
package reviews

import (
	"encoding/json"
	"net/http"
	"time"

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

// GET /api/services/:id/reviews
func (h *Handler) ListByService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("id")

	reviews, err := h.Store.ServiceReviews(r.Context(), serviceID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	rating, err := h.Store.AverageRating(r.Context(), serviceID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "reviews": reviews, "averageRating": rating})
}

// POST /api/services/:id/reviews
func (h *Handler) Add(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil || review.Rating < 1 || review.Rating > 5 {
		http.Error(w, "Invalid review data", http.StatusBadRequest)
		return
	}

	review.ID = "review-" + utils.GenerateRandomString(16)
	review.ServiceID = ps.ByName("id")
	review.CreatedAt = models.Timestamp(time.Now())
	if review.UserName == "" {
		review.UserName = "Khách ẩn danh"
	}

	if err := h.Store.SaveReview(r.Context(), review); err != nil {
		http.Error(w, "Failed to save review", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "review": review})
}

// DELETE /api/reviews/:id
// Deleting an id that is already gone is a no-op, stale admin lists are
// expected.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.Store.DeleteReview(r.Context(), ps.ByName("id")); err != nil {
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
