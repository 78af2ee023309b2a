package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	"thochu/kv"
	"thochu/models"
	"thochu/store"
)

func seedBooking(t *testing.T, s *store.Store, id, status string) {
	t.Helper()
	err := s.SaveBooking(context.Background(), models.TourBooking{
		ID:             id,
		ServiceID:      "service-13",
		CustomerName:   "Lê Văn C",
		CustomerPhone:  "0901234567",
		NumberOfPeople: 2,
		Status:         status,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func patchStatus(h *Handler, id, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"status": status})
	req := httptest.NewRequest(http.MethodPatch, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req, httprouter.Params{{Key: "id", Value: id}})
	return rec
}

func TestUpdateStatusPendingMoves(t *testing.T) {
	h := NewHandler(store.New(kv.NewMemory()))
	seedBooking(t, h.Store, "booking-1", models.BookingPending)

	if rec := patchStatus(h, "booking-1", models.BookingConfirmed); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	bookings, _ := h.Store.Bookings(context.Background())
	if bookings[0].Status != models.BookingConfirmed {
		t.Fatalf("booking status = %q", bookings[0].Status)
	}
}

func TestUpdateStatusTerminalConflicts(t *testing.T) {
	h := NewHandler(store.New(kv.NewMemory()))
	seedBooking(t, h.Store, "booking-1", models.BookingCancelled)

	if rec := patchStatus(h, "booking-1", models.BookingConfirmed); rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateStatusUnknownIDNoOp(t *testing.T) {
	h := NewHandler(store.New(kv.NewMemory()))
	seedBooking(t, h.Store, "booking-1", models.BookingPending)

	if rec := patchStatus(h, "booking-nope", models.BookingConfirmed); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	bookings, _ := h.Store.Bookings(context.Background())
	if bookings[0].Status != models.BookingPending {
		t.Fatalf("unrelated booking changed: %q", bookings[0].Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	h := NewHandler(store.New(kv.NewMemory()))
	if rec := patchStatus(h, "booking-1", "done"); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateForcesPending(t *testing.T) {
	h := NewHandler(store.New(kv.NewMemory()))
	err := h.Store.SaveService(context.Background(), models.ServicePost{ID: "service-13", Category: models.CategoryTour, Title: "Tour câu cá"})
	if err != nil {
		t.Fatal(err)
	}

	body, _ := json.Marshal(models.TourBooking{
		CustomerName:   "Phạm Thị D",
		CustomerPhone:  "0907654321",
		NumberOfPeople: 4,
		Status:         models.BookingConfirmed,
	})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, httprouter.Params{{Key: "id", Value: "service-13"}})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	bookings, _ := h.Store.Bookings(context.Background())
	if len(bookings) != 1 || bookings[0].Status != models.BookingPending {
		t.Fatalf("booking not stored pending: %+v", bookings)
	}
}
