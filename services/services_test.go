package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"

	"thochu/filemgr"
	"thochu/kv"
	"thochu/models"
	"thochu/store"
)

func newTestHandler() *Handler {
	return NewHandler(store.New(kv.NewMemory()))
}

func createService(t *testing.T, h *Handler, category, title string) models.ServicePost {
	t.Helper()
	body, _ := json.Marshal(models.ServicePost{Category: category, Title: title})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %q: status = %d: %s", title, rec.Code, rec.Body.String())
	}
	var resp struct {
		Service models.ServicePost `json:"service"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp.Service
}

func TestCreateRejectsBadCategory(t *testing.T) {
	h := newTestHandler()
	body, _ := json.Marshal(models.ServicePost{Category: "spa", Title: "Spa biển"})
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListFiltersByCategory(t *testing.T) {
	h := newTestHandler()
	createService(t, h, models.CategoryHotel, "Nhà nghỉ Hòn Từ")
	tour := createService(t, h, models.CategoryTour, "Tour lặn ngắm san hô")

	req := httptest.NewRequest(http.MethodGet, "/?category=tour", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Services []models.ServicePost `json:"services"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Services) != 1 || resp.Services[0].ID != tour.ID {
		t.Fatalf("filtered list = %+v", resp.Services)
	}
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	h := newTestHandler()
	created := createService(t, h, models.CategoryRestaurant, "Quán hải sản")

	body, _ := json.Marshal(models.ServicePost{
		ID:       "service-spoofed",
		Category: models.CategoryRestaurant,
		Title:    "Quán hải sản Bãi Ngự",
	})
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: created.ID}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	got, found, err := h.Store.ServiceByID(context.Background(), created.ID)
	if err != nil || !found {
		t.Fatalf("updated service missing: %v", err)
	}
	if got.Title != "Quán hải sản Bãi Ngự" || got.CreatedAt != created.CreatedAt {
		t.Fatalf("update lost fields: %+v", got)
	}
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	h := newTestHandler()
	created := createService(t, h, models.CategoryHotel, "Nhà nghỉ Hòn Từ")

	body, _ := json.Marshal(models.ServicePost{Category: models.CategoryHotel, Title: ""})
	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Update(rec, req, httprouter.Params{{Key: "id", Value: created.ID}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	got, _, err := h.Store.ServiceByID(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Nhà nghỉ Hòn Từ" {
		t.Fatalf("listing title was blanked: %+v", got)
	}
}

func TestDeleteRemovesStoredImages(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.MkdirAll(filemgr.ThumbDir, 0o755); err != nil {
		t.Fatal(err)
	}
	imgPath := filepath.Join(filemgr.UploadDir, "abc.jpg")
	thumbPath := filepath.Join(filemgr.ThumbDir, "abc.jpg")
	for _, p := range []string{imgPath, thumbPath} {
		if err := os.WriteFile(p, []byte("jpeg"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	h := newTestHandler()
	ctx := context.Background()
	err = h.Store.SaveService(ctx, models.ServicePost{
		ID:       "service-img",
		Category: models.CategoryHotel,
		Title:    "Nhà nghỉ Hòn Từ",
		Images: []string{
			"/static/servicepic/abc.jpg",
			"https://images.unsplash.com/photo-1559339352?w=800",
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: "service-img"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	for _, p := range []string{imgPath, thumbPath} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("%s still on disk after delete", p)
		}
	}
}

func TestDeleteCascades(t *testing.T) {
	h := newTestHandler()
	created := createService(t, h, models.CategoryTour, "Tour câu mực đêm")
	ctx := context.Background()
	err := h.Store.SaveReview(ctx, models.Review{ID: "review-1", ServiceID: created.ID, Rating: 5})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	h.Delete(rec, req, httprouter.Params{{Key: "id", Value: created.ID}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	reviews, _ := h.Store.Reviews(ctx)
	if len(reviews) != 0 {
		t.Fatalf("reviews survived the cascade: %+v", reviews)
	}
}
