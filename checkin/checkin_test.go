package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"thochu/kv"
	"thochu/models"
	"thochu/store"
)

func newTestHandler() *Handler {
	return NewHandler(store.New(kv.NewMemory()), nil)
}

func postJSON(t *testing.T, h httprouter.Handle, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h(rec, req, nil)
	return rec
}

func TestScanValidPayload(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Scan, map[string]string{
		"payload": "012345678901|123456789|Nguyễn Văn A|01011990|Nam|Xã Thổ Châu|15052021",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		OK       bool `json:"ok"`
		Identity struct {
			FullName    string `json:"fullName"`
			DateOfBirth string `json:"dateOfBirth"`
		} `json:"identity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK || resp.Identity.FullName != "Nguyễn Văn A" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if resp.Identity.DateOfBirth != "01/01/1990" {
		t.Fatalf("dateOfBirth = %q, want formatted", resp.Identity.DateOfBirth)
	}
}

func TestScanMalformedPayload(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.Scan, map[string]string{"payload": "not-a-credential"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not-a-credential") {
		t.Fatalf("response should echo the offending payload: %s", rec.Body.String())
	}
}

func TestCheckInAppendsAndStamps(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h.CheckIn, models.Visitor{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty visitor accepted: %d", rec.Code)
	}

	v := models.Visitor{}
	v.CCCD = "012345678901"
	v.FullName = "Trần Thị B"
	rec = postJSON(t, h.CheckIn, v)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	visitors, err := h.Store.Visitors(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(visitors) != 1 || visitors[0].CheckInTime == "" {
		t.Fatalf("visitor not logged with timestamp: %+v", visitors)
	}
}

func TestDeleteVisitorByIndex(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()
	for _, name := range []string{"A", "B", "C"} {
		v := models.Visitor{}
		v.CCCD = "012345678901"
		v.FullName = name
		if _, err := h.Store.AppendVisitor(ctx, v); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	h.DeleteVisitor(rec, req, httprouter.Params{{Key: "index", Value: "1"}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	visitors, _ := h.Store.Visitors(ctx)
	if len(visitors) != 2 || visitors[0].FullName != "A" || visitors[1].FullName != "C" {
		t.Fatalf("wrong entry removed: %+v", visitors)
	}
}

func TestExportCSVHeaders(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ExportCSV(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("Content-Type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "danh-sach-du-khach-") || !strings.HasSuffix(cd, `.csv"`) {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\uFEFF")) {
		t.Fatal("CSV body missing BOM")
	}
}

func TestSampleQR(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.SampleQR(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestLoadDemoData(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.LoadDemoServices(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	services, _ := h.Store.Services(context.Background())
	if len(services) != 16 {
		t.Fatalf("len(services) = %d, want 16", len(services))
	}
}
