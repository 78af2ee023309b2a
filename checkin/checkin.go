// Package checkin drives the kiosk flow: QR scan, visitor log, exports.
package checkin

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"thochu/demo"
	"thochu/exports"
	"thochu/live"
	"thochu/models"
	"thochu/store"
	"thochu/utils"
	"thochu/vneid"
)

type Handler struct {
	Store *store.Store
	Hub   *live.Hub
}

func NewHandler(s *store.Store, hub *live.Hub) *Handler {
	return &Handler{Store: s, Hub: hub}
}

// ---------- scanning ----------

// POST /api/checkin/scan
// Parses a raw QR payload without touching the log; the kiosk shows the
// decoded identity for the operator to confirm.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	identity, err := vneid.Parse(body.Payload)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]any{
			"ok":      false,
			"error":   "Mã QR không đúng định dạng CCCD",
			"payload": body.Payload,
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "identity": identity})
}

// ---------- visitor log ----------

// POST /api/checkin
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var visitor models.Visitor
	if err := json.NewDecoder(r.Body).Decode(&visitor); err != nil {
		http.Error(w, "Invalid visitor data", http.StatusBadRequest)
		return
	}
	if visitor.FullName == "" || visitor.CCCD == "" {
		http.Error(w, "Missing visitor identity", http.StatusBadRequest)
		return
	}

	saved, err := h.Store.AppendVisitor(r.Context(), visitor)
	if err != nil {
		http.Error(w, "Failed to save visitor", http.StatusInternalServerError)
		return
	}
	if h.Hub != nil {
		h.Hub.BroadcastCheckin(saved)
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{"ok": true, "visitor": saved})
}

// GET /api/visitors
func (h *Handler) Visitors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitors, err := h.Store.Visitors(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve visitors")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "visitors": visitors})
}

// DELETE /api/visitors/:index
// The log is addressed by position; an out-of-range index is a no-op.
func (h *Handler) DeleteVisitor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	index, err := strconv.Atoi(ps.ByName("index"))
	if err != nil {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteVisitorAt(r.Context(), index); err != nil {
		http.Error(w, "Failed to delete visitor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/visitors
func (h *Handler) ClearVisitors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.Store.ClearVisitors(r.Context()); err != nil {
		http.Error(w, "Failed to clear visitors", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------- exports ----------

// GET /api/visitors/export/csv
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitors, err := h.Store.Visitors(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve visitors", http.StatusInternalServerError)
		return
	}
	data := exports.VisitorsCSV(visitors)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exports.CSVFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GET /api/visitors/export/pdf
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	visitors, err := h.Store.Visitors(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve visitors", http.StatusInternalServerError)
		return
	}
	data, err := exports.VisitorsPDF(visitors)
	if err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exports.PDFFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ---------- demo helpers ----------

// samplePayload is a well-formed credential for kiosk demos and testing
// scanners without a physical card.
const samplePayload = "079203012345|123456789|Nguyễn Văn An|15081990|Nam|Thôn 4, Xã Thổ Châu, TP Phú Quốc, Kiên Giang|10012021"

// GET /api/checkin/sample-qr — a scannable PNG of samplePayload.
func (h *Handler) SampleQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	png, err := qrcode.Encode(samplePayload, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// POST /api/demo/services — replaces listings, reviews and bookings with the
// demo catalogue. Existing data is overwritten, not merged.
func (h *Handler) LoadDemoServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := demo.LoadServices(r.Context(), h.Store); err != nil {
		http.Error(w, "Failed to load demo data", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// POST /api/demo/visitors
func (h *Handler) LoadDemoVisitors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := demo.LoadVisitors(r.Context(), h.Store); err != nil {
		http.Error(w, "Failed to load demo data", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}
