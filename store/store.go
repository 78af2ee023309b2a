// Package store implements the persisted collection storage behind the
// kiosk: service listings, their reviews and tour bookings, and the visitor
// check-in log. Each collection lives whole in one kv slot as a JSON array;
// every write is a full read-modify-write of its slot. A single logical
// writer is assumed, concurrent writers lose updates last-writer-wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"thochu/kv"
	"thochu/models"
)

// Slot keys. Fixed names, one collection each.
const (
	SlotServices = "islandServices"
	SlotReviews  = "serviceReviews"
	SlotBookings = "tourBookings"
	SlotVisitors = "checkedInVisitors"
	SlotAdmin    = "adminAuth"
)

type Store struct {
	backend kv.Backend
}

func New(backend kv.Backend) *Store {
	return &Store{backend: backend}
}

// readSlot decodes a slot into dst. A slot that was never written degrades
// to the empty collection; a slot that exists but does not decode is a hard
// error surfaced to the caller.
func readSlot[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	data, err := s.backend.Get(ctx, key)
	if err == kv.ErrNotFound {
		return []T{}, nil
	}
	if err != nil {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func writeSlot[T any](ctx context.Context, s *Store, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

// ---------- Services ----------

func (s *Store) Services(ctx context.Context) ([]models.ServicePost, error) {
	return readSlot[models.ServicePost](ctx, s, SlotServices)
}

// SaveService upserts: a listing with a known id is replaced in place, its
// position preserved; a new id is appended.
func (s *Store) SaveService(ctx context.Context, post models.ServicePost) error {
	services, err := s.Services(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range services {
		if services[i].ID == post.ID {
			services[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		services = append(services, post)
	}
	return writeSlot(ctx, s, SlotServices, services)
}

func (s *Store) ServiceByID(ctx context.Context, id string) (models.ServicePost, bool, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return models.ServicePost{}, false, err
	}
	for _, p := range services {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.ServicePost{}, false, nil
}

// DeleteService removes the listing and cascades: every review and booking
// owned by it is dropped as well. The three slots are written separately;
// there is no cross-slot transaction.
func (s *Store) DeleteService(ctx context.Context, id string) error {
	services, err := s.Services(ctx)
	if err != nil {
		return err
	}
	kept := services[:0]
	for _, p := range services {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := writeSlot(ctx, s, SlotServices, kept); err != nil {
		return err
	}

	reviews, err := s.Reviews(ctx)
	if err != nil {
		return err
	}
	keptReviews := reviews[:0]
	for _, r := range reviews {
		if r.ServiceID != id {
			keptReviews = append(keptReviews, r)
		}
	}
	if err := writeSlot(ctx, s, SlotReviews, keptReviews); err != nil {
		return err
	}

	bookings, err := s.Bookings(ctx)
	if err != nil {
		return err
	}
	keptBookings := bookings[:0]
	for _, b := range bookings {
		if b.ServiceID != id {
			keptBookings = append(keptBookings, b)
		}
	}
	return writeSlot(ctx, s, SlotBookings, keptBookings)
}

// ---------- Reviews ----------

func (s *Store) Reviews(ctx context.Context) ([]models.Review, error) {
	return readSlot[models.Review](ctx, s, SlotReviews)
}

func (s *Store) ServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	reviews, err := s.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Review{}
	for _, r := range reviews {
		if r.ServiceID == serviceID {
			out = append(out, r)
		}
	}
	return out, nil
}

// SaveReview appends. Reviews have no upsert path.
func (s *Store) SaveReview(ctx context.Context, review models.Review) error {
	reviews, err := s.Reviews(ctx)
	if err != nil {
		return err
	}
	reviews = append(reviews, review)
	return writeSlot(ctx, s, SlotReviews, reviews)
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	reviews, err := s.Reviews(ctx)
	if err != nil {
		return err
	}
	kept := reviews[:0]
	for _, r := range reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return writeSlot(ctx, s, SlotReviews, kept)
}

// AverageRating is the mean rating of a listing's reviews rounded to one
// decimal place, 0 when the listing has none.
func (s *Store) AverageRating(ctx context.Context, serviceID string) (float64, error) {
	reviews, err := s.ServiceReviews(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10, nil
}

// ---------- Bookings ----------

func (s *Store) Bookings(ctx context.Context) ([]models.TourBooking, error) {
	return readSlot[models.TourBooking](ctx, s, SlotBookings)
}

func (s *Store) ServiceBookings(ctx context.Context, serviceID string) ([]models.TourBooking, error) {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.TourBooking{}
	for _, b := range bookings {
		if b.ServiceID == serviceID {
			out = append(out, b)
		}
	}
	return out, nil
}

// SaveBooking appends. Bookings have no upsert path.
func (s *Store) SaveBooking(ctx context.Context, booking models.TourBooking) error {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)
	return writeSlot(ctx, s, SlotBookings, bookings)
}

// UpdateBookingStatus sets the status of the matching booking. An unknown id
// is a silent no-op, stale admin UIs delete-race against each other and that
// should not surface as an error.
func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) error {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			return writeSlot(ctx, s, SlotBookings, bookings)
		}
	}
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	bookings, err := s.Bookings(ctx)
	if err != nil {
		return err
	}
	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	return writeSlot(ctx, s, SlotBookings, kept)
}

// ---------- Visitor log ----------

func (s *Store) Visitors(ctx context.Context) ([]models.Visitor, error) {
	return readSlot[models.Visitor](ctx, s, SlotVisitors)
}

// AppendVisitor stamps the check-in time and appends. Duplicate check-ins
// for the same CCCD are separate entries on purpose.
func (s *Store) AppendVisitor(ctx context.Context, visitor models.Visitor) (models.Visitor, error) {
	visitors, err := s.Visitors(ctx)
	if err != nil {
		return models.Visitor{}, err
	}
	visitor.CheckInTime = models.Timestamp(time.Now())
	visitors = append(visitors, visitor)
	if err := writeSlot(ctx, s, SlotVisitors, visitors); err != nil {
		return models.Visitor{}, err
	}
	return visitor, nil
}

// DeleteVisitorAt removes by position; visitor entries carry no identifier.
// An out-of-range index is a no-op.
func (s *Store) DeleteVisitorAt(ctx context.Context, index int) error {
	visitors, err := s.Visitors(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(visitors) {
		return nil
	}
	visitors = append(visitors[:index], visitors[index+1:]...)
	return writeSlot(ctx, s, SlotVisitors, visitors)
}

func (s *Store) ClearVisitors(ctx context.Context) error {
	return s.backend.Delete(ctx, SlotVisitors)
}

// ---------- Admin flag ----------

func (s *Store) SetAdminFlag(ctx context.Context, on bool) error {
	if !on {
		return s.backend.Delete(ctx, SlotAdmin)
	}
	return s.backend.Set(ctx, SlotAdmin, []byte("true"))
}

func (s *Store) AdminFlag(ctx context.Context) bool {
	data, err := s.backend.Get(ctx, SlotAdmin)
	if err != nil {
		return false
	}
	return string(data) == "true"
}

// ---------- Bulk overwrite (demo loader) ----------

func (s *Store) ReplaceServices(ctx context.Context, services []models.ServicePost) error {
	return writeSlot(ctx, s, SlotServices, services)
}

func (s *Store) ReplaceReviews(ctx context.Context, reviews []models.Review) error {
	return writeSlot(ctx, s, SlotReviews, reviews)
}

func (s *Store) ReplaceBookings(ctx context.Context, bookings []models.TourBooking) error {
	return writeSlot(ctx, s, SlotBookings, bookings)
}

func (s *Store) ReplaceVisitors(ctx context.Context, visitors []models.Visitor) error {
	return writeSlot(ctx, s, SlotVisitors, visitors)
}
