package models

import "time"

// Service categories published to visitors. Closed set.
const (
	CategoryRestaurant = "restaurant"
	CategoryHotel      = "hotel"
	CategoryVehicle    = "vehicle"
	CategoryTour       = "tour"
)

var ServiceCategories = []string{CategoryRestaurant, CategoryHotel, CategoryVehicle, CategoryTour}

func ValidCategory(c string) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ServicePost is a published service listing. Images hold opaque sources,
// either upload paths or external URLs, in display order.
type ServicePost struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Price       string   `json:"price,omitempty"`
	Contact     string   `json:"contact,omitempty"`
	Location    string   `json:"location,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Review of a service listing. Append-only; delete is the only mutation.
type Review struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// Booking statuses. pending is the only non-terminal state in the UI.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

func ValidBookingStatus(s string) bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCancelled
}

// TourBooking is a customer's request to reserve a tour listing.
type TourBooking struct {
	ID             string `json:"id"`
	ServiceID      string `json:"serviceId"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	CustomerCCCD   string `json:"customerCCCD"`
	TourDate       string `json:"tourDate"` // YYYY-MM-DD
	NumberOfPeople int    `json:"numberOfPeople"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

// Timestamp renders t the way every record in the store carries time.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
