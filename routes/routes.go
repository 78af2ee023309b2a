package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"thochu/auth"
	"thochu/bookings"
	"thochu/checkin"
	"thochu/live"
	"thochu/middleware"
	"thochu/ratelim"
	"thochu/reviews"
	"thochu/services"
	"thochu/store"
)

// Deps carries everything the route groups need. Handlers get their
// dependencies here instead of reaching for globals.
type Deps struct {
	Store       *store.Store
	Verifier    auth.CredentialVerifier
	Hub         *live.Hub
	RateLimiter *ratelim.RateLimiter
}

func RoutesWrapper(router *httprouter.Router, d Deps) {
	AddStaticRoutes(router)
	AddAuthRoutes(router, d)
	AddServiceRoutes(router, d)
	AddReviewRoutes(router, d)
	AddBookingRoutes(router, d)
	AddCheckinRoutes(router, d)
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/servicepic/*filepath", http.Dir("static/servicepic"))
}

func AddAuthRoutes(router *httprouter.Router, d Deps) {
	h := auth.NewHandler(d.Store, d.Verifier)

	router.POST("/api/auth/login", d.RateLimiter.Limit(h.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(h.Logout))
	router.GET("/api/auth/session", middleware.Authenticate(h.Session))
}

func AddServiceRoutes(router *httprouter.Router, d Deps) {
	h := services.NewHandler(d.Store)

	router.GET("/api/services", h.List)
	router.GET("/api/services/:id", h.Get)
	router.POST("/api/services", middleware.Authenticate(h.Create))
	router.PUT("/api/services/:id", middleware.Authenticate(h.Update))
	router.DELETE("/api/services/:id", middleware.Authenticate(h.Delete))
	router.POST("/api/uploads/servicepic", middleware.Authenticate(h.UploadImage))
}

func AddReviewRoutes(router *httprouter.Router, d Deps) {
	h := reviews.NewHandler(d.Store)

	router.GET("/api/services/:id/reviews", h.ListByService)
	router.POST("/api/services/:id/reviews", d.RateLimiter.Limit(h.Add))
	router.DELETE("/api/reviews/:id", middleware.Authenticate(h.Delete))
}

func AddBookingRoutes(router *httprouter.Router, d Deps) {
	h := bookings.NewHandler(d.Store)

	router.GET("/api/bookings", middleware.Authenticate(h.List))
	router.GET("/api/services/:id/bookings", middleware.Authenticate(h.ListByService))
	router.POST("/api/services/:id/bookings", d.RateLimiter.Limit(h.Create))
	router.PATCH("/api/bookings/:id/status", middleware.Authenticate(h.UpdateStatus))
	router.DELETE("/api/bookings/:id", middleware.Authenticate(h.Delete))
}

func AddCheckinRoutes(router *httprouter.Router, d Deps) {
	h := checkin.NewHandler(d.Store, d.Hub)

	router.POST("/api/checkin/scan", d.RateLimiter.Limit(h.Scan))
	router.POST("/api/checkin", d.RateLimiter.Limit(h.CheckIn))
	router.GET("/api/checkin/sample-qr", h.SampleQR)

	router.GET("/api/visitors", middleware.Authenticate(h.Visitors))
	router.DELETE("/api/visitors", middleware.Authenticate(h.ClearVisitors))
	router.DELETE("/api/visitors/:index", middleware.Authenticate(h.DeleteVisitor))
	router.GET("/api/visitors/export/csv", middleware.Authenticate(h.ExportCSV))
	router.GET("/api/visitors/export/pdf", middleware.Authenticate(h.ExportPDF))

	router.GET("/ws/checkins", live.WebSocketHandler(d.Hub))

	router.POST("/api/demo/services", middleware.Authenticate(h.LoadDemoServices))
	router.POST("/api/demo/visitors", middleware.Authenticate(h.LoadDemoVisitors))
}
