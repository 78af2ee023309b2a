package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"

	"thochu/globals"
	"thochu/middleware"
	"thochu/store"
	"thochu/utils"
)

const tokenTTL = 12 * time.Hour

// CredentialVerifier decides whether a username/password pair may open the
// admin screens. The gate is swappable without touching the login handler;
// the default is a static single-operator allow-list. Not a security
// boundary, the kiosk runs on a trusted LAN.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticVerifier holds one username and a bcrypt hash of its password.
type StaticVerifier struct {
	Username     string
	PasswordHash []byte
}

// NewStaticVerifier reads ADMIN_USER / ADMIN_PASSWORD from the environment,
// falling back to admin/admin.
func NewStaticVerifier() *StaticVerifier {
	user := os.Getenv("ADMIN_USER")
	if user == "" {
		user = "admin"
	}
	pass := os.Getenv("ADMIN_PASSWORD")
	if pass == "" {
		pass = "admin"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	return &StaticVerifier{Username: user, PasswordHash: hash}
}

func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.PasswordHash, []byte(password)) == nil
}

// Handler owns the admin session endpoints.
type Handler struct {
	Store    *store.Store
	Verifier CredentialVerifier
}

func NewHandler(s *store.Store, v CredentialVerifier) *Handler {
	return &Handler{Store: s, Verifier: v}
}

// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !h.Verifier.Verify(creds.Username, creds.Password) {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: creds.Username,
		UserID:   creds.Username,
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	// mirror the session into the adminAuth slot; dashboard loads check it
	if err := h.Store.SetAdminFlag(r.Context(), true); err != nil {
		log.Printf("set admin flag: %v", err)
	}

	utils.SendResponse(w, http.StatusOK, map[string]string{"token": tokenString}, "Login successful", nil)
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.Store.SetAdminFlag(r.Context(), false); err != nil {
		log.Printf("clear admin flag: %v", err)
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// GET /api/auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"authenticated": h.Store.AdminFlag(r.Context())})
}
