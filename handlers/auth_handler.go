package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/sportsync/pickup-games/middleware"
)

// sessionTTL bounds how long a session cookie stays valid.
const sessionTTL = 7 * 24 * time.Hour

// AuthHandler renders the identity-provider-backed auth pages and exchanges
// a provider-issued identity token for a session cookie. The provider and
// this service share the HS256 signing secret; password handling lives
// entirely on the provider's side.
type AuthHandler struct {
	secret []byte
}

func NewAuthHandler(secret []byte) *AuthHandler {
	return &AuthHandler{secret: secret}
}

func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, http.StatusOK, "signup.html", map[string]interface{}{
		"Identity": middleware.IdentityFromContext(r.Context()),
	})
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, http.StatusOK, "login.html", map[string]interface{}{
		"Identity": middleware.IdentityFromContext(r.Context()),
	})
}

// CreateSession verifies the identity token posted by the auth page and
// mints the session cookie from its claims.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	if len(h.secret) == 0 {
		renderErrorPage(w, http.StatusServiceUnavailable, "login is not configured on this server")
		return
	}

	if err := r.ParseForm(); err != nil {
		badRequestResponse(w, err)
		return
	}

	ident, err := middleware.ParseIdentity(r.PostFormValue("idToken"), h.secret)
	if err != nil {
		renderErrorPage(w, http.StatusUnauthorized, "identity token could not be verified")
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"name":  ident.Name,
		"email": ident.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/games", http.StatusSeeOther)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
