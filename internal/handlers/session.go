package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"hackhub/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "hackhub_session"
	flashCookie   = "hackhub_flash"
	sessionMaxAge = 7 * 24 * time.Hour
	ctxKeyUserID  = "user_id"
	ctxKeyIsAdmin = "is_admin"
)

// SessionClaims is the signed content of the session cookie. UserID is zero
// for an admin-only session; Admin is a verified claim, never a raw client
// value.
type SessionClaims struct {
	UserID uint `json:"user_id,omitempty"`
	Admin  bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

func (h *Handlers) issueSession(c *gin.Context, userID uint, admin bool) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionMaxAge)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		return
	}

	c.SetCookie(sessionCookie, signed, int(sessionMaxAge.Seconds()), "/", "", false, true)
}

func (h *Handlers) clearSession(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// sessionClaims parses and verifies the session cookie. Returns nil when the
// cookie is absent, expired or tampered with.
func (h *Handlers) sessionClaims(c *gin.Context) *SessionClaims {
	raw, err := c.Cookie(sessionCookie)
	if err != nil || raw == "" {
		return nil
	}

	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// AuthMiddleware resolves the session to a participant identity and redirects
// to the login page when there is none.
func (h *Handlers) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := h.sessionClaims(c)
		if claims == nil || claims.UserID == 0 {
			h.setFlash(c, "error", errs.ErrUnauthenticated.Error())
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyIsAdmin, claims.Admin)
		c.Next()
	}
}

// AdminMiddleware gates admin-only routes on the signed admin claim.
func (h *Handlers) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := h.sessionClaims(c)
		if claims == nil || !claims.Admin {
			h.setFlash(c, "error", errs.ErrUnauthorized.Error())
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ctxKeyIsAdmin, true)
		if claims.UserID != 0 {
			c.Set(ctxKeyUserID, claims.UserID)
		}
		c.Next()
	}
}

func currentUserID(c *gin.Context) uint {
	id, _ := c.Get(ctxKeyUserID)
	userID, _ := id.(uint)
	return userID
}

// Flash messages ride in a short-lived cookie and are consumed by the next
// page render.

func (h *Handlers) setFlash(c *gin.Context, kind, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(kind+"|"+message), 60, "/", "", false, true)
}

func (h *Handlers) popFlash(c *gin.Context) gin.H {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, found := strings.Cut(decoded, "|")
	if !found {
		return nil
	}
	return gin.H{"kind": kind, "message": message}
}
