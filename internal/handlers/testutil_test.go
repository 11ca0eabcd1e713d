package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"hackhub/internal/config"
	"hackhub/internal/database"
	"hackhub/internal/websocket"

	"github.com/gin-gonic/gin"
)

var testDBCounter atomic.Int64

func newTestRouter(t *testing.T) (*Handlers, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Shared-cache in-memory database so every pooled connection sees the
	// same tables.
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := database.Initialize(dsn)
	if err != nil {
		t.Fatalf("initialize database: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@hackathon.com",
		AdminPassword: "admin123",
		VAPIDKeys: &config.VAPIDKeys{
			PublicKey:  "test-public",
			PrivateKey: "test-private",
			Subject:    "mailto:test@example.com",
		},
	}

	h := New(db, hub, cfg)
	return h, SetupRouter(h)
}

func postForm(router *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getPage(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerForm(name, email, password, teamChoice string) url.Values {
	return url.Values{
		"name":        {name},
		"email":       {email},
		"phone":       {"5550100"},
		"college":     {"State College"},
		"password":    {password},
		"team_choice": {teamChoice},
	}
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

func flashMessageFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.Value != "" {
			// The wire value is escaped twice: once by setFlash and once by
			// gin's SetCookie, so undo both layers like popFlash does.
			decoded, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				t.Fatalf("undecodable flash cookie: %v", err)
			}
			decoded, err = url.QueryUnescape(decoded)
			if err != nil {
				t.Fatalf("undecodable flash cookie: %v", err)
			}
			return decoded
		}
	}
	return ""
}

// loginAs registers a teamless user and logs them in, returning the session
// cookie for follow-up requests.
func loginAs(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	t.Helper()

	w := postForm(router, "/register", registerForm("Test User", email, "secret123", "none"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("register returned %d, want %d", w.Code, http.StatusSeeOther)
	}

	w = postForm(router, "/login", url.Values{
		"email":    {email},
		"password": {"secret123"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("login returned %d -> %q, want redirect to /dashboard", w.Code, w.Header().Get("Location"))
	}
	return sessionCookieFrom(t, w)
}

func adminSession(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(router, "/admin/login", url.Values{
		"email":    {"admin@hackathon.com"},
		"password": {"admin123"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin/dashboard" {
		t.Fatalf("admin login returned %d -> %q, want redirect to /admin/dashboard", w.Code, w.Header().Get("Location"))
	}
	return sessionCookieFrom(t, w)
}
