package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"hackhub/internal/models"
)

func TestAdminRoutesRedirectWithoutFlag(t *testing.T) {
	h, router := newTestRouter(t)

	// A plain participant session must not pass the admin gate either.
	session := loginAs(t, router, "ann@x.com")

	checks := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodPost, "/admin/add_update"},
		{http.MethodPost, "/admin/add_notification"},
		{http.MethodGet, "/admin/delete_update/1"},
		{http.MethodGet, "/admin/delete_notification/1"},
		{http.MethodGet, "/admin/teams"},
	}

	for _, check := range checks {
		var code int
		var location string
		if check.method == http.MethodPost {
			w := postForm(router, check.path, url.Values{"text": {"sneaky"}}, session)
			code, location = w.Code, w.Header().Get("Location")
		} else {
			w := getPage(router, check.path, session)
			code, location = w.Code, w.Header().Get("Location")
		}
		if code != http.StatusSeeOther || location != "/admin/login" {
			t.Fatalf("%s %s returned %d -> %q, want redirect to /admin/login", check.method, check.path, code, location)
		}
	}

	var updates, notifications int64
	h.db.Model(&models.LiveUpdate{}).Count(&updates)
	h.db.Model(&models.Notification{}).Count(&notifications)
	if updates != 0 || notifications != 0 {
		t.Fatalf("gated endpoints mutated state: %d updates, %d notifications", updates, notifications)
	}
}

func TestAdminLoginRejectsWrongCredentials(t *testing.T) {
	_, router := newTestRouter(t)

	w := postForm(router, "/admin/login", url.Values{
		"email":    {"admin@hackathon.com"},
		"password": {"nope"},
	})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin/login" {
		t.Fatalf("bad admin login returned %d -> %q, want redirect to /admin/login", w.Code, w.Header().Get("Location"))
	}
	if flash := flashMessageFrom(t, w); !strings.Contains(flash, "Invalid admin credentials") {
		t.Fatalf("expected invalid-admin-credentials flash, got %q", flash)
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			t.Fatalf("session cookie issued on failed admin login")
		}
	}
}

func TestAdminUpdateAndNotificationLifecycle(t *testing.T) {
	h, router := newTestRouter(t)
	admin := adminSession(t, router)

	w := postForm(router, "/admin/add_update", url.Values{"text": {"Lunch at noon"}}, admin)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin/dashboard" {
		t.Fatalf("add_update returned %d -> %q", w.Code, w.Header().Get("Location"))
	}
	w = postForm(router, "/admin/add_notification", url.Values{"text": {"Submissions close 6pm"}}, admin)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("add_notification returned %d", w.Code)
	}

	var update models.LiveUpdate
	if err := h.db.First(&update).Error; err != nil {
		t.Fatalf("update lookup failed: %v", err)
	}
	var notification models.Notification
	if err := h.db.First(&notification).Error; err != nil {
		t.Fatalf("notification lookup failed: %v", err)
	}

	w = getPage(router, "/admin/delete_update/"+itoa(update.ID), admin)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete_update returned %d", w.Code)
	}
	var count int64
	h.db.Model(&models.LiveUpdate{}).Count(&count)
	if count != 0 {
		t.Fatalf("update not deleted, %d rows remain", count)
	}

	w = getPage(router, "/admin/delete_notification/"+itoa(notification.ID), admin)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete_notification returned %d", w.Code)
	}
	h.db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Fatalf("notification not deleted, %d rows remain", count)
	}
}

func TestAdminDeleteMissingIDReportsNotFound(t *testing.T) {
	_, router := newTestRouter(t)
	admin := adminSession(t, router)

	w := getPage(router, "/admin/delete_update/9999", admin)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/admin/dashboard" {
		t.Fatalf("delete of missing id returned %d -> %q", w.Code, w.Header().Get("Location"))
	}
	if flash := flashMessageFrom(t, w); !strings.Contains(flash, "not found") {
		t.Fatalf("expected not-found flash, got %q", flash)
	}
}

func TestAdminLogoutKeepsParticipantSession(t *testing.T) {
	_, router := newTestRouter(t)

	session := loginAs(t, router, "ann@x.com")

	// Elevate the existing participant session.
	w := postForm(router, "/admin/login", url.Values{
		"email":    {"admin@hackathon.com"},
		"password": {"admin123"},
	}, session)
	elevated := sessionCookieFrom(t, w)

	if w := getPage(router, "/admin/dashboard", elevated); w.Code != http.StatusOK {
		t.Fatalf("admin dashboard with elevated session returned %d", w.Code)
	}

	w = getPage(router, "/admin/logout", elevated)
	demoted := sessionCookieFrom(t, w)

	if w := getPage(router, "/admin/dashboard", demoted); w.Code != http.StatusSeeOther {
		t.Fatalf("admin dashboard after admin logout returned %d, want redirect", w.Code)
	}
	if w := getPage(router, "/dashboard", demoted); w.Code != http.StatusOK {
		t.Fatalf("participant dashboard after admin logout returned %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAdminTeamsListsRosters(t *testing.T) {
	_, router := newTestRouter(t)

	postForm(router, "/register", registerForm("Ann Lee", "ann@x.com", "secret123", "create"))
	admin := adminSession(t, router)

	w := getPage(router, "/admin/teams", admin)
	if w.Code != http.StatusOK {
		t.Fatalf("admin teams returned %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Team-Ann") {
		t.Fatalf("admin teams payload missing Team-Ann: %s", w.Body.String())
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
