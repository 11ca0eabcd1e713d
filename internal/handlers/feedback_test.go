package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"hackhub/internal/models"
)

func TestFeedbackListedNewestFirst(t *testing.T) {
	_, router := newTestRouter(t)
	session := loginAs(t, router, "ann@x.com")

	for _, text := range []string{"first", "second", "third"} {
		w := postForm(router, "/feedback", url.Values{
			"text":   {text},
			"rating": {"5"},
		}, session)
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/feedback" {
			t.Fatalf("add feedback returned %d -> %q", w.Code, w.Header().Get("Location"))
		}
	}

	w := getPage(router, "/feedback", session)
	if w.Code != http.StatusOK {
		t.Fatalf("feedback page returned %d, want %d", w.Code, http.StatusOK)
	}

	var payload struct {
		Feedbacks []models.Feedback `json:"feedbacks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("undecodable feedback payload: %v", err)
	}
	if len(payload.Feedbacks) != 3 {
		t.Fatalf("expected 3 feedback entries, got %d", len(payload.Feedbacks))
	}

	want := []string{"third", "second", "first"}
	for i, fb := range payload.Feedbacks {
		if fb.Text != want[i] {
			t.Fatalf("feedback[%d] = %q, want %q", i, fb.Text, want[i])
		}
	}
}

func TestFeedbackRatingAcceptedAsFreeText(t *testing.T) {
	h, router := newTestRouter(t)
	session := loginAs(t, router, "ann@x.com")

	w := postForm(router, "/feedback", url.Values{
		"text":   {"loved it"},
		"rating": {"great"},
	}, session)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("free-text rating rejected with %d", w.Code)
	}

	var fb models.Feedback
	if err := h.db.First(&fb).Error; err != nil {
		t.Fatalf("feedback lookup failed: %v", err)
	}
	if fb.Rating != "great" {
		t.Fatalf("rating stored as %q, want %q", fb.Rating, "great")
	}
}

func TestFeedbackScopedToUser(t *testing.T) {
	_, router := newTestRouter(t)

	annSession := loginAs(t, router, "ann@x.com")
	benSession := loginAs(t, router, "ben@x.com")

	postForm(router, "/feedback", url.Values{"text": {"from ann"}, "rating": {"5"}}, annSession)

	w := getPage(router, "/feedback", benSession)
	var payload struct {
		Feedbacks []models.Feedback `json:"feedbacks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("undecodable feedback payload: %v", err)
	}
	if len(payload.Feedbacks) != 0 {
		t.Fatalf("ben sees %d entries, want 0", len(payload.Feedbacks))
	}
}
