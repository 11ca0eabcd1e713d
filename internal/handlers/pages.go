package handlers

import (
	"net/http"

	"hackhub/internal/errs"
	"hackhub/internal/models"

	"github.com/gin-gonic/gin"
)

// Home is the landing page payload: sponsors plus the live feeds.
func (h *Handlers) Home(c *gin.Context) {
	if err := h.ensureSponsorsSeeded(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	var sponsors []models.Sponsor
	h.db.Find(&sponsors)

	var updates []models.LiveUpdate
	h.db.Order("id DESC").Find(&updates)

	var notifications []models.Notification
	h.db.Order("id DESC").Find(&notifications)

	c.JSON(http.StatusOK, gin.H{
		"sponsors":      sponsors,
		"live_updates":  updates,
		"notifications": notifications,
		"flash":         h.popFlash(c),
	})
}

// Dashboard assembles the authenticated summary view: the caller, their team
// and roster, their submission, sponsors and both feeds.
func (h *Handlers) Dashboard(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		h.clearSession(c)
		h.setFlash(c, "error", errs.ErrUnauthenticated.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var team *models.Team
	var roster []models.User
	if user.TeamID != nil {
		var t models.Team
		if err := h.db.First(&t, *user.TeamID).Error; err == nil {
			team = &t
			h.db.Where("team_id = ?", t.ID).Find(&roster)
		}
	}

	var submission *models.Submission
	var sub models.Submission
	if err := h.db.Where("user_id = ?", user.ID).First(&sub).Error; err == nil {
		submission = &sub
	}

	if err := h.ensureSponsorsSeeded(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	var sponsors []models.Sponsor
	h.db.Find(&sponsors)

	var updates []models.LiveUpdate
	h.db.Order("id DESC").Find(&updates)

	var notifications []models.Notification
	h.db.Order("id DESC").Find(&notifications)

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"team":          team,
		"team_members":  roster,
		"submission":    submission,
		"sponsors":      sponsors,
		"live_updates":  updates,
		"notifications": notifications,
		"flash":         h.popFlash(c),
	})
}

var faqEntries = []gin.H{
	{"question": "How do I form a team?", "answer": "Pick \"create\" during registration, or \"join\" with the 6-character invite code a teammate shares with you."},
	{"question": "How many submissions can I make?", "answer": "One per participant. Saving again overwrites your previous entry."},
	{"question": "Where do live updates appear?", "answer": "On the dashboard, newest first. Keep it open during the event."},
}

func (h *Handlers) FAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faq": faqEntries})
}
