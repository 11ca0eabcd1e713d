package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"hackhub/internal/models"
	ws "hackhub/internal/websocket"

	"github.com/gin-gonic/gin"
)

type AdminLoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handlers) AdminLoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flash": h.popFlash(c)})
}

// AdminLogin checks the configured credential pair in constant time and, on
// success, adds the signed admin claim to the session. A participant identity
// already in the session is preserved.
func (h *Handlers) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.setFlash(c, "error", "Invalid admin credentials!")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.config.AdminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.config.AdminPassword))
	if emailOK&passwordOK != 1 {
		h.setFlash(c, "error", "Invalid admin credentials!")
		c.Redirect(http.StatusSeeOther, "/admin/login")
		return
	}

	var userID uint
	if claims := h.sessionClaims(c); claims != nil {
		userID = claims.UserID
	}
	h.issueSession(c, userID, true)

	h.setFlash(c, "success", "Admin login successful!")
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// AdminLogout drops only the admin claim; a participant session survives.
func (h *Handlers) AdminLogout(c *gin.Context) {
	var userID uint
	if claims := h.sessionClaims(c); claims != nil {
		userID = claims.UserID
	}
	if userID != 0 {
		h.issueSession(c, userID, false)
	} else {
		h.clearSession(c)
	}

	h.setFlash(c, "info", "Admin logged out.")
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (h *Handlers) AdminDashboard(c *gin.Context) {
	var updates []models.LiveUpdate
	h.db.Order("id DESC").Find(&updates)

	var notifications []models.Notification
	h.db.Order("id DESC").Find(&notifications)

	c.JSON(http.StatusOK, gin.H{
		"updates":       updates,
		"notifications": notifications,
		"flash":         h.popFlash(c),
	})
}

func (h *Handlers) AddLiveUpdate(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		h.setFlash(c, "error", "Update text is required.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	update := models.LiveUpdate{Text: text}
	if err := h.db.Create(&update).Error; err != nil {
		h.setFlash(c, "error", "Could not save update.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	h.hub.Publish(ws.Event{Type: "live_update", ID: update.ID, Text: update.Text})

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (h *Handlers) AddNotification(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		h.setFlash(c, "error", "Notification text is required.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	notification := models.Notification{Text: text}
	if err := h.db.Create(&notification).Error; err != nil {
		h.setFlash(c, "error", "Could not save notification.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	h.hub.Publish(ws.Event{Type: "notification", ID: notification.ID, Text: notification.Text})
	go h.pushToAllSubscribers("Hackathon notification", notification.Text)

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// DeleteLiveUpdate removes an update by id. A missing id is reported, not
// silently swallowed.
func (h *Handlers) DeleteLiveUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.setFlash(c, "error", "Invalid update id.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	result := h.db.Delete(&models.LiveUpdate{}, id)
	if result.Error != nil {
		h.setFlash(c, "error", "Could not delete update.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	if result.RowsAffected == 0 {
		h.setFlash(c, "error", "Update not found.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	h.hub.Publish(ws.Event{Type: "live_update_deleted", ID: uint(id)})

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

func (h *Handlers) DeleteNotification(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.setFlash(c, "error", "Invalid notification id.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	result := h.db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		h.setFlash(c, "error", "Could not delete notification.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}
	if result.RowsAffected == 0 {
		h.setFlash(c, "error", "Notification not found.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	h.hub.Publish(ws.Event{Type: "notification_deleted", ID: uint(id)})

	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// AdminTeams is the read-only oversight dump: every team with its roster.
func (h *Handlers) AdminTeams(c *gin.Context) {
	var teams []models.Team
	if err := h.db.Preload("Members").Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}
