package handlers

import (
	"net/http"

	"hackhub/internal/models"

	"github.com/gin-gonic/gin"
)

type FeedbackRequest struct {
	Text   string `form:"text" binding:"required"`
	Rating string `form:"rating" binding:"required,max=10"`
}

func (h *Handlers) FeedbackPage(c *gin.Context) {
	userID := currentUserID(c)

	var feedbacks []models.Feedback
	if err := h.db.Where("user_id = ?", userID).Order("id DESC").Find(&feedbacks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks, "flash": h.popFlash(c)})
}

// AddFeedback appends an entry. Rating is accepted as-is; the original form
// never constrained it to a scale.
func (h *Handlers) AddFeedback(c *gin.Context) {
	userID := currentUserID(c)

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		h.setFlash(c, "error", "Feedback text and rating are required.")
		c.Redirect(http.StatusSeeOther, "/feedback")
		return
	}

	fb := models.Feedback{
		Text:   req.Text,
		Rating: req.Rating,
		UserID: &userID,
	}
	if err := h.db.Create(&fb).Error; err != nil {
		h.setFlash(c, "error", "Could not save feedback.")
		c.Redirect(http.StatusSeeOther, "/feedback")
		return
	}

	h.setFlash(c, "success", "Feedback submitted!")
	c.Redirect(http.StatusSeeOther, "/feedback")
}
