package handlers

import (
	"errors"
	"net/http"

	"hackhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"required"`
	RepoLink    string `form:"repo_link" binding:"required,max=255"`
	VideoLink   string `form:"video_link" binding:"required,max=255"`
}

func (h *Handlers) SubmissionPage(c *gin.Context) {
	userID := currentUserID(c)

	var sub models.Submission
	err := h.db.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"submission": nil, "flash": h.popFlash(c)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": sub, "flash": h.popFlash(c)})
}

// SubmitProject upserts the caller's single submission. The conflict target
// is the unique index on user_id, so two concurrent first submissions cannot
// both insert; the loser's write converges onto the same row.
func (h *Handlers) SubmitProject(c *gin.Context) {
	userID := currentUserID(c)

	var req SubmissionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.setFlash(c, "error", "All submission fields are required.")
		c.Redirect(http.StatusSeeOther, "/submit")
		return
	}

	sub := models.Submission{
		Title:       req.Title,
		Description: req.Description,
		RepoLink:    req.RepoLink,
		VideoLink:   req.VideoLink,
		UserID:      userID,
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "repo_link", "video_link", "updated_at"}),
	}).Create(&sub).Error
	if err != nil {
		h.setFlash(c, "error", "Could not save submission.")
		c.Redirect(http.StatusSeeOther, "/submit")
		return
	}

	h.setFlash(c, "success", "Submission saved!")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
