package handlers

import (
	"net/http"

	"hackhub/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ensureSponsorsSeeded inserts the fixed sponsor set the first time any
// sponsor-displaying page is hit. The count check runs inside a transaction
// so two concurrent first hits cannot double-seed.
func (h *Handlers) ensureSponsorsSeeded() error {
	return h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Sponsor{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		seed := models.SeedSponsors()
		return tx.Create(&seed).Error
	})
}

func (h *Handlers) Sponsors(c *gin.Context) {
	if err := h.ensureSponsorsSeeded(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	var sponsors []models.Sponsor
	if err := h.db.Find(&sponsors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sponsors": sponsors})
}
