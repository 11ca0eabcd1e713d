package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hackhub/internal/models"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PushSubscribeKeys struct {
	P256DH string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

type PushSubscribeRequest struct {
	Endpoint string            `json:"endpoint" binding:"required"`
	Keys     PushSubscribeKeys `json:"keys" binding:"required"`
}

func (h *Handlers) GetVAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publicKey": h.config.VAPIDKeys.PublicKey})
}

// SubscribePush stores the caller's browser push subscription, replacing any
// previous one so each user carries at most a single endpoint.
func (h *Handlers) SubscribePush(c *gin.Context) {
	userID := currentUserID(c)

	var req PushSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Where("user_id = ?", userID).Delete(&models.PushSubscription{}).Error; err != nil {
		slog.Default().Warn("failed to drop old push subscriptions", "user_id", userID, "error", err)
	}

	subscription := models.PushSubscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256DH:   req.Keys.P256DH,
		Auth:     req.Keys.Auth,
	}
	if err := h.db.Create(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subscription"})
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

func (h *Handlers) UnsubscribePush(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Endpoint string `json:"endpoint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var subscription models.PushSubscription
	if err := h.db.Where("user_id = ? AND endpoint = ?", userID, req.Endpoint).First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	if err := h.db.Delete(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unsubscribed"})
}

// pushToAllSubscribers fans a notification out to every stored subscription.
// Endpoints that have gone stale (404/410 from the push service) are removed.
func (h *Handlers) pushToAllSubscribers(title, body string) {
	var subscriptions []models.PushSubscription
	if err := h.db.Find(&subscriptions).Error; err != nil {
		slog.Default().Error("failed to load push subscriptions", "error", err)
		return
	}

	payload, err := json.Marshal(gin.H{"title": title, "body": body})
	if err != nil {
		return
	}

	for _, sub := range subscriptions {
		s := &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256DH,
				Auth:   sub.Auth,
			},
		}

		resp, err := webpush.SendNotification(payload, s, &webpush.Options{
			Subscriber:      h.config.VAPIDKeys.Subject,
			VAPIDPublicKey:  h.config.VAPIDKeys.PublicKey,
			VAPIDPrivateKey: h.config.VAPIDKeys.PrivateKey,
			TTL:             3600,
		})
		if err != nil {
			slog.Default().Warn("push send failed", "user_id", sub.UserID, "error", err)
			continue
		}
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			h.db.Delete(&models.PushSubscription{}, sub.ID)
		}
		resp.Body.Close()
	}
}
