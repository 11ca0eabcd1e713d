package handlers

import (
	"hackhub/internal/config"
	"hackhub/internal/websocket"

	"gorm.io/gorm"
)

type Handlers struct {
	db     *gorm.DB
	hub    *websocket.Hub
	config *config.Config
}

func New(db *gorm.DB, hub *websocket.Hub, config *config.Config) *Handlers {
	return &Handlers{
		db:     db,
		hub:    hub,
		config: config,
	}
}
