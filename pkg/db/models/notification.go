package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/enums"
)

// Notification stores in-app notification payloads scoped to clients.
type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID  uuid.UUID              `gorm:"column:client_id;type:uuid;not null;index"`
	Type      enums.NotificationType `gorm:"type:text;not null"`
	Title     string                 `gorm:"type:text;not null"`
	Message   string                 `gorm:"type:text;not null"`
	Link      *string                `gorm:"type:text"`
	ReadAt    *time.Time             `gorm:"type:timestamptz"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
}
