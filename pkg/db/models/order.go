package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// Order is a client's request for cylinders or bulk gas. Orders born from a
// third-party split share a PairID so the pickup and delivery legs can be
// correlated.
type Order struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClientID        uuid.UUID             `gorm:"column:client_id;type:uuid;not null;index"`
	ContactEmail    string                `gorm:"column:contact_email;not null"`
	ShippingAddress types.ShippingAddress `gorm:"column:shipping_address;type:jsonb;not null"`
	RequesterName   string                `gorm:"column:requester_name;not null"`
	RequesterPhone  string                `gorm:"column:requester_phone;not null"`
	Notes           *string               `gorm:"column:notes"`
	Status          enums.OrderStatus     `gorm:"column:status;type:text;not null;default:'pending'"`
	Classification  enums.BusinessLine    `gorm:"column:classification;type:text;not null"`
	PairID          *uuid.UUID            `gorm:"column:pair_id;type:uuid;index"`
	Items           []OrderLineItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
