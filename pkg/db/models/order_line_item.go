package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/enums"
)

// OrderLineItem snapshots one product entry inside an order. Quantity counts
// mirror the cylinder buckets handled at the dock: the plain quantity, empty
// returns, full deliveries, third-party cylinders, and plant allocations.
type OrderLineItem struct {
	ID              uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID         uuid.UUID           `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID       *uuid.UUID          `gorm:"column:product_id;type:uuid"`
	ProductName     string              `gorm:"column:product_name;not null"`
	Quantity        int                 `gorm:"column:quantity;not null;default:0"`
	EmptyCount      int                 `gorm:"column:empty_count;not null;default:0"`
	FullCount       int                 `gorm:"column:full_count;not null;default:0"`
	ThirdPartyCount int                 `gorm:"column:third_party_count;not null;default:0"`
	AllocationCount int                 `gorm:"column:allocation_count;not null;default:0"`
	VolumeM3        float64             `gorm:"column:volume_m3;not null;default:0"`
	DeliveryLabel   enums.DeliveryLabel `gorm:"column:delivery_label;type:text;not null;default:'delivery'"`
	CreatedAt       time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
