package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/enums"
)

// Product is a catalog entry for a gas or related service line.
type Product struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string              `gorm:"column:name;not null"`
	UnitVolumeM3 float64             `gorm:"column:unit_volume_m3;not null;default:0"`
	Type         string              `gorm:"column:type;not null;default:''"`
	BusinessLine enums.BusinessLine  `gorm:"column:business_line;type:text;not null"`
	Status       enums.ProductStatus `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
