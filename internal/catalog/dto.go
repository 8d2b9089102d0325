package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
)

// ProductDTO is the transport shape of one catalog entry.
type ProductDTO struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	UnitVolumeM3 float64             `json:"unit_volume_m3"`
	Type         string              `json:"type"`
	BusinessLine enums.BusinessLine  `json:"business_line"`
	Status       enums.ProductStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name         string             `json:"name" validate:"required"`
	UnitVolumeM3 float64            `json:"unit_volume_m3" validate:"gt=0"`
	Type         string             `json:"type" validate:"required"`
	BusinessLine enums.BusinessLine `json:"business_line" validate:"required"`
}

// UpdateProductInput carries optional field updates. Nil means unchanged.
type UpdateProductInput struct {
	Name         *string              `json:"name,omitempty"`
	UnitVolumeM3 *float64             `json:"unit_volume_m3,omitempty"`
	Type         *string              `json:"type,omitempty"`
	BusinessLine *enums.BusinessLine  `json:"business_line,omitempty"`
	Status       *enums.ProductStatus `json:"status,omitempty"`
}

// ListInput scopes a catalog read to one business line.
type ListInput struct {
	BusinessLine    enums.BusinessLine
	IncludeInactive bool
}

func productFromModel(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		UnitVolumeM3: p.UnitVolumeM3,
		Type:         p.Type,
		BusinessLine: p.BusinessLine,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
