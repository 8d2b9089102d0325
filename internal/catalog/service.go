package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
)

// Service exposes catalog reads plus the admin product management surface.
type Service interface {
	List(ctx context.Context, input ListInput) ([]ProductDTO, error)
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	Deactivate(ctx context.Context, productID uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service over the given repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]ProductDTO, error) {
	if !input.BusinessLine.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("unknown business line %q", input.BusinessLine))
	}

	products, err := s.repo.ListByBusinessLine(ctx, input.BusinessLine, input.IncludeInactive)
	if err != nil {
		return nil, pkgerrors.Internal(err, "listing catalog")
	}

	out := make([]ProductDTO, 0, len(products))
	for i := range products {
		out = append(out, productFromModel(&products[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         strings.TrimSpace(input.Name),
		UnitVolumeM3: input.UnitVolumeM3,
		Type:         strings.TrimSpace(input.Type),
		BusinessLine: input.BusinessLine,
		Status:       enums.ProductStatusActive,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, pkgerrors.Internal(err, "creating product")
	}
	dto := productFromModel(created)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, productID uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("product")
		}
		return nil, pkgerrors.Internal(err, "loading product")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.Validation("product name cannot be empty")
		}
		product.Name = name
	}
	if input.UnitVolumeM3 != nil {
		if *input.UnitVolumeM3 < 0 {
			return nil, pkgerrors.Validation("unit volume cannot be negative")
		}
		product.UnitVolumeM3 = *input.UnitVolumeM3
	}
	if input.Type != nil {
		product.Type = strings.TrimSpace(*input.Type)
	}
	if input.BusinessLine != nil {
		if !input.BusinessLine.IsValid() {
			return nil, pkgerrors.Validation(fmt.Sprintf("unknown business line %q", *input.BusinessLine))
		}
		product.BusinessLine = *input.BusinessLine
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.Validation(fmt.Sprintf("unknown product status %q", *input.Status))
		}
		product.Status = *input.Status
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, pkgerrors.Internal(err, "updating product")
	}
	dto := productFromModel(updated)
	return &dto, nil
}

// Deactivate retires a product from the catalog. Existing order line items
// keep their snapshots, so the row is never deleted.
func (s *service) Deactivate(ctx context.Context, productID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.NotFound("product")
		}
		return pkgerrors.Internal(err, "loading product")
	}
	if err := s.repo.SetStatus(ctx, productID, enums.ProductStatusInactive); err != nil {
		return pkgerrors.Internal(err, "deactivating product")
	}
	return nil
}

func validateCreate(input CreateProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.Validation("product name is required")
	}
	if input.UnitVolumeM3 < 0 {
		return pkgerrors.Validation("unit volume cannot be negative")
	}
	if !input.BusinessLine.IsValid() {
		return pkgerrors.Validation(fmt.Sprintf("unknown business line %q", input.BusinessLine))
	}
	return nil
}
