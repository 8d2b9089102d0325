package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/internal/clients"
	"github.com/andeangas/gasline-backend/pkg/db/models"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/types"
)

type clientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	UpdateShippingAddresses(ctx context.Context, id uuid.UUID, addresses types.ShippingAddressList) error
}

// Service exposes the account profile surface.
type Service interface {
	Get(ctx context.Context, clientID uuid.UUID) (*clients.ClientDTO, error)
	UpdateAddresses(ctx context.Context, clientID uuid.UUID, addresses types.ShippingAddressList) (*clients.ClientDTO, error)
}

type service struct {
	clients clientRepository
}

// NewService builds a profile service over the clients repository.
func NewService(repo clientRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("client repository required")
	}
	return &service{clients: repo}, nil
}

func (s *service) Get(ctx context.Context, clientID uuid.UUID) (*clients.ClientDTO, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("client")
		}
		return nil, pkgerrors.Internal(err, "loading client")
	}
	return clients.FromModel(client), nil
}

// UpdateAddresses replaces the registered address list. Entries keep their
// ids across updates; new entries get one assigned here so the caller can
// reference them when submitting orders.
func (s *service) UpdateAddresses(ctx context.Context, clientID uuid.UUID, addresses types.ShippingAddressList) (*clients.ClientDTO, error) {
	if addresses == nil {
		addresses = types.ShippingAddressList{}
	}
	for i := range addresses {
		if err := addresses[i].Validate(); err != nil {
			return nil, pkgerrors.Validation(err.Error())
		}
		if addresses[i].ID == "" {
			addresses[i].ID = uuid.NewString()
		}
	}

	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("client")
		}
		return nil, pkgerrors.Internal(err, "loading client")
	}

	if err := s.clients.UpdateShippingAddresses(ctx, clientID, addresses); err != nil {
		return nil, pkgerrors.Internal(err, "updating addresses")
	}
	client.ShippingAddresses = addresses
	return clients.FromModel(client), nil
}
