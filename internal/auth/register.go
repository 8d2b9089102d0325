package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/internal/clients"
	"github.com/andeangas/gasline-backend/pkg/config"
	"github.com/andeangas/gasline-backend/pkg/db"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/security"
)

// RegisterService handles the onboarding transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*clients.ClientDTO, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*clients.ClientDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.Validation("email is required")
	}
	if !isClientClassification(req.Classification) {
		return nil, pkgerrors.Validation("classification must be medicinal or industrial")
	}
	for _, address := range req.Addresses {
		if err := address.Validate(); err != nil {
			return nil, pkgerrors.Validation(err.Error())
		}
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var dto *clients.ClientDTO
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := clients.NewRepository(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check client email")
		}

		classification := req.Classification
		created, err := repo.Create(ctx, clients.CreateClientDTO{
			Name:              strings.TrimSpace(req.Name),
			Email:             email,
			PasswordHash:      passwordHash,
			TaxID:             strings.TrimSpace(req.TaxID),
			Phone:             req.Phone,
			Company:           req.Company,
			Role:              enums.UserRoleClient,
			Classification:    &classification,
			ShippingAddresses: req.Addresses,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_clients_email") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create client")
		}

		dto = clients.FromModel(created)
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return dto, nil
}

func isClientClassification(line enums.BusinessLine) bool {
	for _, candidate := range enums.ClientClassifications() {
		if candidate == line {
			return true
		}
	}
	return false
}
