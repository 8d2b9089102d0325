package clients

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// Repository exposes client-account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a clients repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the supplied transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new client and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateClientDTO) (*models.Client, error) {
	client := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// FindByEmail retrieves the client matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// FindByID loads a client by their UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListByRole returns every account carrying the provided role, newest first.
func (r *Repository) ListByRole(ctx context.Context, role enums.UserRole) ([]models.Client, error) {
	var out []models.Client
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateLastLogin refreshes the client's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// UpdateShippingAddresses overwrites the registered address list.
func (r *Repository) UpdateShippingAddresses(ctx context.Context, id uuid.UUID, addresses types.ShippingAddressList) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		UpdateColumn("shipping_addresses", addresses).Error
}

// UpdateAccountStatus flips the ordering gate for the account.
func (r *Repository) UpdateAccountStatus(ctx context.Context, id uuid.UUID, status enums.AccountStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		UpdateColumn("account_status", status).Error
}
