package clients

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// ClientDTO is the transport shape that omits credentials.
type ClientDTO struct {
	ID                uuid.UUID                 `json:"id"`
	Name              string                    `json:"name"`
	Email             string                    `json:"email"`
	TaxID             string                    `json:"tax_id"`
	Phone             *string                   `json:"phone,omitempty"`
	Company           *string                   `json:"company,omitempty"`
	Role              enums.UserRole            `json:"role"`
	Classification    *enums.BusinessLine       `json:"classification,omitempty"`
	AccountStatus     enums.AccountStatus       `json:"account_status"`
	ShippingAddresses types.ShippingAddressList `json:"shipping_addresses"`
	BillingAddress    *types.ShippingAddress    `json:"billing_address,omitempty"`
	Contract          *types.Agreement          `json:"contract,omitempty"`
	Policy            *types.Agreement          `json:"policy,omitempty"`
	WalletStatus      enums.AgreementStatus     `json:"wallet_status"`
	MinimumOrderNote  *string                   `json:"minimum_order_note,omitempty"`
	LastLoginAt       *time.Time                `json:"last_login_at,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// CreateClientDTO holds the data required by the repo to persist a new account.
type CreateClientDTO struct {
	Name              string
	Email             string
	PasswordHash      string
	TaxID             string
	Phone             *string
	Company           *string
	Role              enums.UserRole
	Classification    *enums.BusinessLine
	ShippingAddresses types.ShippingAddressList
}

func FromModel(c *models.Client) *ClientDTO {
	if c == nil {
		return nil
	}

	addresses := c.ShippingAddresses
	if addresses == nil {
		addresses = types.ShippingAddressList{}
	}

	return &ClientDTO{
		ID:                c.ID,
		Name:              c.Name,
		Email:             c.Email,
		TaxID:             c.TaxID,
		Phone:             c.Phone,
		Company:           c.Company,
		Role:              c.Role,
		Classification:    c.Classification,
		AccountStatus:     c.AccountStatus,
		ShippingAddresses: addresses,
		BillingAddress:    c.BillingAddress,
		Contract:          c.Contract,
		Policy:            c.Policy,
		WalletStatus:      c.WalletStatus,
		MinimumOrderNote:  c.MinimumOrderNote,
		LastLoginAt:       c.LastLoginAt,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func (c CreateClientDTO) ToModel() *models.Client {
	role := c.Role
	if !role.IsValid() {
		role = enums.UserRoleClient
	}

	addresses := c.ShippingAddresses
	if addresses == nil {
		addresses = types.ShippingAddressList{}
	}

	return &models.Client{
		ID:                uuid.New(),
		Name:              c.Name,
		Email:             c.Email,
		PasswordHash:      c.PasswordHash,
		TaxID:             c.TaxID,
		Phone:             c.Phone,
		Company:           c.Company,
		Role:              role,
		Classification:    c.Classification,
		AccountStatus:     enums.AccountStatusEnabled,
		ShippingAddresses: addresses,
		WalletStatus:      enums.AgreementStatusCurrent,
	}
}
