package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// Client is both the account identity and the commercial record of a
// customer. Admin operators are rows with role admin and no classification.
type Client struct {
	ID                 uuid.UUID                 `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name               string                    `gorm:"column:name;not null"`
	Email              string                    `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash       string                    `gorm:"column:password_hash;not null"`
	TaxID              string                    `gorm:"column:tax_id;not null;default:''"`
	Phone              *string                   `gorm:"column:phone"`
	Company            *string                   `gorm:"column:company"`
	Role               enums.UserRole            `gorm:"column:role;type:text;not null;default:'client'"`
	Classification     *enums.BusinessLine       `gorm:"column:classification;type:text"`
	AccountStatus      enums.AccountStatus       `gorm:"column:account_status;type:text;not null;default:'enabled'"`
	ShippingAddresses  types.ShippingAddressList `gorm:"column:shipping_addresses;type:jsonb;not null;default:'[]'"`
	BillingAddress     *types.ShippingAddress    `gorm:"column:billing_address;type:jsonb"`
	Contract           *types.Agreement          `gorm:"column:contract;type:jsonb"`
	Policy             *types.Agreement          `gorm:"column:policy;type:jsonb"`
	WalletStatus       enums.AgreementStatus     `gorm:"column:wallet_status;type:text;not null;default:'current'"`
	WalletBalanceCents int64                     `gorm:"column:wallet_balance_cents;not null;default:0"`
	MinimumOrderNote   *string                   `gorm:"column:minimum_order_note"`
	LastLoginAt        *time.Time                `gorm:"column:last_login_at"`
	CreatedAt          time.Time                 `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                 `gorm:"column:updated_at;autoUpdateTime"`
}
