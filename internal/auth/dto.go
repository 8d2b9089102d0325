package auth

import (
	"github.com/andeangas/gasline-backend/internal/clients"
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and account produced by a successful login.
type LoginResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	Client       *clients.ClientDTO `json:"client"`
}

// RefreshRequest carries the expired access token plus the refresh token to rotate.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest contains the payload required to onboard a new client account.
type RegisterRequest struct {
	Name           string                    `json:"name" validate:"required"`
	Email          string                    `json:"email" validate:"required,email"`
	Password       string                    `json:"password" validate:"required,min=8"`
	Company        *string                   `json:"company,omitempty"`
	Phone          *string                   `json:"phone,omitempty"`
	TaxID          string                    `json:"tax_id" validate:"required"`
	Classification enums.BusinessLine        `json:"classification" validate:"required"`
	Addresses      types.ShippingAddressList `json:"addresses,omitempty"`
}
