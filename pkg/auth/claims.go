package auth

import (
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	ClientID       uuid.UUID
	Email          string
	Name           string
	Role           enums.UserRole
	Classification *enums.BusinessLine
	ContractStatus *enums.AgreementStatus
	JTI            string
}

// AccessTokenClaims represents the typed JWT issued to callers. The
// principal is immutable for the token's lifetime; account changes take
// effect on the next login or refresh.
type AccessTokenClaims struct {
	ClientID       uuid.UUID              `json:"client_id"`
	Email          string                 `json:"email"`
	Name           string                 `json:"name"`
	Role           enums.UserRole         `json:"role"`
	Classification *enums.BusinessLine    `json:"classification,omitempty"`
	ContractStatus *enums.AgreementStatus `json:"contract_status,omitempty"`
	jwt.RegisteredClaims
}
