package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ShippingAddress is a delivery destination registered on a client account.
// Stored as jsonb; orders keep an immutable snapshot of the chosen address.
type ShippingAddress struct {
	ID         string  `json:"id,omitempty"`
	Label      string  `json:"label,omitempty"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	Department string  `json:"department,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    string  `json:"country"`
	Notes      *string `json:"notes,omitempty"`
}

// Validate checks the fields an order can be dispatched to.
func (a ShippingAddress) Validate() error {
	if strings.TrimSpace(a.Line1) == "" {
		return fmt.Errorf("address: missing line1")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("address: missing city")
	}
	return nil
}

// Value marshals the address into jsonb.
func (a ShippingAddress) Value() (driver.Value, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Country) == "" {
		a.Country = "CO"
	}
	encoded, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("address: marshal %w", err)
	}
	return string(encoded), nil
}

// Scan decodes the jsonb payload.
func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}

	raw, ok := toString(value)
	if !ok {
		return fmt.Errorf("address: unsupported scan type %T", value)
	}
	if strings.TrimSpace(raw) == "" {
		*a = ShippingAddress{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), a); err != nil {
		return fmt.Errorf("address: unmarshal %w", err)
	}
	if strings.TrimSpace(a.Country) == "" {
		a.Country = "CO"
	}
	return nil
}

// ShippingAddressList holds every destination registered on an account.
type ShippingAddressList []ShippingAddress

// Value marshals the list into jsonb.
func (l ShippingAddressList) Value() (driver.Value, error) {
	if l == nil {
		l = ShippingAddressList{}
	}
	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("address list: marshal %w", err)
	}
	return string(encoded), nil
}

// Scan decodes the jsonb payload.
func (l *ShippingAddressList) Scan(value interface{}) error {
	if value == nil {
		*l = ShippingAddressList{}
		return nil
	}

	raw, ok := toString(value)
	if !ok {
		return fmt.Errorf("address list: unsupported scan type %T", value)
	}
	if strings.TrimSpace(raw) == "" {
		*l = ShippingAddressList{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), l); err != nil {
		return fmt.Errorf("address list: unmarshal %w", err)
	}
	return nil
}

func toString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
