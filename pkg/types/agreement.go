package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Agreement captures a commercial document attached to a client account,
// such as the supply contract or the insurance policy. Stored as jsonb.
type Agreement struct {
	Status    string     `json:"status"`
	Reference *string    `json:"reference,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Value marshals the agreement into jsonb.
func (g Agreement) Value() (driver.Value, error) {
	encoded, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("agreement: marshal %w", err)
	}
	return string(encoded), nil
}

// Scan decodes the jsonb payload.
func (g *Agreement) Scan(value interface{}) error {
	if value == nil {
		*g = Agreement{}
		return nil
	}

	raw, ok := toString(value)
	if !ok {
		return fmt.Errorf("agreement: unsupported scan type %T", value)
	}
	if strings.TrimSpace(raw) == "" {
		*g = Agreement{}
		return nil
	}
	if err := json.Unmarshal([]byte(raw), g); err != nil {
		return fmt.Errorf("agreement: unmarshal %w", err)
	}
	return nil
}
