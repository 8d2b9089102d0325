package enums

import (
	"fmt"
	"strings"
)

// AccountStatus gates whether a client may place orders.
type AccountStatus string

const (
	AccountStatusEnabled  AccountStatus = "enabled"
	AccountStatusDisabled AccountStatus = "disabled"
	AccountStatusFrozen   AccountStatus = "frozen"
)

var validAccountStatuses = []AccountStatus{
	AccountStatusEnabled,
	AccountStatusDisabled,
	AccountStatusFrozen,
}

func (s AccountStatus) String() string {
	return string(s)
}

func (s AccountStatus) IsValid() bool {
	for _, candidate := range validAccountStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanOrder reports whether the account may submit new orders.
func (s AccountStatus) CanOrder() bool {
	return s == AccountStatusEnabled
}

// ParseAccountStatus converts raw input into an AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validAccountStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account status %q", value)
}
