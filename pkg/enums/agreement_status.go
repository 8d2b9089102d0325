package enums

import (
	"fmt"
	"strings"
)

// AgreementStatus tracks client-side commercial documents such as the
// credit standing, supply contract, and insurance policy.
type AgreementStatus string

const (
	AgreementStatusCurrent  AgreementStatus = "current"
	AgreementStatusOverdue  AgreementStatus = "overdue"
	AgreementStatusExpired  AgreementStatus = "expired"
	AgreementStatusInactive AgreementStatus = "inactive"
)

var validAgreementStatuses = []AgreementStatus{
	AgreementStatusCurrent,
	AgreementStatusOverdue,
	AgreementStatusExpired,
	AgreementStatusInactive,
}

func (s AgreementStatus) String() string {
	return string(s)
}

func (s AgreementStatus) IsValid() bool {
	for _, candidate := range validAgreementStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseAgreementStatus converts raw input into an AgreementStatus.
func ParseAgreementStatus(value string) (AgreementStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validAgreementStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid agreement status %q", value)
}
