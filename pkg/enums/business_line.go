package enums

import (
	"fmt"
	"strings"
)

// BusinessLine groups catalog products and classifies clients/orders.
type BusinessLine string

const (
	BusinessLineMedicinal           BusinessLine = "medicinal"
	BusinessLineOtherGases          BusinessLine = "other_gases"
	BusinessLineNetworksMaintenance BusinessLine = "networks_maintenance"
	BusinessLineIndustrial          BusinessLine = "industrial"
	BusinessLineBiomedicalEquipment BusinessLine = "biomedical_equipment"
)

var validBusinessLines = []BusinessLine{
	BusinessLineMedicinal,
	BusinessLineOtherGases,
	BusinessLineNetworksMaintenance,
	BusinessLineIndustrial,
	BusinessLineBiomedicalEquipment,
}

// String implements fmt.Stringer.
func (b BusinessLine) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BusinessLine.
func (b BusinessLine) IsValid() bool {
	for _, candidate := range validBusinessLines {
		if candidate == b {
			return true
		}
	}
	return false
}

// IsMedicinal compares against the medicinal line case-insensitively.
func (b BusinessLine) IsMedicinal() bool {
	return strings.EqualFold(string(b), string(BusinessLineMedicinal))
}

// ParseBusinessLine converts raw input into a BusinessLine.
func ParseBusinessLine(value string) (BusinessLine, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validBusinessLines {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid business line %q", value)
}

// ClientClassifications returns the lines a client account may be assigned.
// Only the two primary lines classify accounts; the remaining lines exist as
// catalog groupings for secondary order surfaces.
func ClientClassifications() []BusinessLine {
	return []BusinessLine{BusinessLineMedicinal, BusinessLineIndustrial}
}

// IsClientClassification reports whether the line may classify a client.
func (b BusinessLine) IsClientClassification() bool {
	for _, candidate := range ClientClassifications() {
		if candidate == b {
			return true
		}
	}
	return false
}
