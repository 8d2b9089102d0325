package enums

import (
	"fmt"
	"strings"
)

// DeliveryLabel tags an order for the logistics team. Orders carrying
// third-party cylinders split into a pickup leg and a delivery leg.
type DeliveryLabel string

const (
	DeliveryLabelStandard      DeliveryLabel = "delivery"
	DeliveryLabelPickupThird   DeliveryLabel = "pickup_third_party"
	DeliveryLabelDeliveryThird DeliveryLabel = "delivery_third_party"
)

var validDeliveryLabels = []DeliveryLabel{
	DeliveryLabelStandard,
	DeliveryLabelPickupThird,
	DeliveryLabelDeliveryThird,
}

func (l DeliveryLabel) String() string {
	return string(l)
}

func (l DeliveryLabel) IsValid() bool {
	for _, candidate := range validDeliveryLabels {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseDeliveryLabel converts raw input into a DeliveryLabel.
func ParseDeliveryLabel(value string) (DeliveryLabel, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validDeliveryLabels {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery label %q", value)
}
