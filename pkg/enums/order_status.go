package enums

import (
	"fmt"
	"strings"
)

// OrderStatus is the lifecycle state of a gas order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusVerifying      OrderStatus = "verifying"
	OrderStatusInProduction   OrderStatus = "in_production"
	OrderStatusInDistribution OrderStatus = "in_distribution"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderStatusSequence is the linear progression; cancelled sits outside it.
var orderStatusSequence = []OrderStatus{
	OrderStatusPending,
	OrderStatusVerifying,
	OrderStatusInProduction,
	OrderStatusInDistribution,
	OrderStatusCompleted,
}

var validOrderStatuses = append(append([]OrderStatus{}, orderStatusSequence...), OrderStatusCancelled)

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// StepIndex returns the zero-based position of the status within the linear
// progression, or -1 for cancelled and unrecognized values.
func (s OrderStatus) StepIndex() int {
	for i, candidate := range orderStatusSequence {
		if candidate == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsActive reports whether the order still moves through the pipeline.
func (s OrderStatus) IsActive() bool {
	idx := s.StepIndex()
	return idx >= 0 && s != OrderStatusCompleted
}

// CanTransitionTo enforces the forward-only lifecycle. Any non-terminal
// status may move to the next sequence step or to cancelled; nothing may
// move backwards, skip steps, or leave a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	return next.StepIndex() == s.StepIndex()+1
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validOrderStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
