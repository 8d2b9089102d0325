package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	"github.com/andeangas/gasline-backend/pkg/types"
)

// SubmitLineInput carries one product entry of an incoming order. The counts
// mirror the cylinder buckets recorded at the dock.
type SubmitLineInput struct {
	ProductID       uuid.UUID
	Quantity        int
	EmptyCount      int
	FullCount       int
	ThirdPartyCount int
	AllocationCount int
}

// SubmitOrderInput is everything the service needs to write an order.
type SubmitOrderInput struct {
	ClientID       uuid.UUID
	ContactEmail   string
	Address        types.ShippingAddress
	RequesterName  string
	RequesterPhone string
	Notes          *string
	Classification *enums.BusinessLine
	Lines          []SubmitLineInput
}

// LineItemDTO is the transport shape of a persisted line item.
type LineItemDTO struct {
	ID              uuid.UUID           `json:"id"`
	ProductID       *uuid.UUID          `json:"product_id,omitempty"`
	ProductName     string              `json:"product_name"`
	Quantity        int                 `json:"quantity"`
	EmptyCount      int                 `json:"empty_count"`
	FullCount       int                 `json:"full_count"`
	ThirdPartyCount int                 `json:"third_party_count"`
	AllocationCount int                 `json:"allocation_count"`
	VolumeM3        float64             `json:"volume_m3"`
	DeliveryLabel   enums.DeliveryLabel `json:"delivery_label"`
}

// OrderDetail is the full transport shape of one order.
type OrderDetail struct {
	ID              uuid.UUID             `json:"id"`
	ClientID        uuid.UUID             `json:"client_id"`
	ContactEmail    string                `json:"contact_email"`
	ShippingAddress types.ShippingAddress `json:"shipping_address"`
	RequesterName   string                `json:"requester_name"`
	RequesterPhone  string                `json:"requester_phone"`
	Notes           *string               `json:"notes,omitempty"`
	Status          enums.OrderStatus     `json:"status"`
	StepIndex       int                   `json:"step_index"`
	Classification  enums.BusinessLine    `json:"classification"`
	PairID          *uuid.UUID            `json:"pair_id,omitempty"`
	Items           []LineItemDTO         `json:"items"`
	TotalVolumeM3   float64               `json:"total_volume_m3"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// OrderSummary is the condensed list shape.
type OrderSummary struct {
	ID             uuid.UUID          `json:"id"`
	Status         enums.OrderStatus  `json:"status"`
	StepIndex      int                `json:"step_index"`
	Classification enums.BusinessLine `json:"classification"`
	PairID         *uuid.UUID         `json:"pair_id,omitempty"`
	ItemCount      int                `json:"item_count"`
	TotalVolumeM3  float64            `json:"total_volume_m3"`
	CreatedAt      time.Time          `json:"created_at"`
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []OrderSummary `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// SubmitResult reports the persisted order, or both legs of a split pair.
type SubmitResult struct {
	Orders []OrderDetail `json:"orders"`
}

func detailFromModel(order *models.Order) OrderDetail {
	detail := OrderDetail{
		ID:              order.ID,
		ClientID:        order.ClientID,
		ContactEmail:    order.ContactEmail,
		ShippingAddress: order.ShippingAddress,
		RequesterName:   order.RequesterName,
		RequesterPhone:  order.RequesterPhone,
		Notes:           order.Notes,
		Status:          order.Status,
		StepIndex:       order.Status.StepIndex(),
		Classification:  order.Classification,
		PairID:          order.PairID,
		Items:           make([]LineItemDTO, 0, len(order.Items)),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	for _, item := range order.Items {
		detail.Items = append(detail.Items, LineItemDTO{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			EmptyCount:      item.EmptyCount,
			FullCount:       item.FullCount,
			ThirdPartyCount: item.ThirdPartyCount,
			AllocationCount: item.AllocationCount,
			VolumeM3:        item.VolumeM3,
			DeliveryLabel:   item.DeliveryLabel,
		})
		detail.TotalVolumeM3 += item.VolumeM3
	}
	return detail
}

// SummaryFromModel condenses an order for list and dashboard surfaces.
func SummaryFromModel(order *models.Order) OrderSummary {
	summary := OrderSummary{
		ID:             order.ID,
		Status:         order.Status,
		StepIndex:      order.Status.StepIndex(),
		Classification: order.Classification,
		PairID:         order.PairID,
		ItemCount:      len(order.Items),
		CreatedAt:      order.CreatedAt,
	}
	for _, item := range order.Items {
		summary.TotalVolumeM3 += item.VolumeM3
	}
	return summary
}
