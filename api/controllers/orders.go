package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/api/middleware"
	"github.com/andeangas/gasline-backend/api/responses"
	"github.com/andeangas/gasline-backend/api/validators"
	internalorders "github.com/andeangas/gasline-backend/internal/orders"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/logger"
	"github.com/andeangas/gasline-backend/pkg/pagination"
	"github.com/andeangas/gasline-backend/pkg/types"
)

type submitOrderLine struct {
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"min=0"`
	EmptyCount      int       `json:"empty_count" validate:"min=0"`
	FullCount       int       `json:"full_count" validate:"min=0"`
	ThirdPartyCount int       `json:"third_party_count" validate:"min=0"`
	AllocationCount int       `json:"allocation_count" validate:"min=0"`
}

type submitOrderRequest struct {
	ContactEmail   string                `json:"contact_email" validate:"required,email"`
	Address        types.ShippingAddress `json:"address" validate:"required"`
	RequesterName  string                `json:"requester_name" validate:"required"`
	RequesterPhone string                `json:"requester_phone" validate:"required"`
	Notes          *string               `json:"notes,omitempty"`
	Classification *enums.BusinessLine   `json:"classification,omitempty"`
	Lines          []submitOrderLine     `json:"lines" validate:"required,min=1,dive"`
}

func clientIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.ClientIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "client context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid client id")
	}
	return id, nil
}

// OrderSubmit accepts a new order for the authenticated client. Orders whose
// lines are all third-party exchanges come back as a linked pair.
func OrderSubmit(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		clientID, err := clientIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body submitOrderRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := internalorders.SubmitOrderInput{
			ClientID:       clientID,
			ContactEmail:   body.ContactEmail,
			Address:        body.Address,
			RequesterName:  body.RequesterName,
			RequesterPhone: body.RequesterPhone,
			Notes:          body.Notes,
			Lines:          make([]internalorders.SubmitLineInput, 0, len(body.Lines)),
		}
		// An explicit body classification wins so clients can order from the
		// secondary lines; otherwise the token classification applies.
		if body.Classification != nil {
			input.Classification = body.Classification
		} else if raw := middleware.ClassificationFromContext(r.Context()); raw != "" {
			line := enums.BusinessLine(raw)
			input.Classification = &line
		}
		for _, l := range body.Lines {
			input.Lines = append(input.Lines, internalorders.SubmitLineInput{
				ProductID:       l.ProductID,
				Quantity:        l.Quantity,
				EmptyCount:      l.EmptyCount,
				FullCount:       l.FullCount,
				ThirdPartyCount: l.ThirdPartyCount,
				AllocationCount: l.AllocationCount,
			})
		}

		result, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// OrderList returns the authenticated client's orders, newest first.
func OrderList(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		clientID, err := clientIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}

		list, err := svc.ListForClient(r.Context(), clientID, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// OrderDetail returns one order after checking it belongs to the caller.
func OrderDetail(svc internalorders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		clientID, err := clientIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetForClient(r.Context(), clientID, orderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}

func parseOrderID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "orderId"))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id")
	}
	return id, nil
}
