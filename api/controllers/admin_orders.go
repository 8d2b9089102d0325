package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/api/responses"
	"github.com/andeangas/gasline-backend/api/validators"
	internalorders "github.com/andeangas/gasline-backend/internal/orders"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/logger"
)

type statusChangeRecorder interface {
	RecordStatusChange(ctx context.Context, clientID uuid.UUID, orderID uuid.UUID, status enums.OrderStatus) error
}

type transitionRequest struct {
	Status enums.OrderStatus `json:"status" validate:"required"`
}

// AdminOrderTransition advances an order one step forward or cancels it,
// then records the in-app status notice for the owning client.
func AdminOrderTransition(svc internalorders.Service, notifier statusChangeRecorder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		orderID, err := parseOrderID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body transitionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.Transition(r.Context(), orderID, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if notifier != nil {
			if err := notifier.RecordStatusChange(r.Context(), detail.ClientID, detail.ID, detail.Status); err != nil && logg != nil {
				logg.Error(r.Context(), "record status notification", err)
			}
		}

		responses.WriteSuccess(w, detail)
	}
}
