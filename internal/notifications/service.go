package notifications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/pagination"
)

// Service defines notification record/list/read operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	MarkRead(ctx context.Context, clientID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, clientID uuid.UUID) (int64, error)
	RecordOrderConfirmation(ctx context.Context, clientID uuid.UUID, title, message string) error
	RecordStatusChange(ctx context.Context, clientID uuid.UUID, orderID uuid.UUID, status enums.OrderStatus) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type service struct {
	repo Repository
}

// ListParams configures pagination for notifications.
type ListParams struct {
	ClientID   uuid.UUID
	Limit      int
	Cursor     string
	UnreadOnly bool
}

// ListResult wraps returned notifications and the cursor for the next page.
type ListResult struct {
	Items  []models.Notification `json:"items"`
	Cursor string                `json:"cursor"`
}

// NewService wires notifications dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.ClientID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}

	query := listNotificationsParams{
		ClientID:   params.ClientID,
		Limit:      params.Limit,
		UnreadOnly: params.UnreadOnly,
	}
	if params.Cursor != "" {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
		query.Cursor = cursor
	}

	rows, next, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list notifications")
	}

	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}

	return &ListResult{
		Items:  rows,
		Cursor: cursor,
	}, nil
}

func (s *service) MarkRead(ctx context.Context, clientID, notificationID uuid.UUID) error {
	if clientID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}
	if notificationID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}

	result, err := s.repo.MarkRead(ctx, clientID, notificationID, time.Now().UTC())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notification read")
	}
	if !result.Found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, clientID uuid.UUID) (int64, error) {
	if clientID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}

	count, err := s.repo.MarkAllRead(ctx, clientID, time.Now().UTC())
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "mark notifications read")
	}
	return count, nil
}

// RecordOrderConfirmation writes the in-app confirmation of a submitted order.
func (s *service) RecordOrderConfirmation(ctx context.Context, clientID uuid.UUID, title, message string) error {
	if clientID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}
	return s.repo.Create(ctx, &models.Notification{
		ClientID: clientID,
		Type:     enums.NotificationTypeOrderConfirmation,
		Title:    title,
		Message:  message,
	})
}

// RecordStatusChange notifies the client their order moved along the pipeline.
func (s *service) RecordStatusChange(ctx context.Context, clientID uuid.UUID, orderID uuid.UUID, status enums.OrderStatus) error {
	if clientID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "client id required")
	}
	link := "/orders/" + orderID.String()
	return s.repo.Create(ctx, &models.Notification{
		ClientID: clientID,
		Type:     enums.NotificationTypeOrderStatusChange,
		Title:    "Order status updated",
		Message:  "Your order is now " + status.String(),
		Link:     &link,
	})
}

// DeleteOlderThan purges aged notifications. Returns the number removed.
func (s *service) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	count, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "purge notifications")
	}
	return count, nil
}
