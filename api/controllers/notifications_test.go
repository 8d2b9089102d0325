package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/api/middleware"
	"github.com/andeangas/gasline-backend/internal/notifications"
	"github.com/andeangas/gasline-backend/pkg/enums"
)

type stubNotificationsService struct {
	lastList     notifications.ListParams
	markedRead   uuid.UUID
	markAllCount int64
}

func (s *stubNotificationsService) List(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
	s.lastList = params
	return &notifications.ListResult{}, nil
}

func (s *stubNotificationsService) MarkRead(ctx context.Context, clientID, notificationID uuid.UUID) error {
	s.markedRead = notificationID
	return nil
}

func (s *stubNotificationsService) MarkAllRead(ctx context.Context, clientID uuid.UUID) (int64, error) {
	return s.markAllCount, nil
}

func (s *stubNotificationsService) RecordOrderConfirmation(ctx context.Context, clientID uuid.UUID, title, message string) error {
	panic("unimplemented")
}

func (s *stubNotificationsService) RecordStatusChange(ctx context.Context, clientID uuid.UUID, orderID uuid.UUID, status enums.OrderStatus) error {
	panic("unimplemented")
}

func (s *stubNotificationsService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	panic("unimplemented")
}

func TestListNotifications(t *testing.T) {
	logg := testLogger()
	clientID := uuid.New()
	authed := middleware.WithClientID(context.Background(), clientID.String())

	t.Run("requires auth context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
		rec := httptest.NewRecorder()
		ListNotifications(&stubNotificationsService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects non positive limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=0", nil).WithContext(authed)
		rec := httptest.NewRecorder()
		ListNotifications(&stubNotificationsService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("passes filters through", func(t *testing.T) {
		stub := &stubNotificationsService{}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?limit=5&cursor=abc&unreadOnly=true", nil).WithContext(authed)
		rec := httptest.NewRecorder()
		ListNotifications(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastList.ClientID != clientID || stub.lastList.Limit != 5 || stub.lastList.Cursor != "abc" || !stub.lastList.UnreadOnly {
			t.Fatalf("unexpected list params %+v", stub.lastList)
		}
	})
}

func TestMarkNotificationRead(t *testing.T) {
	logg := testLogger()
	clientID := uuid.New()

	t.Run("invalid notification id", func(t *testing.T) {
		ctx := middleware.WithClientID(context.Background(), clientID.String())
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("notificationId", "nope")
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/nope/read", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		MarkNotificationRead(&stubNotificationsService{}, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("marks the notification", func(t *testing.T) {
		notificationID := uuid.New()
		ctx := middleware.WithClientID(context.Background(), clientID.String())
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("notificationId", notificationID.String())
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", nil).WithContext(ctx)
		stub := &stubNotificationsService{}
		rec := httptest.NewRecorder()
		MarkNotificationRead(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.markedRead != notificationID {
			t.Fatalf("expected MarkRead(%s), got %s", notificationID, stub.markedRead)
		}
	})
}

func TestMarkAllNotificationsRead(t *testing.T) {
	logg := testLogger()
	clientID := uuid.New()

	ctx := middleware.WithClientID(context.Background(), clientID.String())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", nil).WithContext(ctx)
	stub := &stubNotificationsService{markAllCount: 3}
	rec := httptest.NewRecorder()
	MarkAllNotificationsRead(stub, logg).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Data struct {
			Updated int64 `json:"updated"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.Updated != 3 {
		t.Fatalf("expected 3 updated, got %d", payload.Data.Updated)
	}
}
