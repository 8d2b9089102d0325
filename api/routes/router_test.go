package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andeangas/gasline-backend/internal/auth"
	"github.com/andeangas/gasline-backend/internal/catalog"
	"github.com/andeangas/gasline-backend/internal/clients"
	"github.com/andeangas/gasline-backend/internal/dashboard"
	"github.com/andeangas/gasline-backend/internal/notifications"
	"github.com/andeangas/gasline-backend/internal/orders"
	pkgAuth "github.com/andeangas/gasline-backend/pkg/auth"
	"github.com/andeangas/gasline-backend/pkg/auth/session"
	"github.com/andeangas/gasline-backend/pkg/config"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/logger"
	"github.com/andeangas/gasline-backend/pkg/pagination"
	"github.com/andeangas/gasline-backend/pkg/types"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
}

func (stubAuthService) Refresh(ctx context.Context, req auth.RefreshRequest) (*auth.RefreshResponse, error) {
	return &auth.RefreshResponse{AccessToken: "a", RefreshToken: "r"}, nil
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubRegisterService struct{}

func (stubRegisterService) Register(ctx context.Context, req auth.RegisterRequest) (*clients.ClientDTO, error) {
	return &clients.ClientDTO{ID: uuid.New()}, nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubProfileService struct{}

func (stubProfileService) Get(ctx context.Context, clientID uuid.UUID) (*clients.ClientDTO, error) {
	return &clients.ClientDTO{ID: clientID}, nil
}

func (stubProfileService) UpdateAddresses(ctx context.Context, clientID uuid.UUID, addresses types.ShippingAddressList) (*clients.ClientDTO, error) {
	return &clients.ClientDTO{ID: clientID, ShippingAddresses: addresses}, nil
}

type stubCatalogService struct {
	lastList catalog.ListInput
}

func (s *stubCatalogService) List(ctx context.Context, input catalog.ListInput) ([]catalog.ProductDTO, error) {
	s.lastList = input
	return []catalog.ProductDTO{}, nil
}

func (s *stubCatalogService) Create(ctx context.Context, input catalog.CreateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: uuid.New(), Name: input.Name}, nil
}

func (s *stubCatalogService) Update(ctx context.Context, productID uuid.UUID, input catalog.UpdateProductInput) (*catalog.ProductDTO, error) {
	return &catalog.ProductDTO{ID: productID}, nil
}

func (s *stubCatalogService) Deactivate(ctx context.Context, productID uuid.UUID) error {
	return nil
}

type stubOrdersService struct{}

func (stubOrdersService) Submit(ctx context.Context, input orders.SubmitOrderInput) (*orders.SubmitResult, error) {
	return &orders.SubmitResult{}, nil
}

func (stubOrdersService) ListForClient(ctx context.Context, clientID uuid.UUID, params pagination.Params) (*orders.OrderList, error) {
	return &orders.OrderList{Orders: []orders.OrderSummary{}}, nil
}

func (stubOrdersService) GetForClient(ctx context.Context, clientID, orderID uuid.UUID) (*orders.OrderDetail, error) {
	return nil, pkgerrors.NotFound("order")
}

func (stubOrdersService) Transition(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*orders.OrderDetail, error) {
	return &orders.OrderDetail{ID: orderID, ClientID: uuid.New(), Status: next}, nil
}

type stubDashboardService struct{}

func (stubDashboardService) Overview(ctx context.Context, clientID uuid.UUID) (*dashboard.Overview, error) {
	return &dashboard.Overview{}, nil
}

func (stubDashboardService) ListClients(ctx context.Context) ([]clients.ClientDTO, error) {
	return []clients.ClientDTO{}, nil
}

func (stubDashboardService) ClientReport(ctx context.Context, clientID uuid.UUID) (*dashboard.ClientReport, error) {
	return &dashboard.ClientReport{}, nil
}

type stubNotificationsService struct{}

func (stubNotificationsService) List(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
	return &notifications.ListResult{}, nil
}

func (stubNotificationsService) MarkRead(ctx context.Context, clientID, notificationID uuid.UUID) error {
	return nil
}

func (stubNotificationsService) MarkAllRead(ctx context.Context, clientID uuid.UUID) (int64, error) {
	return 0, nil
}

func (stubNotificationsService) RecordOrderConfirmation(ctx context.Context, clientID uuid.UUID, title, message string) error {
	return nil
}

func (stubNotificationsService) RecordStatusChange(ctx context.Context, clientID uuid.UUID, orderID uuid.UUID, status enums.OrderStatus) error {
	return nil
}

func (stubNotificationsService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "issuer",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config, catalogSvc catalog.Service) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	if catalogSvc == nil {
		catalogSvc = &stubCatalogService{}
	}
	return NewRouter(
		cfg,
		logg,
		stubPinger{},
		nil,
		stubSessionChecker{},
		Services{
			Auth:          stubAuthService{},
			Register:      stubRegisterService{},
			Profile:       stubProfileService{},
			Catalog:       catalogSvc,
			Orders:        stubOrdersService{},
			Dashboard:     stubDashboardService{},
			Notifications: stubNotificationsService{},
		},
		nil,
		nil,
	)
}

func buildToken(t *testing.T, cfg *config.Config, role enums.UserRole, classification *enums.BusinessLine) string {
	t.Helper()
	accessID := session.NewAccessID()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		ClientID:       uuid.New(),
		Email:          "tester@gasline.com.co",
		Name:           "Tester",
		Role:           role,
		Classification: classification,
		JTI:            accessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestProtectedGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestProtectedGroupSucceedsWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleClient, nil))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token got %d", resp.Code)
	}
}

func TestAdminGroupRequiresAdminRole(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, nil)

	nonAdmin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/clients", nil)
	nonAdmin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleClient, nil))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, nonAdmin)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin got %d", resp.Code)
	}

	admin := httptest.NewRequest(http.MethodGet, "/api/admin/v1/clients", nil)
	admin.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleAdmin, nil))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, admin)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin got %d", resp.Code)
	}
}

func TestCatalogUsesTokenClassification(t *testing.T) {
	cfg := testConfig()
	catalogSvc := &stubCatalogService{}
	router := newTestRouter(cfg, catalogSvc)

	line := enums.BusinessLineMedicinal
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleClient, &line))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if catalogSvc.lastList.BusinessLine != enums.BusinessLineMedicinal {
		t.Fatalf("expected medicinal segment, got %s", catalogSvc.lastList.BusinessLine)
	}
}

func TestCatalogQueryOverridesClassification(t *testing.T) {
	cfg := testConfig()
	catalogSvc := &stubCatalogService{}
	router := newTestRouter(cfg, catalogSvc)

	line := enums.BusinessLineMedicinal
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?business_line=industrial", nil)
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleClient, &line))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if catalogSvc.lastList.BusinessLine != enums.BusinessLineIndustrial {
		t.Fatalf("expected industrial segment, got %s", catalogSvc.lastList.BusinessLine)
	}
}

func TestLoginRouteReturnsUnauthorizedFromService(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	body := `{"email":"x@y.co","password":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestOrderSubmitRejectsInvalidBody(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+buildToken(t, cfg, enums.UserRoleClient, nil))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}

func TestRefreshRouteWired(t *testing.T) {
	router := newTestRouter(testConfig(), nil)
	body := `{"access_token":"expired","refresh_token":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
