package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
)

type stubOrders struct {
	byClient map[uuid.UUID][]models.Order
}

func (s *stubOrders) FindAllByClient(_ context.Context, clientID uuid.UUID) ([]models.Order, error) {
	return s.byClient[clientID], nil
}

type stubClients struct {
	rows []models.Client
}

func (s *stubClients) FindByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubClients) ListByRole(_ context.Context, role enums.UserRole) ([]models.Client, error) {
	var out []models.Client
	for _, row := range s.rows {
		if row.Role == role {
			out = append(out, row)
		}
	}
	return out, nil
}

func fixtureOrder(clientID uuid.UUID, status enums.OrderStatus, line enums.BusinessLine, createdAt time.Time, volume float64) models.Order {
	return models.Order{
		ID:             uuid.New(),
		ClientID:       clientID,
		Status:         status,
		Classification: line,
		Items: []models.OrderLineItem{
			{
				ID:          uuid.New(),
				ProductName: "Oxigeno medicinal 6m3",
				Quantity:    int(volume / 6),
				VolumeM3:    volume,
			},
		},
		CreatedAt: createdAt,
	}
}

func TestOverviewPartitionsAndBucketsConsumption(t *testing.T) {
	clientID := uuid.New()
	january := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	february := time.Date(2026, time.February, 3, 9, 0, 0, 0, time.UTC)

	ordersRepo := &stubOrders{byClient: map[uuid.UUID][]models.Order{
		clientID: {
			fixtureOrder(clientID, enums.OrderStatusPending, enums.BusinessLineMedicinal, february, 12),
			fixtureOrder(clientID, enums.OrderStatusCompleted, enums.BusinessLineMedicinal, january, 24),
			fixtureOrder(clientID, enums.OrderStatusCancelled, enums.BusinessLineMedicinal, january, 6),
			// Industrial volume never lands in the medicinal series.
			fixtureOrder(clientID, enums.OrderStatusInProduction, enums.BusinessLineIndustrial, february, 90),
		},
	}}

	svc, err := NewService(ordersRepo, &stubClients{})
	require.NoError(t, err)

	overview, err := svc.Overview(context.Background(), clientID)
	require.NoError(t, err)

	require.Len(t, overview.Active, 2)
	require.Len(t, overview.Finished, 2)

	require.Len(t, overview.MonthlyConsumption, 2)
	assert.Equal(t, "2026-01", overview.MonthlyConsumption[0].Month)
	assert.InDelta(t, 30, overview.MonthlyConsumption[0].VolumeM3, 0.001)
	assert.Equal(t, "2026-02", overview.MonthlyConsumption[1].Month)
	assert.InDelta(t, 12, overview.MonthlyConsumption[1].VolumeM3, 0.001)
}

func TestOverviewEmptyClient(t *testing.T) {
	svc, err := NewService(&stubOrders{byClient: map[uuid.UUID][]models.Order{}}, &stubClients{})
	require.NoError(t, err)

	overview, err := svc.Overview(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, overview.Active)
	assert.Empty(t, overview.Finished)
	assert.Empty(t, overview.MonthlyConsumption)
}

func TestListClientsFiltersRole(t *testing.T) {
	classification := enums.BusinessLineMedicinal
	clientsRepo := &stubClients{rows: []models.Client{
		{ID: uuid.New(), Name: "Clinica del Norte", Role: enums.UserRoleClient, Classification: &classification},
		{ID: uuid.New(), Name: "Operaciones", Role: enums.UserRoleAdmin},
	}}

	svc, err := NewService(&stubOrders{byClient: map[uuid.UUID][]models.Order{}}, clientsRepo)
	require.NoError(t, err)

	listed, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Clinica del Norte", listed[0].Name)
}

func TestClientReportAggregates(t *testing.T) {
	clientID := uuid.New()
	classification := enums.BusinessLineMedicinal
	clientsRepo := &stubClients{rows: []models.Client{
		{ID: clientID, Name: "Clinica del Norte", Role: enums.UserRoleClient, Classification: &classification},
	}}

	now := time.Now().UTC()
	first := fixtureOrder(clientID, enums.OrderStatusCompleted, enums.BusinessLineMedicinal, now.Add(-time.Hour), 24)
	second := fixtureOrder(clientID, enums.OrderStatusPending, enums.BusinessLineMedicinal, now, 12)
	second.Items = append(second.Items, models.OrderLineItem{
		ID:          uuid.New(),
		ProductName: "Aire medicinal 8m3",
		Quantity:    1,
		VolumeM3:    8,
	})
	ordersRepo := &stubOrders{byClient: map[uuid.UUID][]models.Order{clientID: {first, second}}}

	svc, err := NewService(ordersRepo, clientsRepo)
	require.NoError(t, err)

	report, err := svc.ClientReport(context.Background(), clientID)
	require.NoError(t, err)
	require.NotNil(t, report.Client)
	assert.Len(t, report.Orders, 2)
	assert.InDelta(t, 44, report.TotalConsumptionM3, 0.001)
	assert.Equal(t, 6, report.ProductCounts["Oxigeno medicinal 6m3"])
	assert.Equal(t, 1, report.ProductCounts["Aire medicinal 8m3"])
}

func TestClientReportUnknownClient(t *testing.T) {
	svc, err := NewService(&stubOrders{byClient: map[uuid.UUID][]models.Order{}}, &stubClients{})
	require.NoError(t, err)

	_, err = svc.ClientReport(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}
