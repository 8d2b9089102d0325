package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/internal/clients"
	"github.com/andeangas/gasline-backend/internal/orders"
	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
)

const monthKeyLayout = "2006-01"

type ordersSource interface {
	FindAllByClient(ctx context.Context, clientID uuid.UUID) ([]models.Order, error)
}

type clientsSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	ListByRole(ctx context.Context, role enums.UserRole) ([]models.Client, error)
}

// MonthlyVolume is one bucket of the consumption series.
type MonthlyVolume struct {
	Month    string  `json:"month"`
	VolumeM3 float64 `json:"volume_m3"`
}

// Overview is the client-facing dashboard payload.
type Overview struct {
	Active             []orders.OrderSummary `json:"active"`
	Finished           []orders.OrderSummary `json:"finished"`
	MonthlyConsumption []MonthlyVolume       `json:"monthly_consumption"`
}

// ClientReport is the admin view of one client's activity.
type ClientReport struct {
	Client             *clients.ClientDTO    `json:"client"`
	Orders             []orders.OrderSummary `json:"orders"`
	TotalConsumptionM3 float64               `json:"total_consumption_m3"`
	ProductCounts      map[string]int        `json:"product_counts"`
}

// Service computes dashboard aggregations for clients and admins.
type Service interface {
	Overview(ctx context.Context, clientID uuid.UUID) (*Overview, error)
	ListClients(ctx context.Context) ([]clients.ClientDTO, error)
	ClientReport(ctx context.Context, clientID uuid.UUID) (*ClientReport, error)
}

type service struct {
	orders  ordersSource
	clients clientsSource
}

// NewService builds the dashboard service.
func NewService(ordersRepo ordersSource, clientsRepo clientsSource) (Service, error) {
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders source required")
	}
	if clientsRepo == nil {
		return nil, fmt.Errorf("clients source required")
	}
	return &service{orders: ordersRepo, clients: clientsRepo}, nil
}

// Overview partitions the caller's orders into active and finished and
// computes the medicinal consumption series bucketed per month.
func (s *service) Overview(ctx context.Context, clientID uuid.UUID) (*Overview, error) {
	rows, err := s.orders.FindAllByClient(ctx, clientID)
	if err != nil {
		return nil, pkgerrors.Internal(err, "loading orders")
	}

	overview := &Overview{
		Active:             make([]orders.OrderSummary, 0),
		Finished:           make([]orders.OrderSummary, 0),
		MonthlyConsumption: make([]MonthlyVolume, 0),
	}

	buckets := map[string]float64{}
	for i := range rows {
		order := &rows[i]
		summary := orders.SummaryFromModel(order)
		if order.Status.IsTerminal() {
			overview.Finished = append(overview.Finished, summary)
		} else {
			overview.Active = append(overview.Active, summary)
		}

		if !strings.EqualFold(string(order.Classification), string(enums.BusinessLineMedicinal)) {
			continue
		}
		buckets[order.CreatedAt.Format(monthKeyLayout)] += summary.TotalVolumeM3
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		overview.MonthlyConsumption = append(overview.MonthlyConsumption, MonthlyVolume{
			Month:    month,
			VolumeM3: buckets[month],
		})
	}

	return overview, nil
}

// ListClients returns every account with role client, newest first.
func (s *service) ListClients(ctx context.Context) ([]clients.ClientDTO, error) {
	rows, err := s.clients.ListByRole(ctx, enums.UserRoleClient)
	if err != nil {
		return nil, pkgerrors.Internal(err, "listing clients")
	}
	out := make([]clients.ClientDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *clients.FromModel(&rows[i]))
	}
	return out, nil
}

// ClientReport aggregates one client's orders with total consumption and
// per-product quantity counts.
func (s *service) ClientReport(ctx context.Context, clientID uuid.UUID) (*ClientReport, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("client")
		}
		return nil, pkgerrors.Internal(err, "loading client")
	}

	rows, err := s.orders.FindAllByClient(ctx, clientID)
	if err != nil {
		return nil, pkgerrors.Internal(err, "loading orders")
	}

	report := &ClientReport{
		Client:        clients.FromModel(client),
		Orders:        make([]orders.OrderSummary, 0, len(rows)),
		ProductCounts: map[string]int{},
	}
	for i := range rows {
		order := &rows[i]
		report.Orders = append(report.Orders, orders.SummaryFromModel(order))
		for _, item := range order.Items {
			report.TotalConsumptionM3 += item.VolumeM3
			report.ProductCounts[item.ProductName] += item.Quantity
		}
	}
	return report, nil
}
