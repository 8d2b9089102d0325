package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/logger"
	"github.com/andeangas/gasline-backend/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type accountSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
}

type productSource interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
}

// ConfirmationRecorder persists the order confirmation notice. Failures are
// logged and never fail the order.
type ConfirmationRecorder interface {
	RecordOrderConfirmation(ctx context.Context, clientID uuid.UUID, title, message string) error
}

// Service defines order-level operations beyond repository reads.
type Service interface {
	Submit(ctx context.Context, input SubmitOrderInput) (*SubmitResult, error)
	ListForClient(ctx context.Context, clientID uuid.UUID, params pagination.Params) (*OrderList, error)
	GetForClient(ctx context.Context, clientID, orderID uuid.UUID) (*OrderDetail, error)
	Transition(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*OrderDetail, error)
}

type service struct {
	repo      Repository
	tx        txRunner
	accounts  accountSource
	products  productSource
	confirmer ConfirmationRecorder
	logg      *logger.Logger
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Repo      Repository
	Tx        txRunner
	Accounts  accountSource
	Products  productSource
	Confirmer ConfirmationRecorder
	Logger    *logger.Logger
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Accounts == nil {
		return nil, fmt.Errorf("accounts source required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("products source required")
	}
	return &service{
		repo:      params.Repo,
		tx:        params.Tx,
		accounts:  params.Accounts,
		products:  params.Products,
		confirmer: params.Confirmer,
		logg:      params.Logger,
	}, nil
}

// Submit validates and persists an order. When every line carries only
// third-party cylinders the submission writes two orders sharing a pair id:
// the pickup leg and the delivery leg. Both legs commit in one transaction.
func (s *service) Submit(ctx context.Context, input SubmitOrderInput) (*SubmitResult, error) {
	client, err := s.accounts.FindByID(ctx, input.ClientID)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.NotFound("client")
		}
		return nil, pkgerrors.Internal(err, "loading client")
	}

	if !client.AccountStatus.CanOrder() {
		return nil, pkgerrors.Forbidden("account is not enabled for ordering")
	}

	if err := validateSubmitInput(input); err != nil {
		return nil, err
	}

	classification, err := resolveClassification(client, input.Classification)
	if err != nil {
		return nil, err
	}

	productIndex, err := s.resolveProducts(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	if err := checkClassification(classification, input.Lines, productIndex); err != nil {
		return nil, err
	}

	orders := buildOrders(input, classification, productIndex)

	persisted := make([]*models.Order, 0, len(orders))
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, order := range orders {
			created, err := repo.CreateOrder(ctx, order)
			if err != nil {
				return err
			}
			persisted = append(persisted, created)
		}
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Internal(err, "persisting order")
	}

	s.recordConfirmation(ctx, client, persisted)

	result := &SubmitResult{Orders: make([]OrderDetail, 0, len(persisted))}
	for _, order := range persisted {
		result.Orders = append(result.Orders, detailFromModel(order))
	}
	return result, nil
}

func (s *service) ListForClient(ctx context.Context, clientID uuid.UUID, params pagination.Params) (*OrderList, error) {
	if params.Cursor != "" {
		if _, err := pagination.ParseCursor(params.Cursor); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
		}
	}
	list, err := s.repo.ListByClient(ctx, clientID, params)
	if err != nil {
		return nil, pkgerrors.Internal(err, "listing orders")
	}
	return list, nil
}

func (s *service) GetForClient(ctx context.Context, clientID, orderID uuid.UUID) (*OrderDetail, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.NotFound("order")
		}
		return nil, pkgerrors.Internal(err, "loading order")
	}
	if order.ClientID != clientID {
		return nil, pkgerrors.NotFound("order")
	}
	detail := detailFromModel(order)
	return &detail, nil
}

// Transition advances an order along the forward pipeline or cancels it.
func (s *service) Transition(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (*OrderDetail, error) {
	if !next.IsValid() {
		return nil, pkgerrors.Validation(fmt.Sprintf("unknown order status %q", next))
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if isNotFound(err) {
			return nil, pkgerrors.NotFound("order")
		}
		return nil, pkgerrors.Internal(err, "loading order")
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, pkgerrors.StateConflict(
			fmt.Sprintf("cannot move order from %s to %s", order.Status, next),
		).WithDetails(map[string]any{
			"current":   order.Status,
			"requested": next,
		})
	}

	if err := s.repo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, pkgerrors.Internal(err, "updating order status")
	}
	order.Status = next

	detail := detailFromModel(order)
	return &detail, nil
}

func validateSubmitInput(input SubmitOrderInput) error {
	if err := input.Address.Validate(); err != nil {
		return pkgerrors.Validation(err.Error())
	}
	if strings.TrimSpace(input.RequesterName) == "" {
		return pkgerrors.Validation("requester name is required")
	}
	if strings.TrimSpace(input.RequesterPhone) == "" {
		return pkgerrors.Validation("requester phone is required")
	}
	if len(input.Lines) == 0 {
		return pkgerrors.Validation("at least one line item is required")
	}
	for _, line := range input.Lines {
		if line.ProductID == uuid.Nil {
			return pkgerrors.Validation("every line needs a product reference")
		}
		if line.Quantity < 0 || line.EmptyCount < 0 || line.FullCount < 0 ||
			line.ThirdPartyCount < 0 || line.AllocationCount < 0 {
			return pkgerrors.Validation("line counts cannot be negative")
		}
	}
	return nil
}

func resolveClassification(client *models.Client, override *enums.BusinessLine) (enums.BusinessLine, error) {
	if override != nil {
		if !override.IsValid() {
			return "", pkgerrors.Validation(fmt.Sprintf("unknown business line %q", *override))
		}
		return *override, nil
	}
	if client.Classification == nil {
		return "", pkgerrors.Validation("client has no classification and none was provided")
	}
	return *client.Classification, nil
}

func (s *service) resolveProducts(ctx context.Context, lines []SubmitLineInput) (map[uuid.UUID]models.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Internal(err, "loading products")
	}

	index := make(map[uuid.UUID]models.Product, len(products))
	for _, product := range products {
		index[product.ID] = product
	}

	var missing []string
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.Validation("unknown products referenced").
			WithDetails(map[string]any{"product_ids": missing})
	}
	return index, nil
}

func checkClassification(classification enums.BusinessLine, lines []SubmitLineInput, index map[uuid.UUID]models.Product) error {
	var mismatched []string
	for _, line := range lines {
		product := index[line.ProductID]
		if !strings.EqualFold(string(product.BusinessLine), string(classification)) {
			mismatched = append(mismatched, product.Name)
		}
	}
	if len(mismatched) > 0 {
		return pkgerrors.Validation("products outside the client business line").
			WithDetails(map[string]any{"products": mismatched})
	}
	return nil
}

// isThirdPartyOnly reports whether the submission carries nothing but
// third-party cylinders: all plain counts zero and at least one ajenos count.
func isThirdPartyOnly(lines []SubmitLineInput) bool {
	sawThirdParty := false
	for _, line := range lines {
		if line.Quantity != 0 || line.EmptyCount != 0 || line.FullCount != 0 || line.AllocationCount != 0 {
			return false
		}
		if line.ThirdPartyCount > 0 {
			sawThirdParty = true
		}
	}
	return sawThirdParty
}

func buildOrders(input SubmitOrderInput, classification enums.BusinessLine, index map[uuid.UUID]models.Product) []*models.Order {
	base := models.Order{
		ClientID:        input.ClientID,
		ContactEmail:    input.ContactEmail,
		ShippingAddress: input.Address,
		RequesterName:   input.RequesterName,
		RequesterPhone:  input.RequesterPhone,
		Notes:           input.Notes,
		Status:          enums.OrderStatusPending,
		Classification:  classification,
	}

	if !isThirdPartyOnly(input.Lines) {
		order := base
		order.Items = buildItems(input.Lines, index, enums.DeliveryLabelStandard, false)
		return []*models.Order{&order}
	}

	pairID := uuid.New()
	pickup := base
	pickup.PairID = &pairID
	pickup.Items = buildItems(input.Lines, index, enums.DeliveryLabelPickupThird, false)

	delivery := base
	delivery.PairID = &pairID
	delivery.Items = buildItems(input.Lines, index, enums.DeliveryLabelDeliveryThird, true)

	return []*models.Order{&pickup, &delivery}
}

// buildItems snapshots product names and computes per-line volume. When
// promoteThirdParty is set the third-party count becomes the line quantity,
// matching the delivery leg of a split pair.
func buildItems(lines []SubmitLineInput, index map[uuid.UUID]models.Product, label enums.DeliveryLabel, promoteThirdParty bool) []models.OrderLineItem {
	items := make([]models.OrderLineItem, 0, len(lines))
	for _, line := range lines {
		product := index[line.ProductID]
		productID := product.ID

		quantity := line.Quantity
		if promoteThirdParty {
			quantity = line.ThirdPartyCount
		}

		items = append(items, models.OrderLineItem{
			ProductID:       &productID,
			ProductName:     product.Name,
			Quantity:        quantity,
			EmptyCount:      line.EmptyCount,
			FullCount:       line.FullCount,
			ThirdPartyCount: line.ThirdPartyCount,
			AllocationCount: line.AllocationCount,
			VolumeM3:        float64(quantity) * product.UnitVolumeM3,
			DeliveryLabel:   label,
		})
	}
	return items
}

func (s *service) recordConfirmation(ctx context.Context, client *models.Client, orders []*models.Order) {
	if s.confirmer == nil || len(orders) == 0 {
		return
	}

	var lines []string
	for _, order := range orders {
		for _, item := range order.Items {
			lines = append(lines, fmt.Sprintf("%s x%d", item.ProductName, item.Quantity))
		}
	}
	title := "Order received"
	if len(orders) > 1 {
		title = "Order pair received"
	}
	message := strings.Join(lines, ", ")

	if err := s.confirmer.RecordOrderConfirmation(ctx, client.ID, title, message); err != nil && s.logg != nil {
		s.logg.Error(ctx, "recording order confirmation", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
