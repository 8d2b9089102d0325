package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andeangas/gasline-backend/pkg/db/models"
	"github.com/andeangas/gasline-backend/pkg/enums"
	pkgerrors "github.com/andeangas/gasline-backend/pkg/errors"
	"github.com/andeangas/gasline-backend/pkg/pagination"
)

type stubRepo struct {
	created  []*models.Order
	byID     map[uuid.UUID]*models.Order
	statuses map[uuid.UUID]enums.OrderStatus
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		byID:     map[uuid.UUID]*models.Order{},
		statuses: map[uuid.UUID]enums.OrderStatus{},
	}
}

func (r *stubRepo) WithTx(_ *gorm.DB) Repository { return r }

func (r *stubRepo) CreateOrder(_ context.Context, order *models.Order) (*models.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.created = append(r.created, order)
	r.byID[order.ID] = order
	return order, nil
}

func (r *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (r *stubRepo) ListByClient(_ context.Context, _ uuid.UUID, _ pagination.Params) (*OrderList, error) {
	return &OrderList{}, nil
}

func (r *stubRepo) FindAllByClient(_ context.Context, _ uuid.UUID) ([]models.Order, error) {
	return nil, nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enums.OrderStatus) error {
	r.statuses[id] = status
	if order, ok := r.byID[id]; ok {
		order.Status = status
	}
	return nil
}

type stubAccounts struct {
	clients map[uuid.UUID]*models.Client
}

func (a *stubAccounts) FindByID(_ context.Context, id uuid.UUID) (*models.Client, error) {
	client, ok := a.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return client, nil
}

type stubProducts struct {
	products []models.Product
}

func (p *stubProducts) FindByIDs(_ context.Context, ids []uuid.UUID) ([]models.Product, error) {
	index := map[uuid.UUID]models.Product{}
	for _, product := range p.products {
		index[product.ID] = product
	}
	var out []models.Product
	for _, id := range ids {
		if product, ok := index[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type recordedNotice struct {
	clientID uuid.UUID
	title    string
	message  string
}

type stubConfirmer struct {
	notices []recordedNotice
}

func (c *stubConfirmer) RecordOrderConfirmation(_ context.Context, clientID uuid.UUID, title, message string) error {
	c.notices = append(c.notices, recordedNotice{clientID: clientID, title: title, message: message})
	return nil
}

type submitFixture struct {
	service   Service
	repo      *stubRepo
	confirmer *stubConfirmer
	client    *models.Client
	oxygen    models.Product
	nitrogen  models.Product
}

func newSubmitFixture(t *testing.T) *submitFixture {
	t.Helper()

	classification := enums.BusinessLineMedicinal
	client := &models.Client{
		ID:             uuid.New(),
		Name:           "Clinica del Norte",
		Email:          "compras@clinicanorte.co",
		Classification: &classification,
		AccountStatus:  enums.AccountStatusEnabled,
	}
	oxygen := models.Product{
		ID:           uuid.New(),
		Name:         "Oxigeno medicinal 6m3",
		UnitVolumeM3: 6,
		BusinessLine: enums.BusinessLineMedicinal,
		Status:       enums.ProductStatusActive,
	}
	nitrogen := models.Product{
		ID:           uuid.New(),
		Name:         "Nitrogeno industrial 9m3",
		UnitVolumeM3: 9,
		BusinessLine: enums.BusinessLineIndustrial,
		Status:       enums.ProductStatusActive,
	}

	repo := newStubRepo()
	confirmer := &stubConfirmer{}
	svc, err := NewService(ServiceParams{
		Repo:      repo,
		Tx:        passthroughTx{},
		Accounts:  &stubAccounts{clients: map[uuid.UUID]*models.Client{client.ID: client}},
		Products:  &stubProducts{products: []models.Product{oxygen, nitrogen}},
		Confirmer: confirmer,
	})
	require.NoError(t, err)

	return &submitFixture{
		service:   svc,
		repo:      repo,
		confirmer: confirmer,
		client:    client,
		oxygen:    oxygen,
		nitrogen:  nitrogen,
	}
}

func validSubmitInput(f *submitFixture) SubmitOrderInput {
	return SubmitOrderInput{
		ClientID:       f.client.ID,
		ContactEmail:   f.client.Email,
		Address:        testAddress(),
		RequesterName:  "Laura Pardo",
		RequesterPhone: "+57 310 555 0101",
		Lines: []SubmitLineInput{
			{ProductID: f.oxygen.ID, Quantity: 4, EmptyCount: 4},
		},
	}
}

func TestSubmitSingleOrder(t *testing.T) {
	f := newSubmitFixture(t)

	result, err := f.service.Submit(context.Background(), validSubmitInput(f))
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)

	order := result.Orders[0]
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.Equal(t, enums.BusinessLineMedicinal, order.Classification)
	assert.Nil(t, order.PairID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, enums.DeliveryLabelStandard, order.Items[0].DeliveryLabel)
	assert.Equal(t, 4, order.Items[0].Quantity)
	assert.InDelta(t, 24, order.Items[0].VolumeM3, 0.001)
	assert.InDelta(t, 24, order.TotalVolumeM3, 0.001)

	require.Len(t, f.confirmer.notices, 1)
	assert.Equal(t, f.client.ID, f.confirmer.notices[0].clientID)
	assert.Equal(t, "Order received", f.confirmer.notices[0].title)
	assert.Contains(t, f.confirmer.notices[0].message, "Oxigeno medicinal 6m3")
}

func TestSubmitThirdPartyOnlySplitsIntoPair(t *testing.T) {
	f := newSubmitFixture(t)

	input := validSubmitInput(f)
	input.Lines = []SubmitLineInput{
		{ProductID: f.oxygen.ID, ThirdPartyCount: 3},
	}

	result, err := f.service.Submit(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result.Orders, 2)

	pickup, delivery := result.Orders[0], result.Orders[1]
	require.NotNil(t, pickup.PairID)
	require.NotNil(t, delivery.PairID)
	assert.Equal(t, *pickup.PairID, *delivery.PairID)

	require.Len(t, pickup.Items, 1)
	assert.Equal(t, enums.DeliveryLabelPickupThird, pickup.Items[0].DeliveryLabel)
	assert.Equal(t, 0, pickup.Items[0].Quantity)
	assert.Equal(t, 3, pickup.Items[0].ThirdPartyCount)

	require.Len(t, delivery.Items, 1)
	assert.Equal(t, enums.DeliveryLabelDeliveryThird, delivery.Items[0].DeliveryLabel)
	assert.Equal(t, 3, delivery.Items[0].Quantity)
	assert.InDelta(t, 18, delivery.Items[0].VolumeM3, 0.001)

	assert.Len(t, f.repo.created, 2)
	require.Len(t, f.confirmer.notices, 1)
	assert.Equal(t, "Order pair received", f.confirmer.notices[0].title)
}

func TestSubmitMixedCountsStaysSingleOrder(t *testing.T) {
	f := newSubmitFixture(t)

	input := validSubmitInput(f)
	input.Lines = []SubmitLineInput{
		{ProductID: f.oxygen.ID, Quantity: 2, ThirdPartyCount: 3},
	}

	result, err := f.service.Submit(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Nil(t, result.Orders[0].PairID)
	assert.Equal(t, 2, result.Orders[0].Items[0].Quantity)
	assert.Equal(t, 3, result.Orders[0].Items[0].ThirdPartyCount)
}

func TestSubmitRejectsClassificationMismatch(t *testing.T) {
	f := newSubmitFixture(t)

	input := validSubmitInput(f)
	input.Lines = append(input.Lines, SubmitLineInput{ProductID: f.nitrogen.ID, Quantity: 1})

	_, err := f.service.Submit(context.Background(), input)
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
	details, ok := coded.Details().(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details["products"], "Nitrogeno industrial 9m3")
	assert.Empty(t, f.repo.created)
}

func TestSubmitRejectsUnknownProduct(t *testing.T) {
	f := newSubmitFixture(t)

	ghost := uuid.New()
	input := validSubmitInput(f)
	input.Lines = []SubmitLineInput{{ProductID: ghost, Quantity: 1}}

	_, err := f.service.Submit(context.Background(), input)
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
	details, ok := coded.Details().(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details["product_ids"], ghost.String())
}

func TestSubmitRejectsDisabledAccount(t *testing.T) {
	f := newSubmitFixture(t)
	f.client.AccountStatus = enums.AccountStatusDisabled

	_, err := f.service.Submit(context.Background(), validSubmitInput(f))
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeForbidden))
	assert.Empty(t, f.repo.created)
}

func TestSubmitRejectsUnknownClient(t *testing.T) {
	f := newSubmitFixture(t)

	input := validSubmitInput(f)
	input.ClientID = uuid.New()

	_, err := f.service.Submit(context.Background(), input)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestSubmitValidatesRequesterFields(t *testing.T) {
	f := newSubmitFixture(t)

	input := validSubmitInput(f)
	input.RequesterName = "  "
	_, err := f.service.Submit(context.Background(), input)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	input = validSubmitInput(f)
	input.RequesterPhone = ""
	_, err = f.service.Submit(context.Background(), input)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	input = validSubmitInput(f)
	input.Lines = nil
	_, err = f.service.Submit(context.Background(), input)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	input = validSubmitInput(f)
	input.Lines[0].Quantity = -1
	_, err = f.service.Submit(context.Background(), input)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
}

func TestSubmitRequiresClassification(t *testing.T) {
	f := newSubmitFixture(t)
	f.client.Classification = nil

	_, err := f.service.Submit(context.Background(), validSubmitInput(f))
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	// An explicit override fills the gap.
	override := enums.BusinessLineMedicinal
	input := validSubmitInput(f)
	input.Classification = &override
	_, err = f.service.Submit(context.Background(), input)
	require.NoError(t, err)
}

func TestGetForClientHidesOtherClients(t *testing.T) {
	f := newSubmitFixture(t)

	result, err := f.service.Submit(context.Background(), validSubmitInput(f))
	require.NoError(t, err)
	orderID := result.Orders[0].ID

	detail, err := f.service.GetForClient(context.Background(), f.client.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, detail.ID)

	_, err = f.service.GetForClient(context.Background(), uuid.New(), orderID)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeNotFound))
}

func TestListForClientRejectsMalformedCursor(t *testing.T) {
	f := newSubmitFixture(t)

	_, err := f.service.ListForClient(context.Background(), f.client.ID, pagination.Params{Cursor: "not-a-cursor!!"})
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	list, err := f.service.ListForClient(context.Background(), f.client.ID, pagination.Params{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list.Orders)
}

func TestTransitionForwardAndCancel(t *testing.T) {
	f := newSubmitFixture(t)

	result, err := f.service.Submit(context.Background(), validSubmitInput(f))
	require.NoError(t, err)
	orderID := result.Orders[0].ID

	detail, err := f.service.Transition(context.Background(), orderID, enums.OrderStatusVerifying)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusVerifying, detail.Status)
	assert.Equal(t, 1, detail.StepIndex)

	// Skipping a step is a conflict.
	_, err = f.service.Transition(context.Background(), orderID, enums.OrderStatusInDistribution)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeStateConflict))

	// Cancelling from any active state is allowed.
	detail, err = f.service.Transition(context.Background(), orderID, enums.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCancelled, detail.Status)

	// Terminal orders stay put.
	_, err = f.service.Transition(context.Background(), orderID, enums.OrderStatusVerifying)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeStateConflict))
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	f := newSubmitFixture(t)

	_, err := f.service.Transition(context.Background(), uuid.New(), enums.OrderStatus("shipped"))
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))
}
