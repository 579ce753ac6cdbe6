package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk-api/internal/application/service"
	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
	"github.com/salesdesk/salesdesk-api/internal/domain/repository"
	"github.com/salesdesk/salesdesk-api/pkg/apperror"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── in-memory fakes ──────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders      map[uuid.UUID]*entity.SalesOrder
	createCalls int
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.SalesOrder)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.SalesOrder) error {
	r.createCalls++
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.SalesOrder) error {
	r.updateCalls++
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.SalesOrder, int64, error) {
	var out []entity.SalesOrder
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

type fakeItemRepo struct {
	items []entity.Item
}

func (r *fakeItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	for i := range r.items {
		if r.items[i].Code == code {
			return &r.items[i], nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(ctx context.Context) ([]entity.Item, error) {
	return r.items, nil
}

type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			return &r.customers[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	return r.customers, nil
}

// ── fixtures ─────────────────────────────────────────────────────────────────

var testCustomerID = uuid.MustParse("7f8b0f31-9c55-4a3e-b7a1-0d3c2f14a001")

func newTestService() (*service.OrderService, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	itemRepo := &fakeItemRepo{items: []entity.Item{
		{Code: "ITEM001", Description: "Laptop Pro", UnitPrice: dec("1500.00")},
		{Code: "ITEM002", Description: "Wireless Mouse", UnitPrice: dec("39.95")},
	}}
	customerRepo := &fakeCustomerRepo{customers: []entity.Customer{
		{ID: testCustomerID, Name: "Acme Pty Ltd", Address1: "123 Main St", State: "VIC", PostCode: "3121"},
	}}
	return service.NewOrderService(orderRepo, itemRepo, customerRepo), orderRepo
}

func validForm() orderform.Form {
	return orderform.Form{
		Header: orderform.Header{
			CustomerID:   testCustomerID.String(),
			CustomerName: "Acme Pty Ltd",
			InvoiceNo:    "INV-001",
			InvoiceDate:  "2026-08-30",
		},
		Lines: []orderform.Line{
			{ItemCode: "ITEM001", Quantity: "2", TaxRate: "10"},
			{}, // untouched blank row, must be dropped
			{ItemCode: "ITEM002", Quantity: "0"}, // zero quantity, dropped
		},
	}
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestOrderService_CreateOrder(t *testing.T) {
	t.Run("persists only qualifying lines with recomputed amounts", func(t *testing.T) {
		svc, repo := newTestService()

		order, err := svc.CreateOrder(context.Background(), validForm())

		require.NoError(t, err)
		require.Len(t, order.Lines, 1)
		line := order.Lines[0]
		assert.Equal(t, 1, line.LineNo)
		assert.Equal(t, "ITEM001", line.ItemCode)
		assert.Equal(t, "Laptop Pro", line.Description)
		assert.True(t, line.ExclAmount.Equal(dec("3000.00")))
		assert.True(t, line.TaxAmount.Equal(dec("300.00")))
		assert.True(t, line.InclAmount.Equal(dec("3300.00")))
		assert.True(t, order.TotalExcl.Equal(dec("3000.00")))
		assert.True(t, order.TotalTax.Equal(dec("300.00")))
		assert.True(t, order.TotalIncl.Equal(dec("3300.00")))
		assert.Equal(t, 1, repo.createCalls)
	})

	t.Run("unit price always comes from the catalog", func(t *testing.T) {
		svc, _ := newTestService()
		form := validForm()
		// A tampered client price must be overridden on the server.
		form.Lines[0].UnitPrice = dec("0.01")
		form.Lines[0].Description = "something else"

		order, err := svc.CreateOrder(context.Background(), form)

		require.NoError(t, err)
		assert.True(t, order.Lines[0].UnitPrice.Equal(dec("1500.00")))
		assert.Equal(t, "Laptop Pro", order.Lines[0].Description)
	})

	t.Run("rejects an order with no qualifying line before any write", func(t *testing.T) {
		svc, repo := newTestService()
		form := validForm()
		form.Lines = []orderform.Line{{}, {Quantity: "3"}, {ItemCode: "ITEM001", Quantity: "0"}}

		_, err := svc.CreateOrder(context.Background(), form)

		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("rejects a malformed invoice date", func(t *testing.T) {
		svc, repo := newTestService()
		form := validForm()
		form.Header.InvoiceDate = "30/08/2026"

		_, err := svc.CreateOrder(context.Background(), form)

		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
		assert.Zero(t, repo.createCalls)
	})
}

func TestOrderService_UpdateOrder(t *testing.T) {
	t.Run("replaces lines and keeps identity", func(t *testing.T) {
		svc, repo := newTestService()
		created, err := svc.CreateOrder(context.Background(), validForm())
		require.NoError(t, err)

		form := validForm()
		form.Lines = []orderform.Line{{ItemCode: "ITEM002", Quantity: "3", TaxRate: "10"}}

		updated, err := svc.UpdateOrder(context.Background(), created.ID, form)

		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		require.Len(t, updated.Lines, 1)
		assert.Equal(t, "ITEM002", updated.Lines[0].ItemCode)
		assert.True(t, updated.TotalExcl.Equal(dec("119.85")))
		assert.Equal(t, 1, repo.updateCalls)
	})

	t.Run("unknown order yields not found", func(t *testing.T) {
		svc, repo := newTestService()

		_, err := svc.UpdateOrder(context.Background(), uuid.New(), validForm())

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("empty submission leaves the stored order untouched", func(t *testing.T) {
		svc, repo := newTestService()
		created, err := svc.CreateOrder(context.Background(), validForm())
		require.NoError(t, err)

		form := validForm()
		form.Lines = nil

		_, err = svc.UpdateOrder(context.Background(), created.ID, form)

		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
		assert.Zero(t, repo.updateCalls)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("recomputes totals from lines instead of trusting the cache", func(t *testing.T) {
		svc, repo := newTestService()
		created, err := svc.CreateOrder(context.Background(), validForm())
		require.NoError(t, err)

		// Corrupt the stored cache; the load must repair it.
		repo.orders[created.ID].TotalIncl = dec("1")

		got, err := svc.GetOrder(context.Background(), created.ID)

		require.NoError(t, err)
		assert.True(t, got.TotalIncl.Equal(dec("3300.00")))
	})

	t.Run("unknown order yields not found", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.GetOrder(context.Background(), uuid.New())

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.CreateOrder(context.Background(), validForm())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), created.ID))
	assert.Empty(t, repo.orders)

	err = svc.DeleteOrder(context.Background(), created.ID)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestOrderService_Recalculate(t *testing.T) {
	svc, _ := newTestService()
	form := orderform.Form{
		Lines: []orderform.Line{
			{ItemCode: "ITEM001", Quantity: "2", TaxRate: "10"},
			{ItemCode: "", Description: "Wireless Mouse", Quantity: "1"},
			{ItemCode: "", Description: "no such item", Quantity: "1"},
		},
	}

	got, totals, err := svc.Recalculate(context.Background(), form)

	require.NoError(t, err)
	require.Len(t, got.Lines, 3)
	assert.Equal(t, "Laptop Pro", got.Lines[0].Description)
	assert.True(t, got.Lines[0].InclAmount.Equal(dec("3300.00")))
	// A description-only line resolves its code and price from the catalog.
	assert.Equal(t, "ITEM002", got.Lines[1].ItemCode)
	assert.True(t, got.Lines[1].ExclAmount.Equal(dec("39.95")))
	// An unresolvable one stays in the editing view and computes to zero.
	assert.Empty(t, got.Lines[2].ItemCode)
	assert.True(t, got.Lines[2].ExclAmount.IsZero())
	assert.True(t, totals.Incl.Equal(dec("3339.95")))
}

func TestFormFromOrder(t *testing.T) {
	order := &entity.SalesOrder{
		CustomerID:   &testCustomerID,
		CustomerName: "Acme Pty Ltd",
		InvoiceNo:    "INV-009",
		InvoiceDate:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Lines: []entity.SalesOrderLine{
			{ItemCode: "ITEM001", Description: "Laptop Pro", Quantity: dec("2"), UnitPrice: dec("1500"), TaxRate: dec("10")},
		},
	}

	form := service.FormFromOrder(order)

	assert.Equal(t, "INV-009", form.Header.InvoiceNo)
	assert.Equal(t, "2026-08-30", form.Header.InvoiceDate)
	// Loaded orders keep their lines without blank padding.
	require.Len(t, form.Lines, 1)
	assert.True(t, form.Lines[0].InclAmount.Equal(dec("3300")))
}
