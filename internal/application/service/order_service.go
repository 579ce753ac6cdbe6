package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
	"github.com/salesdesk/salesdesk-api/internal/domain/repository"
	"github.com/salesdesk/salesdesk-api/pkg/apperror"
	"github.com/salesdesk/salesdesk-api/pkg/pagination"
)

const invoiceDateLayout = "2006-01-02"

// OrderService handles the sales order lifecycle. Submissions run through
// the orderform engine: lines are re-resolved against the current catalog,
// amounts recomputed, disqualified lines dropped and the order rejected
// before any repository call if nothing qualifies.
type OrderService struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
	}
}

// editor builds an orderform editor over the current reference data.
func (s *OrderService) editor(ctx context.Context) (orderform.Editor, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return orderform.Editor{}, err
	}
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return orderform.Editor{}, err
	}
	return orderform.Editor{
		Items:     catalogViews(items),
		Customers: customerViews(customers),
	}, nil
}

// Recalculate re-resolves a draft form against the current catalog,
// recomputes every line and the order totals, and returns the result with
// display rounding applied. It never fails on form content; all
// computation is total.
func (s *OrderService) Recalculate(ctx context.Context, form orderform.Form) (orderform.Form, orderform.Totals, error) {
	editor, err := s.editor(ctx)
	if err != nil {
		return orderform.Form{}, orderform.Totals{}, err
	}

	form = editor.Refresh(form)
	totals := form.Totals().Rounded()
	for i, l := range form.Lines {
		form.Lines[i] = l.Rounded()
	}
	return form, totals, nil
}

// CreateOrder validates and persists a new sales order built from the
// submitted form. Returns ErrEmptyOrder mapped to a 422 before any
// repository write when no line qualifies.
func (s *OrderService) CreateOrder(ctx context.Context, form orderform.Form) (*entity.SalesOrder, error) {
	order, err := s.prepare(ctx, form)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// UpdateOrder validates the submitted form and replaces the stored order's
// header and lines.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, form orderform.Form) (*entity.SalesOrder, error) {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Sales order")
	}

	order, err := s.prepare(ctx, form)
	if err != nil {
		return nil, err
	}
	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithLines(ctx, order.ID)
}

// GetOrder retrieves an order with its lines. Totals are recomputed from
// the lines; the stored values are only a cache for list rendering.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error) {
	order, err := s.orderRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Sales order")
	}

	totals := orderform.Aggregate(formLines(order.Lines)).Rounded()
	order.TotalExcl = totals.Excl
	order.TotalTax = totals.Tax
	order.TotalIncl = totals.Incl
	return order, nil
}

// ListOrders lists orders with filtering and page-based pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.SalesOrder], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Sales order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// prepare runs the submission pipeline on a form and maps the surviving
// lines onto a persistable order with 2dp-rounded amounts and totals.
func (s *OrderService) prepare(ctx context.Context, form orderform.Form) (*entity.SalesOrder, error) {
	editor, err := s.editor(ctx)
	if err != nil {
		return nil, err
	}

	// Unit prices and descriptions always come from the catalog, never
	// from the submitted payload.
	form = editor.Refresh(form)

	prepared, err := orderform.PrepareForSubmit(form)
	if err != nil {
		if errors.Is(err, orderform.ErrEmptyOrder) {
			return nil, apperror.NewUnprocessableError("Sales order must contain at least one item line")
		}
		return nil, err
	}

	header := prepared.Header
	invoiceDate, err := time.Parse(invoiceDateLayout, header.InvoiceDate)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invoice date must be in YYYY-MM-DD format")
	}

	var customerID *uuid.UUID
	if header.CustomerID != "" {
		id, err := uuid.Parse(header.CustomerID)
		if err != nil {
			return nil, apperror.NewBadRequestError("Invalid customer id")
		}
		customerID = &id
	}

	totals := orderform.Aggregate(prepared.Lines).Rounded()

	order := &entity.SalesOrder{
		CustomerID:   customerID,
		CustomerName: header.CustomerName,
		Address1:     header.Address1,
		Address2:     header.Address2,
		Address3:     header.Address3,
		Suburb:       header.Suburb,
		State:        header.State,
		PostCode:     header.PostCode,
		InvoiceNo:    header.InvoiceNo,
		InvoiceDate:  invoiceDate,
		ReferenceNo:  header.ReferenceNo,
		Notes:        header.Notes,
		TotalExcl:    totals.Excl,
		TotalTax:     totals.Tax,
		TotalIncl:    totals.Incl,
		Lines:        make([]entity.SalesOrderLine, len(prepared.Lines)),
	}

	for i, l := range prepared.Lines {
		rounded := l.Rounded()
		order.Lines[i] = entity.SalesOrderLine{
			LineNo:      i + 1,
			ItemCode:    rounded.ItemCode,
			Description: rounded.Description,
			Note:        rounded.Note,
			Quantity:    parseDecimal(rounded.Quantity),
			UnitPrice:   rounded.UnitPrice,
			TaxRate:     parseDecimal(rounded.TaxRate),
			ExclAmount:  rounded.ExclAmount,
			TaxAmount:   rounded.TaxAmount,
			InclAmount:  rounded.InclAmount,
		}
	}
	return order, nil
}

// FormFromOrder rebuilds the editing state for a stored order: loaded
// lines as-is, amounts recomputed, no forced blank padding.
func FormFromOrder(order *entity.SalesOrder) orderform.Form {
	customerID := ""
	if order.CustomerID != nil {
		customerID = order.CustomerID.String()
	}
	header := orderform.Header{
		CustomerID:   customerID,
		CustomerName: order.CustomerName,
		Address1:     order.Address1,
		Address2:     order.Address2,
		Address3:     order.Address3,
		Suburb:       order.Suburb,
		State:        order.State,
		PostCode:     order.PostCode,
		InvoiceNo:    order.InvoiceNo,
		InvoiceDate:  order.InvoiceDate.Format(invoiceDateLayout),
		ReferenceNo:  order.ReferenceNo,
		Notes:        order.Notes,
	}
	return orderform.LoadForm(header, formLines(order.Lines))
}

// formLines maps persisted line entities back into form lines.
func formLines(lines []entity.SalesOrderLine) []orderform.Line {
	out := make([]orderform.Line, len(lines))
	for i, l := range lines {
		out[i] = orderform.Line{
			ItemCode:    l.ItemCode,
			Description: l.Description,
			Note:        l.Note,
			Quantity:    l.Quantity.String(),
			UnitPrice:   l.UnitPrice,
			TaxRate:     l.TaxRate.String(),
			ExclAmount:  l.ExclAmount,
			TaxAmount:   l.TaxAmount,
			InclAmount:  l.InclAmount,
		}
	}
	return out
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
