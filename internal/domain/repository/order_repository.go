package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/pkg/pagination"
)

// OrderRepository defines the interface for sales order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.SalesOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)
	// Update saves the order header and replaces its lines wholesale.
	Update(ctx context.Context, order *entity.SalesOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.SalesOrder, int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
