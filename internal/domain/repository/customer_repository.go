package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer reference data
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// List returns the whole customer reference list, ordered by name.
	List(ctx context.Context) ([]entity.Customer, error)
}
