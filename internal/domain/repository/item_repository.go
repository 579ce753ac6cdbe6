package repository

import (
	"context"

	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
)

// ItemRepository defines the interface for catalog item reference data
type ItemRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	// List returns the whole catalog, ordered by code.
	List(ctx context.Context) ([]entity.Item, error)
}
