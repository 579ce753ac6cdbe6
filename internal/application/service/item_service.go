package service

import (
	"context"

	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
	"github.com/salesdesk/salesdesk-api/internal/domain/repository"
	"github.com/salesdesk/salesdesk-api/pkg/apperror"
)

// ItemService exposes the catalog item reference data
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// ListItems returns the full catalog, ordered by code
func (s *ItemService) ListItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.List(ctx)
}

// GetItem retrieves a single catalog item by its code
func (s *ItemService) GetItem(ctx context.Context, code string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// catalogViews maps catalog entities into the order form's immutable view.
func catalogViews(items []entity.Item) []orderform.CatalogItem {
	views := make([]orderform.CatalogItem, len(items))
	for i, item := range items {
		views[i] = orderform.CatalogItem{
			Code:        item.Code,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
		}
	}
	return views
}
