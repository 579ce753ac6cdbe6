package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdesk/salesdesk-api/internal/application/service"
	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/pkg/apperror"
)

func newTestItemService() *service.ItemService {
	return service.NewItemService(&fakeItemRepo{items: []entity.Item{
		{Code: "ITEM001", Description: "Laptop Pro", UnitPrice: dec("1500.00")},
		{Code: "ITEM002", Description: "Wireless Mouse", UnitPrice: dec("39.95")},
	}})
}

func TestItemService_GetItem(t *testing.T) {
	svc := newTestItemService()

	t.Run("returns the item for a known code", func(t *testing.T) {
		item, err := svc.GetItem(context.Background(), "ITEM002")

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Wireless Mouse", item.Description)
		assert.True(t, item.UnitPrice.Equal(dec("39.95")))
	})

	t.Run("returns not found for an unknown code", func(t *testing.T) {
		_, err := svc.GetItem(context.Background(), "ITEM999")

		require.Error(t, err)
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestItemService_ListItems(t *testing.T) {
	svc := newTestItemService()

	items, err := svc.ListItems(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
}
