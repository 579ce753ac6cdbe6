package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salesdesk/salesdesk-api/internal/application/service"
	"github.com/salesdesk/salesdesk-api/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing the full catalog
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved successfully", items)
}

// Get handles retrieving a single catalog item by code
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.itemService.GetItem(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}
