package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/apexflow/apexflow/internal/api/handler/v1/request"
	"github.com/apexflow/apexflow/internal/api/handler/v1/response"
	"github.com/apexflow/apexflow/internal/domain"
	"github.com/apexflow/apexflow/internal/service"
)

type InventoryService interface {
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)
	CreateItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id uint, delta int) (domain.InventoryItem, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List all inventory items
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   domain.InventoryItem
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /inventory [get]
// @Security     BearerAuth
func (h *InventoryHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleCreateItem godoc
// @Summary      Register a new inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateItemRequest true "request body"
// @Success      201      {object}   domain.InventoryItem
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory [post]
// @Security     BearerAuth
func (h *InventoryHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	item := domain.InventoryItem{
		SKU:      req.SKU,
		Name:     req.Name,
		Quantity: int(req.Quantity),
		Status:   req.Status,
	}

	created, err := h.svc.CreateItem(ctx.Request.Context(), item)
	if err != nil {
		if errors.Is(err, service.ErrItemSKUExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrItemSKUExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleAdjustQuantity godoc
// @Summary      Adjust an item's quantity by a signed delta
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        itemID    path       integer true "item ID"
// @Param        request   body       request.AdjustQuantityRequest true "request body"
// @Success      200      {object}   domain.InventoryItem
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /inventory/{itemID}/adjust [patch]
// @Security     BearerAuth
func (h *InventoryHandler) HandleAdjustQuantity(ctx *gin.Context) {
	rawItemID := ctx.Param("itemID")
	itemID, err := strconv.ParseUint(rawItemID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid item ID %v", rawItemID)))

		return
	}

	var req request.AdjustQuantityRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.AdjustQuantity(ctx.Request.Context(), uint(itemID), *req.Adjustment)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("inventory item", "ID", itemID))

			return
		}

		err = fmt.Errorf("v1.HandleAdjustQuantity -> h.svc.AdjustQuantity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}
