package handlers

import (
	"net/http"

	request "kampung_chill/internal/adapter/http/dto/request"
	response "kampung_chill/internal/adapter/http/dto/response"
	"kampung_chill/internal/domain/entities"
	"kampung_chill/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DashboardHandler serves the staff console: the full order queue, status
// moves, stock adjustments and the shop open toggle.

type DashboardHandler struct {
	usecase usecase.IShopUseCase
	log     *logrus.Logger
}

func NewDashboardHandler(uc usecase.IShopUseCase, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, log: log}
}

// ListOrders returns every order, newest first, terminal ones included.
func (h *DashboardHandler) ListOrders(c *gin.Context) {
	snap := h.usecase.Snapshot()
	c.JSON(http.StatusOK, response.FromOrders(snap.Orders))
}

func (h *DashboardHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		h.log.Warnf("[shop][handler] status update failed order=%s status=%s err=%v", id, status, err)
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ClearHistory removes finalized orders from the ledger.
func (h *DashboardHandler) ClearHistory(c *gin.Context) {
	removed, err := h.usecase.ClearHistory(c.Request.Context())
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ClearHistoryResponse{Removed: removed})
}

// AdjustStock applies a signed delta to one product's stock. The engine
// floors the result at zero.
func (h *DashboardHandler) AdjustStock(c *gin.Context) {
	id := c.Param("id")
	if _, ok := entities.CatalogProduct(id); !ok {
		appErr := mapShopError(request.ErrUnknownProduct)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	stock, err := h.usecase.UpdateStock(c.Request.Context(), id, payload.Delta)
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StockResponse{ProductID: id, Quantity: stock})
}

// RestockAll resets every catalog product to the initial stock count.
func (h *DashboardHandler) RestockAll(c *gin.Context) {
	if err := h.usecase.RestockAll(c.Request.Context()); err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DashboardHandler) ToggleShopStatus(c *gin.Context) {
	open, err := h.usecase.ToggleShopStatus(c.Request.Context())
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.log.Infof("[shop][handler] shop toggled open=%t", open)
	c.JSON(http.StatusOK, response.ShopStatusResponse{IsOpen: open})
}
