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

// OrderHandler serves the customer order flow: checkout, lookup and the
// active-order receipt pointer.

type OrderHandler struct {
	usecase usecase.IShopUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.IShopUseCase, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, log: log}
}

// PlaceOrder checks out a cart.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	lines, err := payload.ResolveCartLines()
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.PlaceOrder(c.Request.Context(), payload.CustomerName, payload.CustomerPhone, lines)
	if err != nil {
		h.log.Warnf("[shop][handler] place order failed customer=%s err=%v", payload.CustomerName, err)
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// LookupOrder finds an order by code (?code=, "#" and case tolerated) or by
// phone number (?phone=, digit-normalized, most recent match).
func (h *OrderHandler) LookupOrder(c *gin.Context) {
	code := c.Query("code")
	phone := c.Query("phone")
	if (code == "") == (phone == "") {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	var (
		order entities.Order
		err   error
	)
	if code != "" {
		order, err = h.usecase.FindOrder(code)
	} else {
		order, err = h.usecase.FindOrderByPhone(phone)
	}
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetActiveOrder returns the order this client set as its live receipt. A
// pointer at a finalized order has already been cleared engine-side.
func (h *OrderHandler) GetActiveOrder(c *gin.Context) {
	order, found, err := h.usecase.ActiveOrder(c.Request.Context())
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !found {
		appErr := mapShopError(usecase.ErrOrderNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) SetActiveOrder(c *gin.Context) {
	var payload request.SetActiveOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SetActiveOrder(c.Request.Context(), payload.OrderID)
	if err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ClearActiveOrder(c *gin.Context) {
	if err := h.usecase.ClearActiveOrder(c.Request.Context()); err != nil {
		appErr := mapShopError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
