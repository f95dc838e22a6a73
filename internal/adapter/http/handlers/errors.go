package handlers

import (
	"errors"
	"net/http"

	request "kampung_chill/internal/adapter/http/dto/request"
	"kampung_chill/internal/usecase"
	"kampung_chill/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapShopError translates engine and resolution errors into the HTTP error
// envelope. Precondition skips (closed shop, coming-soon product) map to 422
// so callers can tell "you may not" apart from "you asked wrong".
func mapShopError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidCartLine),
		errors.Is(err, request.ErrInvalidQuantity),
		errors.Is(err, request.ErrUnknownProduct),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, request.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShopClosed):
		return pkg.NewDomainErrorSimple("SHOP_CLOSED", "The shop is closed right now", http.StatusUnprocessableEntity)
	case errors.Is(err, request.ErrProductComingSoon):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_ORDERABLE", "This flavour is coming soon and cannot be ordered yet", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "No active order found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", "This order is already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_STATUS_TRANSITION", "Order cannot move to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
