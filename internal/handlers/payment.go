package handlers

import (
	"errors"

	"paygate/internal/logger"
	"paygate/internal/services/payment"
	"paygate/internal/services/provider"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	if paymentService == nil {
		panic("payment service is required")
	}
	return &PaymentHandler{paymentService: paymentService}
}

// PrepareRedirect returns the form a checkout page posts to the provider.
func (h *PaymentHandler) PrepareRedirect(c *fiber.Ctx) error {
	var req payment.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	form, err := h.paymentService.PrepareRedirect(c.UserContext(), c.Params("provider"), req)
	if err != nil {
		return paymentError(c, err)
	}

	return response.Success(c, "Redirect form prepared", form)
}

// GetTransactionStatus returns the current state of a transaction.
func (h *PaymentHandler) GetTransactionStatus(c *fiber.Ctx) error {
	view, err := h.paymentService.GetTransactionStatus(c.UserContext(), c.Params("reference"))
	if err != nil {
		return paymentError(c, err)
	}
	return response.Success(c, "Transaction retrieved", view)
}

func paymentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payment.ErrInvalidRequest):
		return response.ValidationError(c, err.Error())
	case errors.Is(err, provider.ErrUnknownProvider),
		errors.Is(err, payment.ErrTransactionNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, payment.ErrAmbiguousReference),
		errors.Is(err, payment.ErrInvalidState),
		errors.Is(err, payment.ErrProviderMismatch),
		errors.Is(err, payment.ErrInvalidAmount):
		return response.Conflict(c, err.Error())
	default:
		logger.FromContext(c.UserContext()).Error("payment request failed", "path", c.Path(), "error", err)
		return response.ServerError(c, "Internal server error")
	}
}
