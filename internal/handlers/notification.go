package handlers

import (
	"errors"
	"strings"

	"paygate/internal/logger"
	"paygate/internal/services/provider"
	"paygate/internal/services/reconciliation"
	"paygate/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler receives the provider callbacks: the server to server
// notification (IPN) and the buyer's browser coming back (DPN, cancel).
type NotificationHandler struct {
	reconciler reconciliation.Service
	providers  reconciliation.ProviderRegistry
}

func NewNotificationHandler(reconciler reconciliation.Service, providers reconciliation.ProviderRegistry) *NotificationHandler {
	if reconciler == nil {
		panic("reconciliation service is required")
	}
	if providers == nil {
		panic("provider registry is required")
	}
	return &NotificationHandler{reconciler: reconciler, providers: providers}
}

// HandleIPN answers 200 with an empty body once the notification is
// processed, refused or ignored. The provider retries anything else.
func (h *NotificationHandler) HandleIPN(c *fiber.Ctx) error {
	name := c.Params("provider")
	n := parseNotification(c)

	_, err := h.reconciler.HandleNotification(c.UserContext(), name, n)
	if err != nil && !errors.Is(err, reconciliation.ErrInvalidNotification) {
		return notificationError(c, name, err)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// HandleDPN processes the data the buyer's browser brings back, then sends
// the buyer to the return URL chosen at checkout.
func (h *NotificationHandler) HandleDPN(c *fiber.Ctx) error {
	name := c.Params("provider")
	n := parseNotification(c)

	_, err := h.reconciler.HandleNotification(c.UserContext(), name, n)
	if err != nil && !errors.Is(err, reconciliation.ErrInvalidNotification) {
		if errors.Is(err, provider.ErrUnknownProvider) {
			return response.NotFound(c, err.Error())
		}
		// the buyer is sent back anyway; the IPN carries the same data
		logger.FromContext(c.UserContext()).Warn("return data not processed", "provider", name, "error", err)
	}

	return c.Redirect(h.returnURL(name, n), fiber.StatusFound)
}

// HandleCancel sends the buyer back to the shop.
func (h *NotificationHandler) HandleCancel(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusFound)
}

func (h *NotificationHandler) returnURL(name string, n provider.Notification) string {
	p, err := h.providers.Get(name)
	if err != nil {
		return "/"
	}
	if r, ok := p.(provider.ReturnURLResolver); ok {
		if u := r.ReturnURL(n); isLocalPath(u) {
			return u
		}
	}
	return "/"
}

// isLocalPath reports whether u stays on this host. The custom field comes
// back through the buyer's browser and cannot be trusted with an absolute URL.
func isLocalPath(u string) bool {
	return strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//") && !strings.HasPrefix(u, "/\\")
}

func notificationError(c *fiber.Ctx, name string, err error) error {
	log := logger.FromContext(c.UserContext())

	var verr *provider.ValidationError
	switch {
	case errors.As(err, &verr):
		return response.BadRequest(c, verr.Error())
	case errors.Is(err, provider.ErrUnknownProvider):
		return response.NotFound(c, err.Error())
	default:
		log.Error("notification processing failed", "provider", name, "error", err)
		return response.ServerError(c, "Failed to process notification")
	}
}

// parseNotification merges query string and form body; body values win.
func parseNotification(c *fiber.Ctx) provider.Notification {
	n := provider.Notification{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		n[string(key)] = string(value)
	})
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		n[string(key)] = string(value)
	})
	return n
}
