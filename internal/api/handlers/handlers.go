package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/acme/ivr-voice-gateway/internal/app"
	"github.com/acme/ivr-voice-gateway/internal/ivr"
	callsvc "github.com/acme/ivr-voice-gateway/internal/service/call"
	apperrors "github.com/acme/ivr-voice-gateway/pkg/errors"
)

// HandlerSet bundles all HTTP handlers.
type HandlerSet struct {
	container *app.Container
	flow      *ivr.Flow
	calls     *callsvc.Service
}

// NewHandlerSet creates a new handler bundle.
func NewHandlerSet(container *app.Container) *HandlerSet {
	return &HandlerSet{
		container: container,
		flow:      container.Flow,
		calls:     container.Calls,
	}
}

// Register wires all routes onto the fiber app. The /answer webhook
// accepts any method because the platform may fetch it with GET or
// POST.
func (h *HandlerSet) Register(app *fiber.App) {
	app.Get("/healthz", h.health)

	app.Post("/make-call", h.makeCall)
	app.All("/answer", h.answer)

	ivrGroup := app.Group("/ivr")
	ivrGroup.Post("/language", h.selectLanguage)
	ivrGroup.Post("/menu", h.menu)
}

// ErrorHandler provides centralized error responses.
func (h *HandlerSet) ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if fiberErr, ok := err.(*fiber.Error); ok {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if apperrors.Is(err, apperrors.ErrValidation) {
		code = fiber.StatusBadRequest
	}

	if code == fiber.StatusInternalServerError {
		h.container.Logger.Error("request failed", zap.Error(err))
	}

	return ctx.Status(code).JSON(fiber.Map{"error": message})
}

func (h *HandlerSet) health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":  "ok",
		"app":     h.container.Config.App.Name,
		"env":     h.container.Config.App.Env,
		"version": h.container.Config.App.Version,
	})
}
