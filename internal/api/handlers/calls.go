package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	callsvc "github.com/acme/ivr-voice-gateway/internal/service/call"
	"github.com/acme/ivr-voice-gateway/internal/telephony"
	apperrors "github.com/acme/ivr-voice-gateway/pkg/errors"
)

// outboundCallRequest is the /make-call request body.
type outboundCallRequest struct {
	To string `json:"to" form:"to"`
}

func (h *HandlerSet) makeCall(ctx *fiber.Ctx) error {
	var req outboundCallRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.calls.InitiateCall(ctx.Context(), callsvc.InitiateCallInput{To: req.To})
	if err != nil {
		return h.translateCallError(ctx, err)
	}

	span := trace.SpanFromContext(ctx.UserContext())
	span.SetAttributes(attribute.String("telephony.call_id", result.CallID))

	return ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": result.Message,
		"callId":  result.CallID,
	})
}

// translateCallError maps call-initiation failures onto the API error
// contract. Provider rejections are surfaced with every diagnostic
// field instead of being swallowed.
func (h *HandlerSet) translateCallError(ctx *fiber.Ctx, err error) error {
	var provErr *telephony.ProviderError
	if errors.As(err, &provErr) {
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error":           "Call failed",
			"providerMessage": provErr.Message,
			"status":          provErr.StatusCode,
			"statusText":      provErr.StatusText,
			"errorCode":       provErr.ErrorCode,
			"details":         provErr.MoreInfo,
		})
	}

	switch {
	case apperrors.Is(err, apperrors.ErrValidation):
		return ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'to' phone number",
		})
	case apperrors.Is(err, apperrors.ErrConfiguration):
		return ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Telephony from number not set",
		})
	default:
		return err
	}
}
