package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/acme/ivr-voice-gateway/internal/ivr"
	"github.com/acme/ivr-voice-gateway/internal/voicedoc"
)

// dtmfEvent is the webhook body the platform posts after collecting
// digits. A missing or malformed body decodes as an empty digit, which
// the flow treats as invalid input — the webhook never fails.
type dtmfEvent struct {
	Digits string `json:"Digits" form:"Digits"`
}

func parseDTMF(ctx *fiber.Ctx) dtmfEvent {
	var event dtmfEvent
	if err := ctx.BodyParser(&event); err != nil {
		return dtmfEvent{}
	}
	return event
}

func (h *HandlerSet) answer(ctx *fiber.Ctx) error {
	h.container.Logger.Info("answer webhook",
		zap.String("call_id", ctx.FormValue("CallSid")),
	)
	return h.sendDocument(ctx, h.flow.Answer())
}

func (h *HandlerSet) selectLanguage(ctx *fiber.Ctx) error {
	event := parseDTMF(ctx)
	h.container.Logger.Info("language webhook",
		zap.String("digits", event.Digits),
	)
	return h.sendDocument(ctx, h.flow.SelectLanguage(event.Digits))
}

func (h *HandlerSet) menu(ctx *fiber.Ctx) error {
	event := parseDTMF(ctx)
	lang := ivr.ParseLanguage(ctx.Query(ivr.LangQueryParam))
	h.container.Logger.Info("menu webhook",
		zap.String("digits", event.Digits),
		zap.String("lang", string(lang)),
	)
	return h.sendDocument(ctx, h.flow.Menu(event.Digits, lang))
}

func (h *HandlerSet) sendDocument(ctx *fiber.Ctx, doc voicedoc.Document) error {
	body, err := voicedoc.RenderTwiML(doc)
	if err != nil {
		return fmt.Errorf("render voice response: %w", err)
	}
	ctx.Set(fiber.HeaderContentType, "text/xml")
	return ctx.SendString(body)
}
