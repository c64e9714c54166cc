package call

import (
	"context"
	"errors"
	"testing"

	"github.com/acme/ivr-voice-gateway/internal/ivr"
	"github.com/acme/ivr-voice-gateway/internal/telephony"
	"github.com/acme/ivr-voice-gateway/internal/telephony/mock"
	apperrors "github.com/acme/ivr-voice-gateway/pkg/errors"
	"github.com/acme/ivr-voice-gateway/pkg/logger"
)

func newTestService(provider *mock.Provider, fromNumber string) *Service {
	return NewService(provider, ivr.NewURLs("https://example.ngrok.app"), fromNumber, logger.NewNop())
}

func TestInitiateCallMissingDestination(t *testing.T) {
	provider := mock.NewProvider()
	svc := newTestService(provider, "+15550001111")

	_, err := svc.InitiateCall(context.Background(), InitiateCallInput{To: ""})
	if !apperrors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := len(provider.Calls()); n != 0 {
		t.Fatalf("provider must not be invoked on validation failure, got %d calls", n)
	}
}

func TestInitiateCallMissingOriginNumber(t *testing.T) {
	provider := mock.NewProvider()
	svc := newTestService(provider, "")

	_, err := svc.InitiateCall(context.Background(), InitiateCallInput{To: "+15552223333"})
	if !apperrors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if n := len(provider.Calls()); n != 0 {
		t.Fatalf("provider must not be invoked without an origin number, got %d calls", n)
	}
}

func TestInitiateCallSuccess(t *testing.T) {
	provider := mock.NewProvider()
	provider.Result = telephony.Result{CallID: "CA123"}
	svc := newTestService(provider, "+15550001111")

	result, err := svc.InitiateCall(context.Background(), InitiateCallInput{To: "+15552223333"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Call initiated" || result.CallID != "CA123" {
		t.Errorf("unexpected result: %+v", result)
	}

	calls := provider.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected exactly one origination attempt, got %d", len(calls))
	}
	input := calls[0]
	if input.From != "+15550001111" || input.To != "+15552223333" {
		t.Errorf("unexpected numbers: %+v", input)
	}
	if input.AnswerURL != "https://example.ngrok.app/answer" {
		t.Errorf("unexpected answer URL: %q", input.AnswerURL)
	}
	if input.AnswerMethod != "POST" {
		t.Errorf("unexpected answer method: %q", input.AnswerMethod)
	}
}

func TestInitiateCallProviderFailureIsTerminal(t *testing.T) {
	provider := mock.NewProvider()
	provider.Err = &telephony.ProviderError{
		Message:    "The 'To' number is not a valid phone number.",
		StatusCode: 400,
		StatusText: "Bad Request",
		ErrorCode:  21211,
		MoreInfo:   "https://www.twilio.com/docs/errors/21211",
	}
	svc := newTestService(provider, "+15550001111")

	_, err := svc.InitiateCall(context.Background(), InitiateCallInput{To: "12345"})

	var provErr *telephony.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if provErr.ErrorCode != 21211 || provErr.StatusCode != 400 {
		t.Errorf("diagnostic fields lost: %+v", provErr)
	}
	if n := len(provider.Calls()); n != 1 {
		t.Fatalf("expected a single attempt with no retry, got %d", n)
	}
}
