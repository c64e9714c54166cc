package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/acme/ivr-voice-gateway/internal/telephony"
	"github.com/acme/ivr-voice-gateway/internal/telephony/mock"
)

func makeCallRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/make-call", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, body string) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("invalid JSON response %q: %v", body, err)
	}
	return out
}

func TestMakeCallSuccess(t *testing.T) {
	provider := mock.NewProvider()
	provider.Result = telephony.Result{CallID: "CA1234567890"}
	fiberApp := newTestApp(newTestConfig(""), provider)

	status, body := doRequest(t, fiberApp, makeCallRequest(`{"to":"+15552223333"}`))
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	resp := decodeJSON(t, body)
	if resp["message"] != "Call initiated" || resp["callId"] != "CA1234567890" {
		t.Errorf("unexpected response: %v", resp)
	}

	calls := provider.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected one origination attempt, got %d", len(calls))
	}
	if calls[0].AnswerURL != "https://example.ngrok.app/answer" {
		t.Errorf("unexpected answer URL: %q", calls[0].AnswerURL)
	}
}

func TestMakeCallMissingDestination(t *testing.T) {
	provider := mock.NewProvider()
	fiberApp := newTestApp(newTestConfig(""), provider)

	for _, body := range []string{`{}`, `{"to":""}`} {
		status, respBody := doRequest(t, fiberApp, makeCallRequest(body))
		if status != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d", body, status)
		}
		resp := decodeJSON(t, respBody)
		if resp["error"] != "Missing 'to' phone number" {
			t.Errorf("body %q: unexpected error message: %v", body, resp["error"])
		}
	}

	if n := len(provider.Calls()); n != 0 {
		t.Fatalf("origination must not be attempted on validation failure, got %d calls", n)
	}
}

func TestMakeCallMissingOriginNumber(t *testing.T) {
	provider := mock.NewProvider()
	cfg := newTestConfig("")
	cfg.Telephony.FromNumber = ""
	fiberApp := newTestApp(cfg, provider)

	status, body := doRequest(t, fiberApp, makeCallRequest(`{"to":"+15552223333"}`))
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", status, body)
	}
	resp := decodeJSON(t, body)
	errMsg, _ := resp["error"].(string)
	if !strings.Contains(errMsg, "not set") {
		t.Errorf("unexpected error message: %v", resp["error"])
	}
	if n := len(provider.Calls()); n != 0 {
		t.Fatalf("origination must not be attempted without an origin number, got %d calls", n)
	}
}

func TestMakeCallProviderFailure(t *testing.T) {
	provider := mock.NewProvider()
	provider.Err = &telephony.ProviderError{
		Message:    "The 'To' number is not a valid phone number.",
		StatusCode: 400,
		StatusText: "Bad Request",
		ErrorCode:  21211,
		MoreInfo:   "https://www.twilio.com/docs/errors/21211",
	}
	fiberApp := newTestApp(newTestConfig(""), provider)

	status, body := doRequest(t, fiberApp, makeCallRequest(`{"to":"12345"}`))
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", status, body)
	}

	resp := decodeJSON(t, body)
	if resp["error"] != "Call failed" {
		t.Errorf("unexpected error field: %v", resp["error"])
	}
	if resp["providerMessage"] != "The 'To' number is not a valid phone number." {
		t.Errorf("provider message lost: %v", resp["providerMessage"])
	}
	if resp["status"] != float64(400) || resp["statusText"] != "Bad Request" {
		t.Errorf("provider status lost: %v %v", resp["status"], resp["statusText"])
	}
	if resp["errorCode"] != float64(21211) {
		t.Errorf("provider error code lost: %v", resp["errorCode"])
	}
	if resp["details"] != "https://www.twilio.com/docs/errors/21211" {
		t.Errorf("provider detail lost: %v", resp["details"])
	}

	if n := len(provider.Calls()); n != 1 {
		t.Fatalf("expected a single attempt with no retry, got %d", n)
	}
}

func TestMakeCallRejectsMalformedBody(t *testing.T) {
	provider := mock.NewProvider()
	fiberApp := newTestApp(newTestConfig(""), provider)

	status, _ := doRequest(t, fiberApp, makeCallRequest(`{`))
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if n := len(provider.Calls()); n != 0 {
		t.Fatalf("origination must not be attempted for malformed bodies, got %d calls", n)
	}
}
