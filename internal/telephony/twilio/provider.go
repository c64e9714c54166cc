// Package twilio places outbound calls through the Twilio REST API.
package twilio

import (
	"context"
	"errors"
	"net/http"

	twilioapi "github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/acme/ivr-voice-gateway/internal/config"
	"github.com/acme/ivr-voice-gateway/internal/telephony"
)

// Provider implements telephony.Originator against the Twilio API.
type Provider struct {
	client *twilioapi.RestClient
}

// NewProvider builds a Twilio-backed originator from the platform
// credentials.
func NewProvider(cfg config.TelephonyConfig) *Provider {
	return &Provider{
		client: twilioapi.NewRestClientWithParams(twilioapi.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
	}
}

// PlaceCall submits a single origination request. There is no retry and
// no timeout beyond what the SDK's HTTP client imposes.
func (p *Provider) PlaceCall(_ context.Context, input telephony.OriginateInput) (telephony.Result, error) {
	params := &openapi.CreateCallParams{}
	params.SetFrom(input.From)
	params.SetTo(input.To)
	params.SetUrl(input.AnswerURL)
	params.SetMethod(input.AnswerMethod)

	call, err := p.client.Api.CreateCall(params)
	if err != nil {
		return telephony.Result{}, normalizeError(err)
	}

	result := telephony.Result{}
	if call.Sid != nil {
		result.CallID = *call.Sid
	}
	return result, nil
}

// normalizeError converts SDK errors into the provider error shape,
// keeping every diagnostic field the platform returned. Transport-level
// failures carry only a message.
func normalizeError(err error) *telephony.ProviderError {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return &telephony.ProviderError{
			Message:    restErr.Message,
			StatusCode: restErr.Status,
			StatusText: http.StatusText(restErr.Status),
			ErrorCode:  restErr.Code,
			MoreInfo:   restErr.MoreInfo,
		}
	}
	return &telephony.ProviderError{Message: err.Error()}
}
