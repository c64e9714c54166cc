// Package call coordinates outbound call origination.
package call

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/acme/ivr-voice-gateway/internal/ivr"
	"github.com/acme/ivr-voice-gateway/internal/telephony"
	apperrors "github.com/acme/ivr-voice-gateway/pkg/errors"
	"github.com/acme/ivr-voice-gateway/pkg/logger"
)

// Service validates outbound-call requests and submits them to the
// telephony platform.
type Service struct {
	originator telephony.Originator
	urls       ivr.URLs
	fromNumber string
	log        *logger.Logger
}

// NewService builds the call initiation service.
func NewService(originator telephony.Originator, urls ivr.URLs, fromNumber string, log *logger.Logger) *Service {
	return &Service{
		originator: originator,
		urls:       urls,
		fromNumber: fromNumber,
		log:        log,
	}
}

// InitiateCallInput encapsulates the arguments for initiating a call.
type InitiateCallInput struct {
	To string
}

// InitiateCallResult is returned to the API caller on success.
type InitiateCallResult struct {
	Message string
	CallID  string
}

// InitiateCall validates the request and submits exactly one
// origination attempt, with the answer webhook as the callback. The
// provider is not invoked when validation fails. Provider failures are
// returned with their full diagnostic detail; retrying is the caller's
// responsibility.
func (s *Service) InitiateCall(ctx context.Context, input InitiateCallInput) (*InitiateCallResult, error) {
	if input.To == "" {
		return nil, fmt.Errorf("%w: missing 'to' phone number", apperrors.ErrValidation)
	}
	if s.fromNumber == "" {
		return nil, fmt.Errorf("%w: telephony from number not set", apperrors.ErrConfiguration)
	}

	result, err := s.originator.PlaceCall(ctx, telephony.OriginateInput{
		From:         s.fromNumber,
		To:           input.To,
		AnswerURL:    s.urls.Answer(),
		AnswerMethod: http.MethodPost,
	})
	if err != nil {
		var provErr *telephony.ProviderError
		if errors.As(err, &provErr) {
			s.log.Error("call origination rejected",
				zap.String("to", input.To),
				zap.String("provider_message", provErr.Message),
				zap.Int("status", provErr.StatusCode),
				zap.String("status_text", provErr.StatusText),
				zap.Int("error_code", provErr.ErrorCode),
				zap.String("more_info", provErr.MoreInfo),
			)
		}
		return nil, err
	}

	s.log.Info("call initiated",
		zap.String("to", input.To),
		zap.String("call_id", result.CallID),
	)

	return &InitiateCallResult{Message: "Call initiated", CallID: result.CallID}, nil
}
