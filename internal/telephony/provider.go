// Package telephony abstracts the platform's call-origination API
// behind an explicit, synchronous result type.
package telephony

import (
	"context"
	"fmt"
)

// OriginateInput carries everything needed to place one outbound call.
type OriginateInput struct {
	From         string
	To           string
	AnswerURL    string
	AnswerMethod string
}

// Result is the successful outcome of an origination attempt.
type Result struct {
	// CallID is the provider-assigned identifier for the new call.
	CallID string
}

// ProviderError preserves the full diagnostic shape of a platform
// rejection. Operators need every field to diagnose provider-side
// failures such as bad number formats or insufficient balance.
type ProviderError struct {
	Message    string
	StatusCode int
	StatusText string
	ErrorCode  int
	MoreInfo   string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("telephony: %s (status %d %s, code %d)", e.Message, e.StatusCode, e.StatusText, e.ErrorCode)
	}
	return "telephony: " + e.Message
}

// Originator abstracts the telephony platform's call-origination
// capability. Implementations make exactly one attempt per invocation;
// retry policy belongs to the caller.
type Originator interface {
	PlaceCall(ctx context.Context, input OriginateInput) (Result, error)
}
