// Package mock provides a scripted Originator for tests.
package mock

import (
	"context"
	"sync"

	"github.com/acme/ivr-voice-gateway/internal/telephony"
)

// Provider records every origination input and returns whatever outcome
// it was primed with.
type Provider struct {
	mu     sync.Mutex
	inputs []telephony.OriginateInput

	Result telephony.Result
	Err    error
}

// NewProvider builds an empty scripted provider that succeeds with a
// zero Result until primed otherwise.
func NewProvider() *Provider {
	return &Provider{}
}

// PlaceCall records the input and replays the scripted outcome.
func (p *Provider) PlaceCall(_ context.Context, input telephony.OriginateInput) (telephony.Result, error) {
	p.mu.Lock()
	p.inputs = append(p.inputs, input)
	p.mu.Unlock()

	if p.Err != nil {
		return telephony.Result{}, p.Err
	}
	return p.Result, nil
}

// Calls returns a copy of the recorded origination inputs.
func (p *Provider) Calls() []telephony.OriginateInput {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]telephony.OriginateInput, len(p.inputs))
	copy(out, p.inputs)
	return out
}
