package app

import (
	"github.com/acme/ivr-voice-gateway/internal/config"
	"github.com/acme/ivr-voice-gateway/internal/ivr"
	callsvc "github.com/acme/ivr-voice-gateway/internal/service/call"
	"github.com/acme/ivr-voice-gateway/internal/telephony"
	"github.com/acme/ivr-voice-gateway/internal/telephony/twilio"
	"github.com/acme/ivr-voice-gateway/pkg/logger"
)

// Container wires together the immutable process-wide dependencies.
// Everything here is constructed once at startup and never mutated;
// handlers receive it explicitly instead of reading ambient globals.
type Container struct {
	Config    *config.Config
	Logger    *logger.Logger
	Telephony telephony.Originator
	Flow      *ivr.Flow
	Calls     *callsvc.Service
}

// Build constructs a container for the given configuration path. A
// configuration that fails validation (such as a missing base callback
// URL) is a startup error; the process must not serve requests.
func Build(configPath string) (*Container, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	lg, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, err
	}

	provider := twilio.NewProvider(cfg.Telephony)
	flow := ivr.NewFlow(cfg.IVR)
	calls := callsvc.NewService(provider, ivr.NewURLs(cfg.IVR.BaseURL), cfg.Telephony.FromNumber, lg)

	return &Container{
		Config:    cfg,
		Logger:    lg,
		Telephony: provider,
		Flow:      flow,
		Calls:     calls,
	}, nil
}

// Close releases held resources.
func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Sync()
	}
}
