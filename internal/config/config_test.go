package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
ivr:
  base_url: "https://example.ngrok.app"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.IVR.AudioURL != "http://demo.twilio.com/docs/classic.mp3" {
		t.Errorf("default audio URL not applied: %q", cfg.IVR.AudioURL)
	}
	if cfg.IVR.DigitTimeout != 10*time.Second {
		t.Errorf("default digit timeout not applied: %v", cfg.IVR.DigitTimeout)
	}
	if cfg.HTTP.Port != 3000 {
		t.Errorf("default port not applied: %d", cfg.HTTP.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
ivr:
  base_url: "https://example.ngrok.app"
  audio_url: "https://cdn.example.com/custom.mp3"
  associate_number: "+15557770000"
telephony:
  from_number: "+15550001111"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IVR.AudioURL != "https://cdn.example.com/custom.mp3" {
		t.Errorf("audio URL override lost: %q", cfg.IVR.AudioURL)
	}
	if cfg.IVR.AssociateNumber != "+15557770000" {
		t.Errorf("associate number lost: %q", cfg.IVR.AssociateNumber)
	}
	if cfg.Telephony.FromNumber != "+15550001111" {
		t.Errorf("from number lost: %q", cfg.Telephony.FromNumber)
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
app:
  name: ivr-voice-gateway
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing ivr.base_url")
	}
}

func TestValidateRejectsRelativeBaseURL(t *testing.T) {
	cfg := &Config{IVR: IVRConfig{BaseURL: "/answer"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for relative base URL")
	}
}
