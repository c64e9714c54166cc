package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures the full configuration surface for the application.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Telephony TelephonyConfig `mapstructure:"telephony"`
	IVR       IVRConfig       `mapstructure:"ivr"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type TelemetryConfig struct {
	Endpoint       string  `mapstructure:"endpoint"`
	SampleRatio    float64 `mapstructure:"sample_ratio"`
	TracingEnabled bool    `mapstructure:"tracing_enabled"`
}

// TelephonyConfig holds platform credentials and the caller identity.
// FromNumber may be left empty; its absence is reported per request,
// not at startup.
type TelephonyConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
}

// IVRConfig holds the call-flow settings. BaseURL is the publicly
// reachable root that the platform calls back on and is required.
type IVRConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	AssociateNumber string        `mapstructure:"associate_number"`
	AudioURL        string        `mapstructure:"audio_url"`
	DigitTimeout    time.Duration `mapstructure:"digit_timeout"`
}

// Load reads configuration from file and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvPrefix("IVRGW")
	v.SetEnvKeyReplacer(NewEnvReplacer())

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ivr-voice-gateway")
	v.SetDefault("app.env", "development")
	v.SetDefault("http.port", 3000)
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 15*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("ivr.audio_url", "http://demo.twilio.com/docs/classic.mp3")
	v.SetDefault("ivr.digit_timeout", 10*time.Second)
	v.SetDefault("telemetry.sample_ratio", 1.0)
}

// Validate enforces the settings the process cannot start without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.IVR.BaseURL) == "" {
		return fmt.Errorf("config: ivr.base_url is required")
	}
	u, err := url.Parse(c.IVR.BaseURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("config: ivr.base_url must be an absolute URL, got %q", c.IVR.BaseURL)
	}
	return nil
}

// NewEnvReplacer standardizes environment variable names.
func NewEnvReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_", "-", "_")
}
