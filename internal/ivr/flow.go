package ivr

import (
	"net/http"
	"time"

	"github.com/acme/ivr-voice-gateway/internal/config"
	"github.com/acme/ivr-voice-gateway/internal/voicedoc"
)

// Flow produces the voice-response document for each step of the call
// tree. It holds only immutable configuration; every inbound webhook is
// an independent, stateless unit of work.
type Flow struct {
	urls            URLs
	digitTimeout    time.Duration
	associateNumber string
	audioURL        string
}

// NewFlow builds the call flow from the IVR configuration.
func NewFlow(cfg config.IVRConfig) *Flow {
	return &Flow{
		urls:            NewURLs(cfg.BaseURL),
		digitTimeout:    cfg.DigitTimeout,
		associateNumber: cfg.AssociateNumber,
		audioURL:        cfg.AudioURL,
	}
}

// Answer greets a freshly answered call: collect one digit for the
// language choice, with a goodbye fallback if no input arrives. The
// same document is produced for every invocation; this step never
// rejects a request.
func (f *Flow) Answer() voicedoc.Document {
	return voicedoc.New(
		voicedoc.GetDigits{
			Action:         f.urls.Language(),
			Method:         http.MethodPost,
			NumDigits:      1,
			TimeoutSeconds: int(f.digitTimeout / time.Second),
			Children:       []voicedoc.Action{voicedoc.Speak{Text: promptWelcome}},
		},
		voicedoc.Speak{Text: promptNoInput},
	)
}

// SelectLanguage interprets the language digit. An invalid or missing
// digit loops back to this step; a valid one advances to the menu with
// the language encoded on the callback URL.
func (f *Flow) SelectLanguage(digit string) voicedoc.Document {
	lang := LanguageFromDigit(digit)
	if lang == LanguageUnset {
		return voicedoc.New(voicedoc.GetDigits{
			Action:    f.urls.Language(),
			Method:    http.MethodPost,
			NumDigits: 1,
			Children:  []voicedoc.Action{voicedoc.Speak{Text: promptLanguageRetry}},
		})
	}

	return voicedoc.New(voicedoc.GetDigits{
		Action:    f.urls.Menu(lang),
		Method:    http.MethodPost,
		NumDigits: 1,
		Children:  []voicedoc.Action{voicedoc.Speak{Text: prompt(menuPrompts, lang)}},
	})
}

// Menu executes the terminal tier of the tree: play the configured
// message, transfer to an associate, or re-prompt. Only the retry path
// collects further digits.
func (f *Flow) Menu(digit string, lang Language) voicedoc.Document {
	lang = lang.OrDefault()

	switch digit {
	case "1":
		return voicedoc.New(
			voicedoc.Speak{Text: prompt(listenPrompts, lang)},
			voicedoc.Play{URL: f.audioURL},
		)
	case "2":
		if f.associateNumber != "" {
			return voicedoc.New(voicedoc.Dial{Number: f.associateNumber})
		}
		return voicedoc.New(voicedoc.Speak{Text: prompt(noAssociatePrompts, lang)})
	default:
		return voicedoc.New(voicedoc.GetDigits{
			Action:    f.urls.Menu(lang),
			Method:    http.MethodPost,
			NumDigits: 1,
			Children:  []voicedoc.Action{voicedoc.Speak{Text: prompt(menuRetryPrompts, lang)}},
		})
	}
}
