// Package voicedoc models the voice-response document returned to the
// telephony platform: an ordered sequence of typed actions that the
// platform executes on the live call. Construction is pure; rendering
// to the platform's markup happens in render.go.
package voicedoc

// Action is one instruction in a voice-response document.
type Action interface {
	isAction()
}

// Speak reads text to the caller.
type Speak struct {
	Text string
}

func (Speak) isAction() {}

// Play streams an audio file to the caller.
type Play struct {
	URL string
}

func (Play) isAction() {}

// Dial bridges the call to another phone number.
type Dial struct {
	Number string
}

func (Dial) isAction() {}

// GetDigits collects DTMF input and posts it to Action. Children run
// while the platform waits for input; if no digit arrives within the
// timeout and RedirectOnTimeout is false, execution falls through to
// the next action in the document.
type GetDigits struct {
	Action            string
	Method            string
	NumDigits         int
	TimeoutSeconds    int
	RedirectOnTimeout bool
	Children          []Action
}

func (GetDigits) isAction() {}

// Document is an ordered voice-response document. Exactly one document
// is produced per inbound webhook.
type Document struct {
	Actions []Action
}

// New assembles a document from actions in execution order.
func New(actions ...Action) Document {
	return Document{Actions: actions}
}
