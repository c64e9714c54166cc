// Package ivr implements the call-flow state machine: one voice-response
// document per inbound webhook, with the caller's language selection as
// the only conversation state, carried on the callback URL.
package ivr

// Language identifies the caller's selected menu language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageUnset   Language = ""
)

// LanguageFromDigit maps a DTMF digit to a language selection. Anything
// other than "1" or "2", including an empty digit, is unset.
func LanguageFromDigit(digit string) Language {
	switch digit {
	case "1":
		return LanguageEnglish
	case "2":
		return LanguageSpanish
	default:
		return LanguageUnset
	}
}

// ParseLanguage decodes a language value carried on a callback URL.
// Missing or unrecognized values decode as unset, never as an error.
func ParseLanguage(value string) Language {
	switch Language(value) {
	case LanguageEnglish:
		return LanguageEnglish
	case LanguageSpanish:
		return LanguageSpanish
	default:
		return LanguageUnset
	}
}

// OrDefault resolves an unset language to English.
func (l Language) OrDefault() Language {
	if l == LanguageUnset {
		return LanguageEnglish
	}
	return l
}
