package ivr

import (
	"net/url"
	"strings"
)

// LangQueryParam is the query parameter that carries the language
// selection between webhook exchanges. The platform echoes the callback
// URL back verbatim, so this parameter is the only cross-request state
// the gateway has.
const LangQueryParam = "lang"

// URLs builds the callback URLs handed to the telephony platform. It is
// the single owner of the path and query shape so that encoding and
// decoding cannot drift apart.
type URLs struct {
	base string
}

// NewURLs wraps the public base URL the platform calls back on.
func NewURLs(baseURL string) URLs {
	return URLs{base: strings.TrimRight(baseURL, "/")}
}

// Answer is the webhook invoked when an outbound call is answered.
func (u URLs) Answer() string {
	return u.base + "/answer"
}

// Language is the webhook that receives the language-selection digit.
func (u URLs) Language() string {
	return u.base + "/ivr/language"
}

// Menu is the webhook that receives the second-level menu digit. The
// language is embedded as a query parameter when set and omitted
// otherwise.
func (u URLs) Menu(lang Language) string {
	menu := u.base + "/ivr/menu"
	if lang == LanguageUnset {
		return menu
	}
	q := url.Values{}
	q.Set(LangQueryParam, string(lang))
	return menu + "?" + q.Encode()
}
