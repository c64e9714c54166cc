package voicedoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// The wire format is TwiML. Only the verbs the call flow needs are
// mapped; the logical Document is the contract, the markup is not.

type xmlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any    `xml:",any"`
}

type xmlSay struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type xmlPlay struct {
	XMLName xml.Name `xml:"Play"`
	URL     string   `xml:",chardata"`
}

type xmlDial struct {
	XMLName xml.Name `xml:"Dial"`
	Number  string   `xml:"Number"`
}

type xmlGather struct {
	XMLName             xml.Name `xml:"Gather"`
	Input               string   `xml:"input,attr,omitempty"`
	Action              string   `xml:"action,attr,omitempty"`
	Method              string   `xml:"method,attr,omitempty"`
	NumDigits           string   `xml:"numDigits,attr,omitempty"`
	Timeout             string   `xml:"timeout,attr,omitempty"`
	ActionOnEmptyResult string   `xml:"actionOnEmptyResult,attr,omitempty"`
	Verbs               []any    `xml:",any"`
}

// RenderTwiML serializes a document to TwiML markup.
func RenderTwiML(doc Document) (string, error) {
	resp := xmlResponse{}
	for _, action := range doc.Actions {
		verb, err := toVerb(action, true)
		if err != nil {
			return "", err
		}
		resp.Verbs = append(resp.Verbs, verb)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(resp); err != nil {
		return "", fmt.Errorf("voicedoc: encode response: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("voicedoc: flush response: %w", err)
	}
	return buf.String(), nil
}

func toVerb(action Action, topLevel bool) (any, error) {
	switch a := action.(type) {
	case Speak:
		return xmlSay{Text: a.Text}, nil
	case Play:
		return xmlPlay{URL: a.URL}, nil
	case Dial:
		if !topLevel {
			return nil, fmt.Errorf("voicedoc: Dial cannot be nested")
		}
		return xmlDial{Number: a.Number}, nil
	case GetDigits:
		if !topLevel {
			return nil, fmt.Errorf("voicedoc: GetDigits cannot be nested")
		}
		g := xmlGather{
			Input:  "dtmf",
			Action: a.Action,
			Method: a.Method,
		}
		if a.NumDigits > 0 {
			g.NumDigits = strconv.Itoa(a.NumDigits)
		}
		if a.TimeoutSeconds > 0 {
			g.Timeout = strconv.Itoa(a.TimeoutSeconds)
		}
		if a.RedirectOnTimeout {
			g.ActionOnEmptyResult = "true"
		}
		for _, child := range a.Children {
			verb, err := toVerb(child, false)
			if err != nil {
				return nil, err
			}
			g.Verbs = append(g.Verbs, verb)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("voicedoc: unsupported action %T", action)
	}
}
