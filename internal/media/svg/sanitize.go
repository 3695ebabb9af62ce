// Package svg strips active content from uploaded SVG floor plans before they
// are forwarded to the real-estate API.
package svg

import (
	"bytes"
	"errors"
	"regexp"
)

var ErrNotSVG = errors.New("not an svg document")

var (
	scriptTagPattern  = regexp.MustCompile(`(?is)<\s*script[\s>].*?<\s*/\s*script\s*>`)
	foreignObjPattern = regexp.MustCompile(`(?is)<\s*foreignObject[\s>].*?<\s*/\s*foreignObject\s*>`)
	eventAttrPattern  = regexp.MustCompile(`(?is)\son[a-z]+\s*=\s*("[^"]*"|'[^']*')`)
	jsHrefPattern     = regexp.MustCompile(`(?is)\s(?:xlink:)?href\s*=\s*("\s*javascript:[^"]*"|'\s*javascript:[^']*')`)
	// remote references load content from elsewhere when the plan is viewed
	remoteHrefPattern = regexp.MustCompile(`(?is)\s(?:xlink:)?href\s*=\s*("\s*(?:https?:)?//[^"]*"|'\s*(?:https?:)?//[^']*')`)
)

// Sanitize returns input without scripts, foreign HTML, event handlers and
// javascript or remote links. Everything else is kept byte for byte.
func Sanitize(input []byte) ([]byte, error) {
	if !bytes.Contains(bytes.ToLower(input), []byte("<svg")) {
		return nil, ErrNotSVG
	}

	clean := input
	for _, p := range []*regexp.Regexp{
		scriptTagPattern,
		foreignObjPattern,
		eventAttrPattern,
		jsHrefPattern,
		remoteHrefPattern,
	} {
		clean = p.ReplaceAll(clean, nil)
	}
	return clean, nil
}
