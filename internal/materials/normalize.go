package materials

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencePattern matches a completion that is entirely a fenced code block,
// optionally tagged json.
var fencePattern = regexp.MustCompile("(?is)^```(?:json)?\\s*(.*?)\\s*```$")

// Normalize deterministically recovers a structured record from a raw model
// completion, tolerating common formatting noise. Narrowing steps, in order:
// trim whitespace, unwrap a whole-string code fence, cut to the first '{'
// through the last '}', then parse. It performs no shape validation.
func Normalize(raw string) (Generated, error) {
	text := strings.TrimSpace(raw)

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var out Generated
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return Generated{}, &ParseError{Snippet: snippet(text), Err: err}
	}
	return out, nil
}

func snippet(text string) string {
	if len(text) <= parseSnippetLen {
		return text
	}
	return text[:parseSnippetLen] + "..."
}
