// Package respond extracts structured payloads from the raw text a
// generative service returns. Models routinely wrap JSON in markdown fences
// or surrounding prose; extraction tolerates both but fails loudly when no
// valid object can be isolated.
package respond

import (
	"encoding/json"
	"fmt"
	"strings"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

// ExtractJSON isolates the outermost JSON object in raw. Known wrapper
// markers (```json / ``` fences) are stripped first; after that the first
// balanced object is taken verbatim. Returns ErrResponsePayload when raw
// holds no valid object.
func ExtractJSON(raw string) ([]byte, error) {
	text := stripFences(strings.TrimSpace(raw))
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", contractx.ErrResponsePayload)
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, fmt.Errorf("%w: no JSON object in response", contractx.ErrResponsePayload)
	}

	end, ok := matchBrace(text, start)
	if !ok {
		return nil, fmt.Errorf("%w: unbalanced JSON object in response", contractx.ErrResponsePayload)
	}

	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("%w: malformed JSON object in response", contractx.ErrResponsePayload)
	}
	return candidate, nil
}

// Decode extracts and unmarshals the payload into T. Field-level validation
// stays with the caller; Decode only guarantees well-formed JSON.
func Decode[T any](raw string) (T, error) {
	var out T

	payload, err := ExtractJSON(raw)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("%w: %v", contractx.ErrResponsePayload, err)
	}
	return out, nil
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	// Drop an optional language tag on the fence line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		first := strings.TrimSpace(body[:nl])
		if first == "" || isFenceTag(first) {
			body = body[nl+1:]
		}
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

func isFenceTag(tag string) bool {
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// matchBrace scans from the opening brace at start and returns the index of
// its matching close brace, honoring string literals and escapes.
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
