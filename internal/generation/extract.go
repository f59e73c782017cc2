package generation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Fence markers the extractor recognizes. Models regularly ignore the
// "return only the JSON object" instruction and wrap their answer in
// markdown, so extraction has to tolerate commentary, fences, and trailing
// truncation from token limits.
const (
	taggedFenceMarker = "```json"
	fenceMarker       = "```"
)

// ExtractJSON recovers a structured object from arbitrary model text.
// The repair cascade runs in order, each step only when the previous one is
// inapplicable or fails:
//
//  1. extract the span of a ```json tagged fence, if present
//  2. otherwise extract the span of the first untagged fence, if present
//  3. parse the span leniently (raw control characters inside string values
//     are escaped before parsing)
//  4. on failure, truncate to the last closing brace and retry once
//
// When all attempts fail, the returned error wraps ErrMalformedOutput and
// carries the parser message plus the first 200 characters of the text for
// diagnostics.
func ExtractJSON(text string) (map[string]any, error) {
	span := text
	if block, ok := ExtractFencedBlock(text); ok {
		span = block
	}

	parsed, parseErr := parseLenient(span)
	if parseErr == nil {
		return parsed, nil
	}

	if truncated, ok := TruncateToLastBrace(span); ok {
		if recovered, err := parseLenient(truncated); err == nil {
			return recovered, nil
		}
	}

	return nil, NewMalformedOutputError(parseErr, span)
}

// ExtractFencedBlock returns the span between the first fence marker and the
// next one, preferring a block explicitly tagged as JSON. The second return
// value reports whether a fenced block was found.
func ExtractFencedBlock(text string) (string, bool) {
	if start := strings.Index(text, taggedFenceMarker); start >= 0 {
		body := text[start+len(taggedFenceMarker):]
		if end := strings.Index(body, fenceMarker); end >= 0 {
			return strings.TrimSpace(body[:end]), true
		}
		// Opening tag without a closing fence: the model was cut off
		// mid-answer. Take everything after the tag.
		return strings.TrimSpace(body), true
	}

	if start := strings.Index(text, fenceMarker); start >= 0 {
		body := text[start+len(fenceMarker):]
		if end := strings.Index(body, fenceMarker); end >= 0 {
			return strings.TrimSpace(body[:end]), true
		}
		return strings.TrimSpace(body), true
	}

	return "", false
}

// TruncateToLastBrace cuts the text so it ends at the last closing brace.
// This recovers objects truncated mid-way through a trailing field by a
// token limit, provided at least one complete top-level field precedes the
// cut. The second return value reports whether a closing brace was found.
func TruncateToLastBrace(text string) (string, bool) {
	idx := strings.LastIndex(text, "}")
	if idx < 0 {
		return "", false
	}
	return text[:idx+1], true
}

// SanitizeControlCharacters escapes raw control characters that appear
// inside JSON string values, which strict parsers reject but models emit
// freely (usually literal newlines inside explanation text). Characters
// outside string values are left untouched.
func SanitizeControlCharacters(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false

	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			case r < 0x20:
				b.WriteString(escapeControl(r))
				continue
			}
		} else if r == '"' {
			inString = true
		}
		b.WriteRune(r)
	}

	return b.String()
}

// escapeControl renders a control character as its JSON escape sequence.
func escapeControl(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	default:
		return fmt.Sprintf(`\u%04x`, r)
	}
}

// parseLenient unmarshals a JSON object, escaping embedded control
// characters first so multi-line string values survive strict parsing.
func parseLenient(span string) (map[string]any, error) {
	span = strings.TrimFunc(span, unicode.IsSpace)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(SanitizeControlCharacters(span)), &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
