// Package jsonextract pulls the first balanced JSON value out of free-form
// model output. LLMs routinely wrap JSON in prose or markdown fences, so
// callers hand the raw response here and get back a parseable span, or
// nothing.
package jsonextract

import "encoding/json"

// Object returns the first balanced {...} span in s.
func Object(s string) (string, bool) {
	return balanced(s, '{', '}')
}

// Array returns the first balanced [...] span in s.
func Array(s string) (string, bool) {
	return balanced(s, '[', ']')
}

// DecodeObject finds the first balanced object span and unmarshals it into T.
func DecodeObject[T any](s string) (T, bool) {
	var out T
	span, ok := Object(s)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return out, false
	}
	return out, true
}

// DecodeArray finds the first balanced array span and unmarshals it into []T.
func DecodeArray[T any](s string) ([]T, bool) {
	span, ok := Array(s)
	if !ok {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, false
	}
	return out, true
}

// balanced scans for the first open rune and walks to its matching close,
// tracking string literals and escapes so braces inside strings don't count.
func balanced(s string, open, close byte) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if start == -1 {
			if c == open {
				start = i
				depth = 1
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}

		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// characters inside strings never affect depth
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
