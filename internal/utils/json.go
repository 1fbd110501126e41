// Package utils provides tolerant JSON extraction for generation payloads.
// Payloads are often copied out of a chat tool rather than written by a
// strict encoder, so they arrive wrapped in markdown fences, padded with
// prose, or carrying raw control characters and LaTeX backslashes.
package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Repair regexes, compiled once. They cover the frequent copy-paste errors;
// escaped quotes inside single-quoted strings are not fully supported.
var (
	// "value" "key": -> "value", "key":
	missingCommaBeforeKeyRegex = regexp.MustCompile(`(")\s*\n\s*("[\w][^"]*"\s*:)`)

	// 123 "key": -> 123, "key":
	missingCommaAfterValueRegex = regexp.MustCompile(`(\d|true|false|null)\s*\n\s*("[\w][^"]*"\s*:)`)

	// } "key" -> }, "key"
	missingCommaAfterBraceRegex = regexp.MustCompile(`([}\]])\s*\n?\s*("[\w])`)

	// ,} -> }
	trailingCommaRegex = regexp.MustCompile(`,\s*([}\]])`)

	// {'key': -> {"key":
	singleQuoteKeyRegex = regexp.MustCompile(`([{,]\s*)'(\w+)'(\s*:)`)

	// : 'value' -> : "value"
	singleQuoteValueRegex = regexp.MustCompile(`(:\s*)'((?:[^'\\]|\\.)*)'(\s*[,}\]])`)
)

// ExtractJSON returns the first JSON value in raw as clean JSON text,
// dropping markdown fences and surrounding prose. When the value does not
// parse as-is it is run through the repair pass once and retried.
//
// Truncated payloads stay errors on purpose: completing a half-copied card
// set would ingest it as if it were whole.
func ExtractJSON(raw string) (string, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return "", fmt.Errorf("no JSON found in payload")
	}

	idx := strings.IndexAny(cleaned, "{[")
	if idx == -1 {
		return "", fmt.Errorf("no JSON start ({ or [) found")
	}
	jsonPart := cleaned[idx:]

	if out, err := decodeFirstValue(jsonPart); err == nil {
		return out, nil
	}

	repaired := repairPayload(jsonPart)
	out, err := decodeFirstValue(repaired)
	if err != nil {
		return "", fmt.Errorf("parse JSON: %w", err)
	}
	return out, nil
}

// decodeFirstValue parses exactly one JSON value and ignores trailing text,
// which handles payloads like: {"kind": "quiz", ...} hope this helps!
func decodeFirstValue(input string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		return "", err
	}
	return string(value), nil
}

// repairPayload fixes the syntax errors hand-copied payloads commonly carry:
// raw control characters and stray backslashes inside strings, missing and
// trailing commas, and single-quoted keys or values.
func repairPayload(input string) string {
	result := sanitizeStrings(input)

	result = missingCommaBeforeKeyRegex.ReplaceAllString(result, `$1, $2`)
	result = missingCommaAfterValueRegex.ReplaceAllString(result, `$1, $2`)
	result = missingCommaAfterBraceRegex.ReplaceAllString(result, `$1, $2`)
	result = trailingCommaRegex.ReplaceAllString(result, `$1`)

	result = singleQuoteKeyRegex.ReplaceAllString(result, `$1"$2"$3`)
	result = singleQuoteValueRegex.ReplaceAllStringFunc(result, func(match string) string {
		parts := singleQuoteValueRegex.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		value := parts[2]
		value = strings.ReplaceAll(value, `\'`, `'`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		return parts[1] + `"` + value + `"` + parts[3]
	})

	return result
}

// sanitizeStrings escapes literal control characters and doubles backslashes
// that start an invalid escape sequence inside JSON strings. Math content is
// the usual offender: `\sqrt{2}` pasted into a card front is an invalid
// escape, not a parse failure the user can do anything about.
func sanitizeStrings(input string) string {
	var result strings.Builder
	result.Grow(len(input))

	inString := false

	for i := 0; i < len(input); i++ {
		c := input[i]

		if c == '\\' && inString {
			if i+1 < len(input) && isValidEscape(input[i+1]) {
				result.WriteByte(c)
				result.WriteByte(input[i+1])
				i++
			} else {
				result.WriteString(`\\`)
			}
			continue
		}

		if c == '"' {
			inString = !inString
			result.WriteByte(c)
			continue
		}

		if inString {
			switch c {
			case '\t':
				result.WriteString(`\t`)
			case '\n':
				result.WriteString(`\n`)
			case '\r':
				result.WriteString(`\r`)
			case '\b':
				result.WriteString(`\b`)
			case '\f':
				result.WriteString(`\f`)
			default:
				if c < 0x20 {
					result.WriteString(fmt.Sprintf(`\u%04x`, c))
				} else {
					result.WriteByte(c)
				}
			}
		} else {
			result.WriteByte(c)
		}
	}

	return result.String()
}

// isValidEscape reports whether b may follow a backslash in a JSON string.
func isValidEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	}
	return false
}

// stripFences removes a surrounding markdown code block, if any.
func stripFences(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(response, "```")

	return strings.TrimSpace(response)
}
