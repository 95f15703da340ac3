package styling

import (
	"encoding/json"
	"strings"
)

// Favorite colors live in two representations: the backend stores a
// JSON-encoded array, the edit form holds a single comma-separated string.
// Conversion is lossless for non-empty, trimmed, comma-free tokens;
// empty and whitespace-only tokens are dropped on every conversion.

// ParseColors splits a comma-separated colors string into its canonical
// token slice. Tokens are trimmed; empty tokens are dropped.
func ParseColors(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinColors renders a canonical token slice back into the comma-separated
// form used by the edit form.
func JoinColors(colors []string) string {
	return strings.Join(colors, ", ")
}

// EncodeColors produces the JSON array form the backend expects.
// The input string is canonicalized first, so "red, , blue," encodes
// as ["red","blue"].
func EncodeColors(s string) string {
	b, err := json.Marshal(ParseColors(s))
	if err != nil {
		// A []string never fails to marshal; keep the wire contract anyway.
		return "[]"
	}
	return string(b)
}

// ColorsEqual compares two colors values by their canonical JSON encoding.
// The comparison is order-sensitive: reordering the same set of colors is
// treated as a change. This mirrors the backend's string-compare contract.
func ColorsEqual(formValue string, identityColors []string) bool {
	return EncodeColors(formValue) == EncodeColors(JoinColors(identityColors))
}
