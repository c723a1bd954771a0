package shared

import "strings"

// NormalizePhone strips every non-digit rune from a phone number, so that
// "010-1234-5678" and "01012345678" compare equal everywhere in the system.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
