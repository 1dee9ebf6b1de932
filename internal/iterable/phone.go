package iterable

import "strings"

// FormatE164 normalizes a raw phone number before transmission. This is a
// heuristic shaped around North American 10/11-digit numbers, not a full
// E.164 parser: anything else passes through best-effort with a "+" prefix.
func FormatE164(phone string) string {
	digits := digitsOf(phone)

	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		return "+" + digits
	}

	if len(digits) == 10 {
		return "+1" + digits
	}

	if strings.HasPrefix(phone, "+") {
		return phone
	}

	return "+" + digits
}
