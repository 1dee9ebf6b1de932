package sms

import "unicode/utf16"

// Encoding classes for a message body.
const (
	EncodingGSM7    = "GSM-7"
	EncodingUnicode = "Unicode"
)

// Per-segment character budgets. Concatenated messages lose part of each
// segment to the UDH header, so the multipart budgets are smaller.
const (
	gsm7SingleSegment    = 160
	gsm7MultiSegment     = 153
	unicodeSingleSegment = 70
	unicodeMultiSegment  = 67
)

// Report is the derived cost of one resolved message.
type Report struct {
	Chars    int    `json:"chars"`
	Segments int    `json:"segments"`
	Encoding string `json:"encoding"`
}

// gsmExtended lists the non-ASCII characters of the GSM 03.38 default
// alphabet that the classifier accepts.
var gsmExtended = map[rune]struct{}{
	'£': {}, '¥': {}, 'è': {}, 'é': {}, 'ù': {}, 'ì': {}, 'ò': {}, 'Ç': {},
	'Ø': {}, 'ø': {}, 'Å': {}, 'å': {}, 'Δ': {}, 'Φ': {}, 'Γ': {}, 'Λ': {},
	'Ω': {}, 'Π': {}, 'Ψ': {}, 'Σ': {}, 'Θ': {}, 'Ξ': {}, 'Æ': {}, 'æ': {},
	'ß': {}, 'É': {}, '¤': {}, '¡': {}, 'Ä': {}, 'Ö': {}, 'Ñ': {}, 'Ü': {},
	'§': {}, '¿': {}, 'ä': {}, 'ö': {}, 'ñ': {}, 'ü': {}, 'à': {},
}

func isGSM7(message string) bool {
	for _, r := range message {
		if r <= 0x7F {
			continue
		}
		if _, ok := gsmExtended[r]; !ok {
			return false
		}
	}
	return true
}

// CountSegments classifies a resolved message and computes how many carrier
// segments it occupies. Character count is in UTF-16 code units, so an emoji
// outside the BMP counts as two. A message within the single-segment budget
// is one segment (including the empty message); longer messages divide by the
// multipart budget, rounding up.
func CountSegments(message string) Report {
	chars := len(utf16.Encode([]rune(message)))

	single, multi, encoding := gsm7SingleSegment, gsm7MultiSegment, EncodingGSM7
	if !isGSM7(message) {
		single, multi, encoding = unicodeSingleSegment, unicodeMultiSegment, EncodingUnicode
	}

	segments := 1
	if chars > single {
		segments = (chars + multi - 1) / multi
	}

	return Report{Chars: chars, Segments: segments, Encoding: encoding}
}
