package sms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSegmentsGSM7Boundaries(t *testing.T) {
	at160 := CountSegments(strings.Repeat("a", 160))
	assert.Equal(t, Report{Chars: 160, Segments: 1, Encoding: EncodingGSM7}, at160)

	// Past the single-segment budget, every segment shrinks to 153 for the
	// concatenation header.
	at161 := CountSegments(strings.Repeat("a", 161))
	assert.Equal(t, Report{Chars: 161, Segments: 2, Encoding: EncodingGSM7}, at161)

	at306 := CountSegments(strings.Repeat("a", 306))
	assert.Equal(t, 2, at306.Segments)

	at307 := CountSegments(strings.Repeat("a", 307))
	assert.Equal(t, 3, at307.Segments)
}

func TestCountSegmentsUnicode(t *testing.T) {
	// 69 ASCII characters plus one emoji: the emoji is a surrogate pair, so
	// the message is 71 UTF-16 code units.
	msg := strings.Repeat("a", 69) + "\U0001F600"
	report := CountSegments(msg)
	assert.Equal(t, Report{Chars: 71, Segments: 2, Encoding: EncodingUnicode}, report)

	at70 := CountSegments(strings.Repeat("ý", 70)) // ý is not GSM
	assert.Equal(t, Report{Chars: 70, Segments: 1, Encoding: EncodingUnicode}, at70)
}

func TestCountSegmentsEmptyMessage(t *testing.T) {
	report := CountSegments("")
	assert.Equal(t, Report{Chars: 0, Segments: 1, Encoding: EncodingGSM7}, report)
}

func TestEncodingClassification(t *testing.T) {
	tests := []struct {
		message  string
		encoding string
	}{
		{"plain ascii with punctuation !?#&", EncodingGSM7},
		{"café £ Ø Å", EncodingGSM7},       // GSM extended set
		{"ΩΣΔ", EncodingGSM7},                   // Greek capitals in the alphabet
		{"ω", EncodingUnicode},                            // lowercase omega is not
		{"smart quotes “hello”", EncodingUnicode},
		{"\U0001F600", EncodingUnicode},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.encoding, CountSegments(tt.message).Encoding, "message %q", tt.message)
	}
}
