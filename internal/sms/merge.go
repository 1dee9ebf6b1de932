package sms

import (
	"fmt"
	"regexp"
	"strconv"
)

// placeholderRe is the single tokenizer for merge fields. Both Merge and
// UnresolvedFields go through it so they can never disagree about what counts
// as a placeholder.
var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Context maps merge-field names to their per-recipient values. Values are
// strings or numbers; numbers are rendered as decimal text.
type Context map[string]any

// lookup resolves a field to its text form. Missing, nil and empty-string
// values all report false, which leaves the literal placeholder in the output.
func (c Context) lookup(field string) (string, bool) {
	v, ok := c[field]
	if !ok || v == nil {
		return "", false
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s = fmt.Sprint(t)
	}
	if s == "" {
		return "", false
	}
	return s, true
}

// Merge substitutes every {{field}} occurrence in template with its context
// value. Unresolved placeholders are left in the output verbatim, as the
// caller-visible signal that data was missing. Merge is pure: the same inputs
// always produce the same string.
func Merge(template string, ctx Context) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		field := match[2 : len(match)-2]
		if v, ok := ctx.lookup(field); ok {
			return v
		}
		return match
	})
}

// UnresolvedFields reports the placeholder identifiers in template that have
// no non-empty context value, one entry per occurrence, in template order.
// Used for advisory warnings before sending.
func UnresolvedFields(template string, ctx Context) []string {
	var unresolved []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		field := m[1]
		if _, ok := ctx.lookup(field); !ok {
			unresolved = append(unresolved, field)
		}
	}
	return unresolved
}
