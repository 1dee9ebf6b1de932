package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLeavesUnresolvedPlaceholdersLiteral(t *testing.T) {
	ctx := Context{"customerName": "Jo"}

	out := Merge("Hi {{customerName}}, {{missingField}}", ctx)
	assert.Equal(t, "Hi Jo, {{missingField}}", out)

	assert.Equal(t, []string{"missingField"}, UnresolvedFields("Hi {{customerName}}, {{missingField}}", ctx))
}

func TestMergeIsIdempotent(t *testing.T) {
	template := "Hi {{customerName}}, contract {{contractId}} ends {{contractEndDate}}"
	ctx := Context{"customerName": "Jo", "contractId": "C-1"}

	first := Merge(template, ctx)
	second := Merge(template, ctx)
	assert.Equal(t, first, second)
}

func TestMergeReplacesRepeatedPlaceholders(t *testing.T) {
	out := Merge("{{name}} and {{name}} again", Context{"name": "Jo"})
	assert.Equal(t, "Jo and Jo again", out)
}

func TestMergeRendersNumbersAsDecimalText(t *testing.T) {
	assert.Equal(t, "2 items", Merge("{{n}} items", Context{"n": 2}))
	// JSON unmarshals numbers as float64; whole values must not gain a ".0".
	assert.Equal(t, "2 items", Merge("{{n}} items", Context{"n": float64(2)}))
	assert.Equal(t, "2.5 weeks", Merge("{{n}} weeks", Context{"n": 2.5}))
}

func TestMergeTreatsEmptyAndNilAsUnresolved(t *testing.T) {
	ctx := Context{"a": "", "b": nil}

	out := Merge("{{a}}-{{b}}", ctx)
	assert.Equal(t, "{{a}}-{{b}}", out)
	assert.Equal(t, []string{"a", "b"}, UnresolvedFields("{{a}}-{{b}}", ctx))
}

func TestMergeWithoutPlaceholders(t *testing.T) {
	assert.Equal(t, "plain text", Merge("plain text", Context{"x": "y"}))
	assert.Empty(t, UnresolvedFields("plain text", Context{}))
}

func TestTemplateCatalog(t *testing.T) {
	all := Templates()
	require.Len(t, all, 3)
	assert.Equal(t, TemplateContractEnding, all[0].ID)

	tmpl, ok := Template(TemplateOffhireConfirmation)
	require.True(t, ok)
	assert.Equal(t, "Off-Hire Confirmation", tmpl.Name)

	_, ok = Template("no-such-template")
	assert.False(t, ok)
}

func TestPreviewUsesSampleData(t *testing.T) {
	message, ok := Preview(TemplateContractEnding)
	require.True(t, ok)
	assert.Contains(t, message, "John Smith")
	assert.Contains(t, message, "CON-12345")
	assert.NotContains(t, message, "{{")

	_, ok = Preview("no-such-template")
	assert.False(t, ok)
}
