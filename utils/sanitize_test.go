package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "&lt;script&gt;", SanitizeString("<script>"))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", SanitizeEmail("  Alice@Example.COM "))
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "+15551234567", SanitizePhone("+1 (555) 123-4567"))
}

func TestSanitizeValue(t *testing.T) {
	in := map[string]interface{}{
		"email":       "  Bob@Example.com",
		"firstName":   " <b>Bob</b> ",
		"password":    " <keep-as-is> ",
		"phoneNumber": "555-0000",
		"nested": map[string]interface{}{
			"note": "a & b",
		},
		"tags":  []interface{}{" one ", "<two>"},
		"price": 42.5,
	}

	out := SanitizeValue(in).(map[string]interface{})
	assert.Equal(t, "bob@example.com", out["email"])
	assert.Equal(t, "&lt;b&gt;Bob&lt;/b&gt;", out["firstName"])
	assert.Equal(t, " <keep-as-is> ", out["password"], "passwords pass through untouched")
	assert.Equal(t, "5550000", out["phoneNumber"])
	assert.Equal(t, "a &amp; b", out["nested"].(map[string]interface{})["note"])
	assert.Equal(t, []interface{}{"one", "&lt;two&gt;"}, out["tags"])
	assert.Equal(t, 42.5, out["price"])
}
