package utils

import (
	"html"
	"strings"
)

// SanitizeString trims a string and escapes HTML special characters.
func SanitizeString(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// SanitizeEmail lowercases and trims an email address.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizePhone strips everything but digits and a leading-style plus sign.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeValue recursively sanitizes all string values in a decoded JSON
// value. Emails and phone numbers get their dedicated treatment; passwords
// are left untouched.
func SanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			if s, ok := item.(string); ok {
				switch k {
				case "email":
					out[k] = SanitizeEmail(s)
				case "phoneNumber":
					out[k] = SanitizePhone(s)
				case "password", "currentPassword", "newPassword":
					out[k] = s
				default:
					out[k] = SanitizeString(s)
				}
				continue
			}
			out[k] = SanitizeValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = SanitizeValue(item)
		}
		return out
	case string:
		return SanitizeString(val)
	default:
		return v
	}
}
