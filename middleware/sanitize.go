package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"huzla/utils"

	"github.com/gin-gonic/gin"
)

// SanitizeRequest rewrites JSON request bodies with all string values
// sanitized before handlers bind them. Non-JSON bodies pass through
// untouched.
func SanitizeRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		raw, err := io.ReadAll(c.Request.Body)
		if err != nil || len(raw) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		var body interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			// Leave malformed JSON for binding to reject with a proper error.
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		clean, err := json.Marshal(utils.SanitizeValue(body))
		if err != nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(raw))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(clean))
		c.Request.ContentLength = int64(len(clean))
		c.Next()
	}
}
