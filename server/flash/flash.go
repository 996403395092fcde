// Package flash carries a one-time message across a redirect using a
// short-lived cookie, read once and cleared on the next page render.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	cookieName = "jobpilot_flash"

	Error   = "error"
	Success = "success"
)

// Set stores a flash message for the next rendered page.
func Set(c *gin.Context, level, message string) {
	value := url.QueryEscape(level + "|" + message)
	c.SetCookie(cookieName, value, 60, "/", "", false, true)
}

// Pop returns the pending flash message, if any, and clears it.
func Pop(c *gin.Context) (level, message string, ok bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil {
		return "", "", false
	}

	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}

	level, message, found := strings.Cut(decoded, "|")
	if !found || message == "" {
		return "", "", false
	}

	return level, message, true
}

// PageData builds the template data shared by every rendered page: the
// pending flash message split into error/success slots.
func PageData(c *gin.Context) gin.H {
	data := gin.H{}
	if level, message, ok := Pop(c); ok {
		switch level {
		case Error:
			data["Error"] = message
		case Success:
			data["Success"] = message
		}
	}
	return data
}
