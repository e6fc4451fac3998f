package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the browser-context identifier. There are no user
// accounts; a session is the unit of state isolation.
const SessionHeader = "X-Session-ID"

// SessionMiddleware reads the session id from the request, minting a fresh
// one when absent, and echoes it back on the response so clients can keep
// sending it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			sid = uuid.NewString()
		}
		c.Set("sessionId", sid)
		c.Header(SessionHeader, sid)
		c.Next()
	}
}
