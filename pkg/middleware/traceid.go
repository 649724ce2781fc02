package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// TraceIDMiddleware tags each request with a trace id that the
// response envelope echoes back. An inbound header is reused so a
// client retry keeps its id.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(traceHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("trace_id", id)
		c.Writer.Header().Set(traceHeader, id)
		c.Next()
	}
}
