package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTraceIDMiddleware_ReusesInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "retry-abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "retry-abc-123" {
		t.Errorf("trace_id = %q, want the inbound header value", seen)
	}
	if got := rec.Header().Get("X-Trace-ID"); got != "retry-abc-123" {
		t.Errorf("response header = %q, want retry-abc-123", got)
	}
}

func TestTraceIDMiddleware_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get("X-Trace-ID") == "" {
		t.Error("no trace id assigned")
	}
}
