package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHandleServiceError_SmsGatewayBodyReachesClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	err := fmt.Errorf("%w: status 502: insufficient credit", ErrSmsGatewayFailure)
	HandleServiceError(c, err)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var out APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(out.Message, "insufficient credit") {
		t.Errorf("message = %q, want the upstream body in it", out.Message)
	}
}

func TestHandleServiceError_DatabaseErrorStaysGeneric(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleServiceError(c, fmt.Errorf("%w: connection refused", ErrDatabaseError))

	var out APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.Message != "error.internal" {
		t.Errorf("message = %q, want error.internal", out.Message)
	}
}
