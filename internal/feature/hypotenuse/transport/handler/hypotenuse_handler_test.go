package handler_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"faas_backend/internal/feature/hypotenuse/transport/handler"
)

// TestHypotenuseHandler_Compute はComputeのHTTPリクエスト/レスポンス処理をテストします。
func TestHypotenuseHandler_Compute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		body         string
		expectedBody string
		expectedLogs int
	}{
		{"success: 3-4-5", `{"x": 3, "y": 4}`, `5`, 0},
		{"success: zeros are valid", `{"x": 0, "y": 0}`, `0`, 0},
		{"success: fractional", `{"x": 1.5, "y": 2}`, `2.5`, 0},
		{"error: malformed json", `{"x": 3, "y":`, `0`, 1},
		{"success: large legs", `{"x": 1e308, "y": 1e308}`, `1.4142135623730951e+308`, 0},
		{"success: missing y defaults to zero", `{"x": 3}`, `3`, 0},
		{"success: empty object", `{}`, `0`, 0},
		{"error: overflow", `{"x": 1.7e308, "y": 1.7e308}`, `0`, 1},
		{"error: negative overflow", `{"x": -1.7e308, "y": 1.7e308}`, `0`, 1},
		{"error: non-numeric", `{"x": "three", "y": 4}`, `0`, 1},
		{"error: empty body", ``, `0`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := handler.NewHypotenuseHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

			router := gin.New()
			router.POST("/api/Hypotenuse", h.Compute)

			req := httptest.NewRequest(http.MethodPost, "/api/Hypotenuse", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			logs := 0
			if s := strings.TrimSpace(buf.String()); s != "" {
				logs = len(strings.Split(s, "\n"))
			}
			assert.Equal(t, tt.expectedLogs, logs)
		})
	}
}
