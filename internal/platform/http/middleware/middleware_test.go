package middleware

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
