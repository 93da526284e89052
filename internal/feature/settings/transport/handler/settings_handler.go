// Package handler はsettingsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SettingsHandler は読み込まれた設定値を確認するためのエンドポイントを処理します。
type SettingsHandler struct {
	baseURL string
}

// NewSettingsHandler はレートプロバイダーのベースURLを返すSettingsHandlerを生成します。
func NewSettingsHandler(baseURL string) *SettingsHandler {
	return &SettingsHandler{baseURL: baseURL}
}

// Echo は "Setting: {BaseURL}" をテキストで返します。
//
// エンドポイント例:
// GET /api/Test
func (h *SettingsHandler) Echo(c *gin.Context) {
	c.String(http.StatusOK, "Setting: %s", h.baseURL)
}
