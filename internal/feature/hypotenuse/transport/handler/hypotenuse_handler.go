// Package handler はhypotenuseフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"faas_backend/internal/feature/hypotenuse/transport/http/dto"
	"faas_backend/internal/feature/hypotenuse/usecase"
)

// HypotenuseHandler は斜辺計算のHTTPリクエストを処理します。
type HypotenuseHandler struct {
	logger *slog.Logger
}

// NewHypotenuseHandler はHypotenuseHandlerの新しいインスタンスを生成します。
// loggerがnilの場合はslog.Default()を使用します。
func NewHypotenuseHandler(logger *slog.Logger) *HypotenuseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HypotenuseHandler{logger: logger}
}

// Compute はJSONボディの{x, y}から斜辺の長さを計算し、数値で返します。
// 省略された辺は0として扱います。ボディを解釈できない場合や結果が
// JSONで表せない場合（オーバーフロー）はエラーログを出力し、0を返します。
//
// エンドポイント例:
// POST /api/Hypotenuse  {"x": 3, "y": 4}
func (h *HypotenuseHandler) Compute(c *gin.Context) {
	var req dto.HypotenuseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "failed to parse hypotenuse request", "error", err)
		c.JSON(http.StatusOK, 0.0)
		return
	}

	res := usecase.Compute(req.X, req.Y)
	if math.IsInf(res, 0) || math.IsNaN(res) {
		h.logger.ErrorContext(c.Request.Context(), "hypotenuse out of range", "x", req.X, "y", req.Y)
		c.JSON(http.StatusOK, 0.0)
		return
	}

	c.JSON(http.StatusOK, res)
}
