// Package handler はdollarpriceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"faas_backend/internal/feature/dollarprice/domain/entity"
	"faas_backend/internal/feature/dollarprice/transport/http/dto"
)

// DollarPriceUsecase はドル価格取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DollarPriceUsecase interface {
	GetPrice(ctx context.Context, currency string) *entity.DollarPrice
}

// DollarPriceHandler はドル価格のHTTPリクエストを処理します。
type DollarPriceHandler struct {
	uc DollarPriceUsecase
}

// NewDollarPriceHandler は指定されたusecaseでDollarPriceHandlerの新しいインスタンスを生成します。
func NewDollarPriceHandler(uc DollarPriceUsecase) *DollarPriceHandler {
	return &DollarPriceHandler{uc: uc}
}

// GetDollarPrice は通貨コードを受け取り、1ドルあたりの価格をJSONで返します。
// 通貨未指定や取得失敗の場合もステータスは200で、ボディはnullになります。
//
// エンドポイント例:
// GET /api/DollarPrice?currency=EUR
func (h *DollarPriceHandler) GetDollarPrice(c *gin.Context) {
	p := h.uc.GetPrice(c.Request.Context(), c.Query("currency"))
	if p == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, dto.DollarPriceResponse{
		TimeStamp:      p.TimeStamp.UTC(),
		Currency:       p.Currency,
		CurrencySymbol: p.CurrencySymbol,
		Price:          p.Price,
	})
}
