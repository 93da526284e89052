package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DollarPriceResponse はドル価格のレスポンスDTOです。
type DollarPriceResponse struct {
	TimeStamp      time.Time       `json:"timeStamp"`      // レート取得時刻（UTC）
	Currency       string          `json:"currency"`       // 通貨ペア（例: "USDEUR"）
	CurrencySymbol string          `json:"currencySymbol"` // 通貨シンボル（不明な場合は空文字）
	Price          decimal.Decimal `json:"price"`          // 1ドルあたりの価格
}
