package currencylayer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"resty.dev/v3"

	"faas_backend/internal/feature/dollarprice/domain/entity"
	"faas_backend/internal/feature/dollarprice/usecase"
	"faas_backend/internal/platform/externalapi/currencylayer/dto"
)

// ErrProviderFailure is returned when the API answers with success=false.
var ErrProviderFailure = errors.New("currencylayer: request failed")

// Client はcurrencylayer外部APIから為替レートを取得するQuoteProvider実装です。
type Client struct {
	cfg  Config
	http *resty.Client
}

// ClientがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// hcがnilの場合はcfg.Timeoutを持つ素のクライアントを使用します。
func NewClient(cfg Config, hc *http.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{cfg: cfg, http: resty.NewWithClient(hc)}
}

// Close releases the underlying resty client.
func (c *Client) Close() error {
	return c.http.Close()
}

// LiveQuotes はsourceを基準通貨としたcurrencyの最新レートを取得します。
func (c *Client) LiveQuotes(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
	var body dto.LiveResponse

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_key": c.cfg.AccessKey,
			"source":     source,
			"currencies": currency,
		}).
		SetExpectResponseContentType("application/json").
		SetResult(&body).
		Get(c.cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("currencylayer request: %w", err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("currencylayer http %d", res.StatusCode())
	}

	if !body.Success {
		if body.Error != nil {
			return nil, fmt.Errorf("%w: code=%d type=%s info=%s",
				ErrProviderFailure, body.Error.Code, body.Error.Type, body.Error.Info)
		}
		return nil, ErrProviderFailure
	}

	return &entity.RateQuote{
		Success:   body.Success,
		Timestamp: body.Timestamp,
		Source:    body.Source,
		Quotes:    body.Quotes,
	}, nil
}
