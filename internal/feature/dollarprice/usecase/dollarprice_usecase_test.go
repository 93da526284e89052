package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faas_backend/internal/feature/dollarprice/domain/entity"
	"faas_backend/internal/feature/dollarprice/usecase"
)

// ErrTransport はモックと期待値の間で共有されるセンチネルエラーです。
var ErrTransport = errors.New("transport error")

// mockQuoteProvider はQuoteProviderインターフェースのモック実装です。
type mockQuoteProvider struct {
	LiveQuotesFunc func(ctx context.Context, source, currency string) (*entity.RateQuote, error)
	Calls          int
	LastSource     string
	LastCurrency   string
}

func (m *mockQuoteProvider) LiveQuotes(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
	m.Calls++
	m.LastSource = source
	m.LastCurrency = currency
	if m.LiveQuotesFunc != nil {
		return m.LiveQuotesFunc(ctx, source, currency)
	}
	return nil, errors.New("LiveQuotesFunc is not implemented")
}

// mapSymbols はmapで実装したSymbolLookupです。
type mapSymbols map[string]string

func (m mapSymbols) Lookup(code string) string { return m[code] }

// newBufferLogger はJSON形式でバッファに書き込むロガーを返します。
func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

// logLines は出力されたログの行数を返します。
func logLines(buf *bytes.Buffer) int {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}

func quoteOf(pairs map[string]string) *entity.RateQuote {
	quotes := make(map[string]decimal.Decimal, len(pairs))
	for k, v := range pairs {
		quotes[k] = decimal.RequireFromString(v)
	}
	return &entity.RateQuote{Success: true, Timestamp: 1609459200, Source: "USD", Quotes: quotes}
}

// TestDollarPriceUsecase_GetPrice_EmptyCurrency は空の通貨コードで外部APIを呼ばずnilを返すことを検証します。
func TestDollarPriceUsecase_GetPrice_EmptyCurrency(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "\t"} {
		provider := &mockQuoteProvider{}
		logger, buf := newBufferLogger()
		uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{}, logger)

		got := uc.GetPrice(context.Background(), in)

		assert.Nil(t, got)
		assert.Equal(t, 0, provider.Calls, "provider must not be called for %q", in)
		assert.Equal(t, 0, logLines(buf), "no log expected for %q", in)
	}
}

// TestDollarPriceUsecase_GetPrice_Success はレスポンスからDollarPriceが組み立てられることを検証します。
func TestDollarPriceUsecase_GetPrice_Success(t *testing.T) {
	t.Parallel()

	provider := &mockQuoteProvider{
		LiveQuotesFunc: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
			return quoteOf(map[string]string{"USDEUR": "0.82"}), nil
		},
	}
	logger, buf := newBufferLogger()
	uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{"EUR": "€"}, logger)

	got := uc.GetPrice(context.Background(), "EUR")

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), got.TimeStamp)
	assert.Equal(t, time.UTC, got.TimeStamp.Location())
	assert.Equal(t, "USDEUR", got.Currency)
	assert.Equal(t, "€", got.CurrencySymbol)
	assert.True(t, decimal.RequireFromString("0.82").Equal(got.Price), "price = %s", got.Price)

	assert.Equal(t, 1, provider.Calls)
	assert.Equal(t, "USD", provider.LastSource)
	assert.Equal(t, "EUR", provider.LastCurrency)
	assert.Equal(t, 0, logLines(buf))
}

// TestDollarPriceUsecase_GetPrice_NormalizesCode は通貨コードが大文字化・トリムされることを検証します。
func TestDollarPriceUsecase_GetPrice_NormalizesCode(t *testing.T) {
	t.Parallel()

	provider := &mockQuoteProvider{
		LiveQuotesFunc: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
			return quoteOf(map[string]string{"USDCOP": "3950.5"}), nil
		},
	}
	uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{"COP": "$"}, nil)

	got := uc.GetPrice(context.Background(), " cop ")

	require.NotNil(t, got)
	assert.Equal(t, "COP", provider.LastCurrency)
	assert.Equal(t, "USDCOP", got.Currency)
	assert.Equal(t, "$", got.CurrencySymbol)
}

// TestDollarPriceUsecase_GetPrice_UnknownSymbol はシンボル未登録でも結果が返ることを検証します。
func TestDollarPriceUsecase_GetPrice_UnknownSymbol(t *testing.T) {
	t.Parallel()

	provider := &mockQuoteProvider{
		LiveQuotesFunc: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
			return quoteOf(map[string]string{"USDXAU": "0.00052"}), nil
		},
	}
	uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{}, nil)

	got := uc.GetPrice(context.Background(), "XAU")

	require.NotNil(t, got)
	assert.Equal(t, "", got.CurrencySymbol)
	assert.Equal(t, "USDXAU", got.Currency)
}

// TestDollarPriceUsecase_GetPrice_QuoteSelection はレートの選択規則を検証します。
func TestDollarPriceUsecase_GetPrice_QuoteSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		quotes       map[string]string
		wantCurrency string
		wantPrice    string
	}{
		{
			name:         "matching pair preferred among several",
			quotes:       map[string]string{"USDGBP": "0.73", "USDEUR": "0.82", "USDJPY": "103.2"},
			wantCurrency: "USDEUR",
			wantPrice:    "0.82",
		},
		{
			name:         "single quote used when key differs",
			quotes:       map[string]string{"EUR": "0.82"},
			wantCurrency: "EUR",
			wantPrice:    "0.82",
		},
		{
			name:   "several quotes without matching pair",
			quotes: map[string]string{"USDGBP": "0.73", "USDJPY": "103.2"},
		},
		{
			name:   "no quotes",
			quotes: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mockQuoteProvider{
				LiveQuotesFunc: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
					return quoteOf(tt.quotes), nil
				},
			}
			logger, buf := newBufferLogger()
			uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{"EUR": "€"}, logger)

			got := uc.GetPrice(context.Background(), "EUR")

			if tt.wantCurrency == "" {
				assert.Nil(t, got)
				assert.Equal(t, 1, logLines(buf))
				assert.Contains(t, buf.String(), usecase.ErrQuoteNotFound.Error())
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCurrency, got.Currency)
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(got.Price))
			assert.Equal(t, "€", got.CurrencySymbol)
			assert.Equal(t, 0, logLines(buf))
		})
	}
}

// TestDollarPriceUsecase_GetPrice_Failure は外部呼び出しの失敗でnilとログ1件になることを検証します。
func TestDollarPriceUsecase_GetPrice_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		respond func(ctx context.Context, source, currency string) (*entity.RateQuote, error)
		wantMsg string
	}{
		{
			name: "provider error",
			respond: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
				return nil, ErrTransport
			},
			wantMsg: ErrTransport.Error(),
		},
		{
			name: "nil response",
			respond: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
				return nil, nil
			},
			wantMsg: usecase.ErrQuoteNotFound.Error(),
		},
		{
			name: "success flag false",
			respond: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
				return &entity.RateQuote{Success: false}, nil
			},
			wantMsg: usecase.ErrUnsuccessful.Error(),
		},
		{
			name: "nil quotes",
			respond: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
				return &entity.RateQuote{Success: true, Timestamp: 1609459200}, nil
			},
			wantMsg: usecase.ErrQuoteNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := &mockQuoteProvider{LiveQuotesFunc: tt.respond}
			logger, buf := newBufferLogger()
			uc := usecase.NewDollarPriceUsecase(provider, mapSymbols{"EUR": "€"}, logger)

			got := uc.GetPrice(context.Background(), "EUR")

			assert.Nil(t, got)
			assert.Equal(t, 1, provider.Calls, "no retries expected")
			assert.Equal(t, 1, logLines(buf), "exactly one log entry expected")
			assert.Contains(t, buf.String(), `"level":"ERROR"`)
			assert.Contains(t, buf.String(), tt.wantMsg)
		})
	}
}

// TestDollarPriceUsecase_GetPrice_NilSymbols はSymbolLookupがnilでも動作することを検証します。
func TestDollarPriceUsecase_GetPrice_NilSymbols(t *testing.T) {
	t.Parallel()

	provider := &mockQuoteProvider{
		LiveQuotesFunc: func(ctx context.Context, source, currency string) (*entity.RateQuote, error) {
			return quoteOf(map[string]string{"USDEUR": "0.82"}), nil
		},
	}
	uc := usecase.NewDollarPriceUsecase(provider, nil, nil)

	got := uc.GetPrice(context.Background(), "EUR")

	require.NotNil(t, got)
	assert.Equal(t, "", got.CurrencySymbol)
}
