// Package usecase はドル価格取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"faas_backend/internal/feature/dollarprice/domain/entity"
)

// SourceCurrency はレート取得時に固定で指定する基準通貨です。
const SourceCurrency = "USD"

// ErrQuoteNotFound はプロバイダーのレスポンスに要求した通貨ペアのレートが含まれない場合に返されます。
var ErrQuoteNotFound = errors.New("quote not found")

// ErrUnsuccessful はプロバイダーがsuccess=falseを返した場合のエラーです。
var ErrUnsuccessful = errors.New("provider reported failure")

// QuoteProvider は外部のレートプロバイダーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteProvider interface {
	// LiveQuotes は基準通貨sourceに対するcurrencyの最新レートを取得します。
	LiveQuotes(ctx context.Context, source, currency string) (*entity.RateQuote, error)
}

// SymbolLookup は通貨コードから表示シンボルを引きます。
type SymbolLookup interface {
	Lookup(code string) string
}

// DollarPriceUsecase は1米ドルあたりの価格を組み立てるユースケースです。
type DollarPriceUsecase struct {
	provider QuoteProvider
	symbols  SymbolLookup
	logger   *slog.Logger
}

// NewDollarPriceUsecase はDollarPriceUsecaseの新しいインスタンスを生成します。
// loggerがnilの場合はslog.Default()を使用します。
func NewDollarPriceUsecase(provider QuoteProvider, symbols SymbolLookup, logger *slog.Logger) *DollarPriceUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DollarPriceUsecase{provider: provider, symbols: symbols, logger: logger}
}

// GetPrice は指定通貨の最新のドル価格を返します。
//
// 通貨コードが空の場合は外部APIを呼ばずにnilを返します。
// 外部APIの失敗やレスポンス不備はエラーログを1件だけ出力し、nilを返します。
func (u *DollarPriceUsecase) GetPrice(ctx context.Context, currency string) *entity.DollarPrice {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		return nil
	}

	price, err := u.fetch(ctx, code)
	if err != nil {
		u.logger.ErrorContext(ctx, "failed to get dollar price", "currency", code, "error", err)
		return nil
	}
	return price
}

func (u *DollarPriceUsecase) fetch(ctx context.Context, code string) (*entity.DollarPrice, error) {
	q, err := u.provider.LiveQuotes(ctx, SourceCurrency, code)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("empty response: %w", ErrQuoteNotFound)
	}
	if !q.Success {
		return nil, ErrUnsuccessful
	}

	key, rate, err := selectQuote(q, code)
	if err != nil {
		return nil, err
	}

	var symbol string
	if u.symbols != nil {
		// シンボルはペアキーではなく要求された通貨コードで引く
		symbol = u.symbols.Lookup(code)
	}

	return &entity.DollarPrice{
		TimeStamp:      time.Unix(q.Timestamp, 0).UTC(),
		Currency:       key,
		CurrencySymbol: symbol,
		Price:          rate,
	}, nil
}

// selectQuote は"USD"+codeのキーを優先し、無ければ唯一のレートを採用します。
func selectQuote(q *entity.RateQuote, code string) (string, decimal.Decimal, error) {
	key := SourceCurrency + code
	if rate, ok := q.Quotes[key]; ok {
		return key, rate, nil
	}
	if len(q.Quotes) == 1 {
		for k, rate := range q.Quotes {
			return k, rate, nil
		}
	}
	return "", decimal.Decimal{}, fmt.Errorf("%s (%d quotes): %w", key, len(q.Quotes), ErrQuoteNotFound)
}
