// Package usecase は通貨コードから表示用シンボルを引くインデックスを実装します。
package usecase

import (
	"faas_backend/internal/feature/currencysymbol/domain/entity"
)

// RegionSource は地域ごとの通貨情報を列挙するデータソースを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RegionSource interface {
	// Regions は列挙順を保ったまま地域ごとの通貨情報を返します。
	Regions() []entity.RegionCurrency
}

// SymbolIndex はISO通貨コードから表示シンボルへの読み取り専用マップです。
// 構築後は変更されないため、ロックなしで並行に参照できます。
type SymbolIndex struct {
	symbols map[string]string
}

// BuildSymbolIndex はデータソースを一度だけ走査し、通貨コードごとに
// 最初に出現した地域のシンボルを採用してインデックスを構築します。
// 通貨コードが空のレコードは読み飛ばします。データソースが空の場合は空のインデックスを返します。
func BuildSymbolIndex(src RegionSource) *SymbolIndex {
	symbols := make(map[string]string)
	if src == nil {
		return &SymbolIndex{symbols: symbols}
	}
	for _, r := range src.Regions() {
		if r.Code == "" {
			continue
		}
		// 先勝ち
		if _, ok := symbols[r.Code]; ok {
			continue
		}
		symbols[r.Code] = r.Symbol
	}
	return &SymbolIndex{symbols: symbols}
}

// Lookup は通貨コードに対応するシンボルを返します。未登録のコードには空文字を返します。
func (x *SymbolIndex) Lookup(code string) string {
	if x == nil {
		return ""
	}
	return x.symbols[code]
}

// Len はインデックスに登録された通貨コードの数を返します。
func (x *SymbolIndex) Len() int {
	if x == nil {
		return 0
	}
	return len(x.symbols)
}
