// Package usecase は直角三角形の斜辺を求める計算を提供します。
package usecase

import "math"

// Compute は2辺の長さx, yから斜辺の長さ sqrt(x²+y²) を返します。
// 途中のオーバーフローやアンダーフローを避けるためmath.Hypotを使用します。
func Compute(x, y float64) float64 {
	return math.Hypot(x, y)
}
