package dto

// HypotenuseRequest は斜辺計算のリクエストDTOです。
// 省略された辺は0として扱います。
type HypotenuseRequest struct {
	X float64 `json:"x"` // 1辺目の長さ
	Y float64 `json:"y"` // 2辺目の長さ
}
