package dto

import "github.com/shopspring/decimal"

// LiveResponse is the body of the "live" endpoint.
type LiveResponse struct {
	Success   bool                       `json:"success"`
	Timestamp int64                      `json:"timestamp"`
	Source    string                     `json:"source"`
	Quotes    map[string]decimal.Decimal `json:"quotes"`
	Error     *ErrorInfo                 `json:"error,omitempty"`
}

// ErrorInfo is the error object returned together with success=false.
type ErrorInfo struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}
