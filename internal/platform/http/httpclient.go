// Package http は外部API呼び出しとHTTPサーバーで共有するHTTPユーティリティを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions は外部API呼び出し用HTTPクライアントの調整項目です。
type ClientOptions struct {
	Timeout               time.Duration // リクエスト全体のタイムアウト
	DialTimeout           time.Duration // TCP接続タイムアウト
	TLSHandshakeTimeout   time.Duration // HTTPSハンドシェイクの最大時間
	ResponseHeaderTimeout time.Duration // ヘッダー受信までの最大時間（0は無制限）
	MaxIdleConnsPerHost   int           // ホストごとのアイドル接続数
}

// DefaultClientOptions は全体タイムアウトのみを指定した既定値を返します。
func DefaultClientOptions(timeout time.Duration) ClientOptions {
	return ClientOptions{
		Timeout:             timeout,
		DialTimeout:         5 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConnsPerHost: 10,
	}
}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.KeepAlive: 再利用可能なTCP接続の維持期間
//   - MaxIdleConns: 最大アイドル接続数
//   - IdleConnTimeout: アイドル接続の維持期間
//   - その他はClientOptionsで指定（0の項目は既定値）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にカスタムクライアントを使用すること
func NewHTTPClient(opts ClientOptions) *http.Client {
	def := DefaultClientOptions(opts.Timeout)
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = def.DialTimeout
	}
	if opts.TLSHandshakeTimeout <= 0 {
		opts.TLSHandshakeTimeout = def.TLSHandshakeTimeout
	}
	if opts.MaxIdleConnsPerHost <= 0 {
		opts.MaxIdleConnsPerHost = def.MaxIdleConnsPerHost
	}

	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   opts.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   opts.MaxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   opts.TLSHandshakeTimeout,
		ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
	}
	return &http.Client{Timeout: opts.Timeout, Transport: t}
}
