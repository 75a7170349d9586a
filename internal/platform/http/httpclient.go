package http

import (
	"log/slog"
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はメール配信API呼び出し用のHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト（デフォルトより短い）
//   - MaxIdleConns: 配信APIは少数のホストのみなので小さめ
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 各リクエストはホスト・ステータス・所要時間とともにslogへ記録されます。
// リクエストURLにはAPIキーが含まれ得るため、パスやクエリは記録しません。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: &loggingTransport{next: t}}
}

type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	attrs := []any{
		"method", req.Method,
		"host", req.URL.Host,
		"latency_ms", time.Since(start).Milliseconds(),
	}
	switch {
	case err != nil:
		slog.Warn("outbound request failed", append(attrs, "error", err)...)
	case resp.StatusCode >= 400:
		slog.Warn("outbound request rejected", append(attrs, "status", resp.StatusCode)...)
	default:
		slog.Debug("outbound request", append(attrs, "status", resp.StatusCode)...)
	}
	return resp, err
}
