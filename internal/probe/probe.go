// Package probe checks HTTPS reachability of a host with a short HEAD
// request.
package probe

import (
	"context"
	"log/slog"
	"time"

	"github.com/imroc/req/v3"
)

// DefaultTimeout bounds the whole HEAD exchange including TLS handshake.
const DefaultTimeout = 2 * time.Second

// Prober reports whether a host answers HTTPS.
type Prober interface {
	HasHTTPS(ctx context.Context, host string) bool
}

// HTTPSProber issues HEAD https://<host>/ with a bounded client.
type HTTPSProber struct {
	client *req.Client
	logger *slog.Logger
}

var _ Prober = (*HTTPSProber)(nil)

// New creates an HTTPSProber. The client should carry a ~2s timeout; probe
// latency feeds straight into snapshot latency.
func New(client *req.Client, logger *slog.Logger) *HTTPSProber {
	return &HTTPSProber{client: client, logger: logger}
}

// HasHTTPS reports reachability. Any failure (TLS, connect, protocol,
// timeout) means false; the response body is closed on every path.
func (p *HTTPSProber) HasHTTPS(ctx context.Context, host string) bool {
	resp, err := p.client.R().SetContext(ctx).Head("https://" + host)
	if err != nil {
		p.logger.Debug("https probe failed", "host", host, "error", err)
		return false
	}
	defer resp.Body.Close()
	// Any HTTP status proves a completed TLS exchange; even a 5xx host
	// "has https".
	return resp.Response != nil
}
