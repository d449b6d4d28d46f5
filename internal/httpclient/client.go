// Package httpclient builds the shared req.Client instances used by the
// HTTPS prober and the threat-intel API client.
package httpclient

import (
	"time"

	"github.com/imroc/req/v3"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/ratelimit"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/version"
)

// DefaultUserAgent identifies dnsintel honestly so server operators can
// recognise its traffic. var (not const) because version.Version is a
// link-time variable.
var DefaultUserAgent = "dnsintel/" + version.Version

// New returns a req.Client with the given overall request timeout and the
// default User-Agent. A zero timeout leaves req's default in place.
func New(timeout time.Duration) *req.Client {
	client := req.NewClient().SetUserAgent(DefaultUserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

// AttachRateLimit gates every outbound request of client through limiter.
func AttachRateLimit(client *req.Client, limiter *ratelimit.Limiter) {
	client.OnBeforeRequest(func(_ *req.Client, r *req.Request) error {
		return limiter.Wait(r.Context())
	})
}
