// Package testutil provides shared test helpers for unit tests.
package testutil

import (
	"context"
	"io"
	"log/slog"

	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
)

// MockDNSClient implements dnsclient.Client for testing.
// Each field is a function so tests can set only the methods they need;
// unset methods behave like an empty, error-free zone.
type MockDNSClient struct {
	QueryFn    func(ctx context.Context, name string, qtype uint16) ([]dns.RR, error)
	TransferFn func(ctx context.Context, server, domain string) ([]string, error)
}

var _ dnsclient.Client = (*MockDNSClient)(nil)

// Query implements dnsclient.Client.
func (m *MockDNSClient) Query(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, name, qtype)
	}
	return nil, dnsclient.ErrNotFound
}

// Transfer implements dnsclient.Client.
func (m *MockDNSClient) Transfer(ctx context.Context, server, domain string) ([]string, error) {
	if m.TransferFn != nil {
		return m.TransferFn(ctx, server, domain)
	}
	return nil, dnsclient.ErrRefused
}

// MustRR parses a zone-file line into a dns.RR, panicking on malformed
// input. Only for fixtures.
func MustRR(line string) dns.RR {
	rr, err := dns.NewRR(line)
	if err != nil {
		panic(err)
	}
	return rr
}

// NopLogger returns a logger that discards all output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
