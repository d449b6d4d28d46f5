// Package whois implements a minimal WHOIS (RFC 3912) client that extracts
// the registrar and expiration-date fields the snapshot needs.
package whois

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"regexp"
	"strings"
	"time"
)

// Record holds the parsed fields of a WHOIS response. Missing fields stay
// empty; the raw response is kept for diagnostics.
type Record struct {
	Registrar      string
	ExpirationDate string
	Raw            string
}

// Client performs a WHOIS lookup for a registrable domain.
type Client interface {
	Lookup(ctx context.Context, domain string) (*Record, error)
}

// serversByTLD routes queries to registry servers with known-good field
// formats. Unlisted TLDs fall through to IANA's server.
var serversByTLD = map[string][]string{
	"com":  {"whois.verisign-grs.com"},
	"net":  {"whois.verisign-grs.com"},
	"org":  {"whois.publicinterestregistry.org"},
	"info": {"whois.nic.info"},
	"io":   {"whois.nic.io"},
	"tw":   {"whois.twnic.net.tw"},
}

var defaultServers = []string{"whois.iana.org", "whois.internic.net"}

// Registries disagree on field labels; try the common spellings in order.
var (
	registrarPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*Registrar:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*Sponsoring Registrar:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*registrar:\s*(.+)$`),
	}
	expirationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^\s*Registry Expiry Date:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*Registrar Registration Expiration Date:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*Expiration Date:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*Expiry Date:\s*(.+)$`),
		regexp.MustCompile(`(?im)^\s*paid-till:\s*(.+)$`),
	}
)

// TCPClient queries WHOIS servers over port 43 with per-dial timeouts.
type TCPClient struct {
	// Timeout bounds the dial and the full read of one server's response.
	Timeout time.Duration
}

var _ Client = (*TCPClient)(nil)

// NewClient returns a TCPClient with the given per-server timeout
// (10s when zero).
func NewClient(timeout time.Duration) *TCPClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &TCPClient{Timeout: timeout}
}

// Lookup queries the TLD-appropriate servers in order and returns the first
// parseable response.
func (c *TCPClient) Lookup(ctx context.Context, domain string) (*Record, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	idx := strings.LastIndex(domain, ".")
	if idx < 0 || idx == len(domain)-1 {
		return nil, fmt.Errorf("whois: invalid domain %q", domain)
	}
	servers := serversByTLD[domain[idx+1:]]
	if len(servers) == 0 {
		servers = defaultServers
	}

	var lastErr error
	for _, server := range servers {
		rec, err := c.query(ctx, domain, server)
		if err != nil {
			lastErr = fmt.Errorf("whois %s via %s: %w", domain, server, err)
			continue
		}
		return rec, nil
	}
	return nil, lastErr
}

func (c *TCPClient) query(ctx context.Context, domain, server string) (*Record, error) {
	dialer := &net.Dialer{Timeout: c.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(server, "43"))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	deadline := time.Now().Add(c.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(conn, "%s\r\n", domain); err != nil {
		return nil, err
	}

	var raw strings.Builder
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		raw.WriteString(scanner.Text())
		raw.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if raw.Len() == 0 {
		return nil, fmt.Errorf("empty response")
	}
	return Parse(raw.String()), nil
}

// Parse extracts the registrar and expiration fields from a raw WHOIS
// response body.
func Parse(raw string) *Record {
	rec := &Record{Raw: raw}
	for _, p := range registrarPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			rec.Registrar = strings.TrimSpace(m[1])
			break
		}
	}
	for _, p := range expirationPatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			rec.ExpirationDate = strings.TrimSpace(m[1])
			break
		}
	}
	return rec
}
