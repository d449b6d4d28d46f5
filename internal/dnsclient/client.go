// Package dnsclient wraps github.com/miekg/dns behind a small interface the
// toolbox and its tests depend on: plain queries by name and type, plus zone
// transfers, which the platform resolver cannot express.
package dnsclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// Sentinel errors for protocol-level outcomes. The toolbox treats all of
// them as transient conditions that degrade a field to its empty value.
var (
	ErrNotFound = errors.New("dns: name not found")
	ErrNoAnswer = errors.New("dns: no answer")
	ErrServFail = errors.New("dns: server failure")
	ErrRefused  = errors.New("dns: query refused")
)

// Client is the DNS protocol surface consumed by the toolbox.
type Client interface {
	// Query resolves name with the given record type and returns the
	// answer section. NXDOMAIN and empty answers map to ErrNotFound and
	// ErrNoAnswer respectively.
	Query(ctx context.Context, name string, qtype uint16) ([]dns.RR, error)
	// Transfer attempts an AXFR of domain against server (host or
	// host:port) and returns the zone's records as sorted text lines.
	Transfer(ctx context.Context, server, domain string) ([]string, error)
}

// Config controls the resolver behaviour.
type Config struct {
	// Nameservers to query, "host:port" form. Empty means the servers
	// from /etc/resolv.conf, falling back to well-known public resolvers.
	Nameservers []string
	// Timeout per query exchange. Defaults to 5s.
	Timeout time.Duration
	// Retries on transport failure or SERVFAIL. Defaults to 2.
	Retries int
}

// Resolver implements Client on top of miekg/dns.
type Resolver struct {
	cfg    Config
	client *dns.Client
}

var _ Client = (*Resolver)(nil)

// New builds a Resolver, filling config defaults and discovering system
// nameservers when none are given.
func New(cfg Config) *Resolver {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Retries == 0 {
		cfg.Retries = 2
	}
	if len(cfg.Nameservers) == 0 {
		cfg.Nameservers = systemNameservers()
	}
	return &Resolver{
		cfg:    cfg,
		client: &dns.Client{Timeout: cfg.Timeout},
	}
}

// systemNameservers reads /etc/resolv.conf, falling back to public DNS.
func systemNameservers() []string {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return []string{"8.8.8.8:53", "1.1.1.1:53"}
	}
	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, withPort(s, conf.Port))
	}
	return servers
}

func withPort(server, port string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	if port == "" {
		port = "53"
	}
	return net.JoinHostPort(server, port)
}

// Query implements Client.
func (r *Resolver) Query(ctx context.Context, name string, qtype uint16) ([]dns.RR, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), qtype)
	m.RecursionDesired = true

	var lastErr error
	for attempt := 0; attempt <= r.cfg.Retries; attempt++ {
		for _, server := range r.cfg.Nameservers {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			resp, _, err := r.client.ExchangeContext(ctx, m, server)
			if err != nil {
				lastErr = fmt.Errorf("dns exchange with %s: %w", server, err)
				continue
			}
			switch resp.Rcode {
			case dns.RcodeSuccess:
				if len(resp.Answer) == 0 {
					return nil, ErrNoAnswer
				}
				return resp.Answer, nil
			case dns.RcodeNameError:
				return nil, ErrNotFound
			case dns.RcodeRefused:
				lastErr = ErrRefused
			case dns.RcodeServerFailure:
				lastErr = ErrServFail
			default:
				lastErr = fmt.Errorf("dns: unexpected rcode %s", dns.RcodeToString[resp.Rcode])
			}
		}
	}
	if lastErr == nil {
		lastErr = ErrServFail
	}
	return nil, lastErr
}

// Transfer implements Client. Most authoritative servers refuse AXFR, so a
// refusal surfaces as an ordinary error the caller maps to an empty list.
func (r *Resolver) Transfer(ctx context.Context, server, domain string) ([]string, error) {
	m := new(dns.Msg)
	m.SetAxfr(dns.Fqdn(domain))

	tr := &dns.Transfer{
		DialTimeout:  r.cfg.Timeout,
		ReadTimeout:  r.cfg.Timeout,
		WriteTimeout: r.cfg.Timeout,
	}
	env, err := tr.In(m, withPort(server, "53"))
	if err != nil {
		return nil, fmt.Errorf("axfr %s from %s: %w", domain, server, err)
	}

	var lines []string
	for e := range env {
		if e.Error != nil {
			return nil, fmt.Errorf("axfr %s from %s: %w", domain, server, e.Error)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, rr := range e.RR {
			lines = append(lines, rr.String())
		}
	}
	sort.Strings(lines)
	return lines, nil
}

// FirstString renders the first record of answers as display text with any
// type-specific prefix handling already applied, or "" for an empty set.
func FirstString(answers []dns.RR) string {
	if len(answers) == 0 {
		return ""
	}
	return RRString(answers[0])
}

// RRString renders a single resource record's data (not its header) the way
// dig would print the RDATA portion.
func RRString(rr dns.RR) string {
	s := rr.String()
	h := rr.Header().String()
	return strings.TrimPrefix(s, h)
}
