// Package toolbox performs every per-record-type and derived query that
// feeds a domain snapshot: direct DNS records, nameserver glue addresses,
// the SRV service sweep, AS ownership, zone transfer, WHOIS fields, mail
// provider detection, the HTTPS probe and the blacklist verdict.
//
// Protocol failures are environmental, not exceptional: every lookup
// degrades to its empty value and logs the condition. The only error a
// caller ever sees is a rejected input domain.
package toolbox

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/asnlookup"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/detect"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/probe"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/validate"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/whois"
)

// Blacklister is satisfied by blacklist.Checker.
type Blacklister interface {
	IsBlacklisted(ctx context.Context, domain string) bool
}

// Deps are the injected collaborators. Everything is an interface or a
// value type so tests can substitute doubles without network access.
type Deps struct {
	DNS       dnsclient.Client
	Whois     whois.Client
	ASN       asnlookup.Lookuper
	Blacklist Blacklister
	Prober    probe.Prober
	Validator *validate.Validator
	Logger    *slog.Logger
	// PoolSize bounds the snapshot fan-out. Defaults to 16.
	PoolSize int
}

// Toolbox executes lookups for normalized registrable domains. It holds no
// per-domain state and is safe for concurrent use.
type Toolbox struct {
	dns       dnsclient.Client
	whois     whois.Client
	asn       asnlookup.Lookuper
	blacklist Blacklister
	prober    probe.Prober
	validator *validate.Validator
	logger    *slog.Logger
	poolSize  int
}

// New wires a Toolbox from its collaborators.
func New(deps Deps) *Toolbox {
	if deps.PoolSize < 1 {
		deps.PoolSize = 16
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Toolbox{
		dns:       deps.DNS,
		whois:     deps.Whois,
		asn:       deps.ASN,
		blacklist: deps.Blacklist,
		prober:    deps.Prober,
		validator: deps.Validator,
		logger:    deps.Logger,
		poolSize:  deps.PoolSize,
	}
}

// resolve wraps a single DNS query. Every protocol condition (NXDOMAIN, no
// answer, refusal, timeout, malformed response, socket failure) returns nil
// with a debug log; none of them propagates.
func (t *Toolbox) resolve(ctx context.Context, name string, qtype uint16) []dns.RR {
	answers, err := t.dns.Query(ctx, name, qtype)
	if err != nil {
		if errors.Is(err, dnsclient.ErrNotFound) || errors.Is(err, dnsclient.ErrNoAnswer) {
			t.logger.Debug("dns record absent", "name", name, "type", dns.TypeToString[qtype])
		} else {
			t.logger.Debug("dns query failed", "name", name, "type", dns.TypeToString[qtype], "error", err)
		}
		return nil
	}
	return answers
}

// resolveQuiet is resolve without the per-miss log line. The service sweep
// issues thousands of queries that miss almost every time; logging each one
// would drown the debug stream.
func (t *Toolbox) resolveQuiet(ctx context.Context, name string, qtype uint16) []dns.RR {
	answers, err := t.dns.Query(ctx, name, qtype)
	if err != nil {
		return nil
	}
	return answers
}

// scalar returns the first answer for one of the scalar record types,
// passed through the validator. Absent or implausible answers become "".
func (t *Toolbox) scalar(ctx context.Context, domain string, rt record.Type, qtype uint16) string {
	value := strings.TrimSpace(dnsclient.FirstString(t.resolve(ctx, domain, qtype)))
	if value == "" {
		return ""
	}
	if !t.validator.IsValid(domain, rt, value) {
		t.logger.Debug("dns record rejected as implausible", "domain", domain, "type", rt.String(), "value", value)
		return ""
	}
	return value
}

// A returns the domain's first valid A record, or "".
func (t *Toolbox) A(ctx context.Context, domain string) string {
	return t.scalar(ctx, domain, record.TypeA, dns.TypeA)
}

// AAAA returns the domain's first valid AAAA record, or "".
func (t *Toolbox) AAAA(ctx context.Context, domain string) string {
	return t.scalar(ctx, domain, record.TypeAAAA, dns.TypeAAAA)
}

// MX returns the domain's first MX record ("priority exchange"), or "".
func (t *Toolbox) MX(ctx context.Context, domain string) string {
	return t.scalar(ctx, domain, record.TypeMX, dns.TypeMX)
}

// SOA returns the domain's SOA rdata text, or "".
func (t *Toolbox) SOA(ctx context.Context, domain string) string {
	return t.scalar(ctx, domain, record.TypeSOA, dns.TypeSOA)
}

// TXT returns all TXT strings in answer order.
func (t *Toolbox) TXT(ctx context.Context, domain string) []string {
	var out []string
	for _, rr := range t.resolve(ctx, domain, dns.TypeTXT) {
		if txt, ok := rr.(*dns.TXT); ok {
			out = append(out, strings.Join(txt.Txt, ""))
		}
	}
	return out
}

// NS returns the delegation nameserver hostnames with the trailing root dot
// stripped.
func (t *Toolbox) NS(ctx context.Context, domain string) []string {
	var out []string
	for _, rr := range t.resolve(ctx, domain, dns.TypeNS) {
		if ns, ok := rr.(*dns.NS); ok {
			out = append(out, strings.TrimSuffix(ns.Ns, "."))
		}
	}
	return out
}

// WWW reports whether www.<domain> resolves, returning the canonical host
// string when it does and "" when it does not.
func (t *Toolbox) WWW(ctx context.Context, domain string) string {
	host := "www." + domain
	if len(t.resolve(ctx, host, dns.TypeA)) > 0 {
		return host
	}
	return ""
}

// GlueIPs resolves the address records of every delegation nameserver and
// returns the union. Per-nameserver failures are swallowed. Implausible
// addresses are logged but retained: a nameserver answering with private
// space is itself a finding worth keeping in the snapshot.
func (t *Toolbox) GlueIPs(ctx context.Context, domain string, rt record.Type) []string {
	qtype := uint16(dns.TypeA)
	answerType := record.TypeA
	if rt == record.TypeIPv6 {
		qtype = dns.TypeAAAA
		answerType = record.TypeAAAA
	}

	var out []string
	for _, ns := range t.NS(ctx, domain) {
		for _, rr := range t.resolve(ctx, ns, qtype) {
			value := strings.TrimSpace(dnsclient.RRString(rr))
			if !t.validator.IsValid(domain, answerType, value) {
				t.logger.Debug("nameserver address rejected as implausible",
					"domain", domain, "nameserver", ns, "value", value)
			}
			out = append(out, value)
		}
	}
	return out
}

// PTR reverse-resolves the domain's primary A address. No A record or no
// PTR answer both yield "".
func (t *Toolbox) PTR(ctx context.Context, domain string) string {
	addr := t.A(ctx, domain)
	if addr == "" {
		return ""
	}
	arpa, err := dns.ReverseAddr(addr)
	if err != nil {
		t.logger.Debug("reverse address build failed", "ip", addr, "error", err)
		return ""
	}
	for _, rr := range t.resolve(ctx, arpa, dns.TypePTR) {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, ".")
		}
	}
	return ""
}

// XFR attempts a zone transfer against the zone's SOA master. Refusals and
// timeouts are the expected common case and yield an empty list.
func (t *Toolbox) XFR(ctx context.Context, domain string) []string {
	soaAnswers := t.resolve(ctx, domain, dns.TypeSOA)
	var master string
	for _, rr := range soaAnswers {
		if soa, ok := rr.(*dns.SOA); ok {
			master = strings.TrimSuffix(soa.Ns, ".")
			break
		}
	}
	if master == "" {
		return nil
	}

	var masterAddr string
	for _, rr := range t.resolve(ctx, master, dns.TypeA) {
		if a, ok := rr.(*dns.A); ok {
			masterAddr = a.A.String()
			break
		}
	}
	if masterAddr == "" {
		return nil
	}

	lines, err := t.dns.Transfer(ctx, masterAddr, domain)
	if err != nil {
		t.logger.Debug("zone transfer refused", "domain", domain, "master", master, "error", err)
		return nil
	}
	return lines
}

// ASNPools resolves the IPv4 glue addresses of the domain's nameservers and
// looks up AS ownership for each. The five lists stay index-aligned: a
// failed lookup contributes empty strings at its position, never a shorter
// list.
func (t *Toolbox) ASNPools(ctx context.Context, domain string) record.ASNPools {
	ips := t.GlueIPs(ctx, domain, record.TypeIPv4)
	pools := record.ASNPools{
		IPList:          ips,
		ASNList:         make([]string, len(ips)),
		CountryList:     make([]string, len(ips)),
		RegistryList:    make([]string, len(ips)),
		DescriptionList: make([]string, len(ips)),
	}
	for i, ip := range ips {
		info, err := t.asn.Lookup(ctx, ip)
		if err != nil {
			t.logger.Debug("asn lookup failed", "ip", ip, "error", err)
			continue
		}
		pools.ASNList[i] = info.ASN
		pools.CountryList[i] = info.Country
		pools.RegistryList[i] = info.Registry
		pools.DescriptionList[i] = info.Description
	}
	return pools
}

// whoisRecord performs one WHOIS lookup, degrading to an empty record.
func (t *Toolbox) whoisRecord(ctx context.Context, domain string) *whois.Record {
	rec, err := t.whois.Lookup(ctx, domain)
	if err != nil {
		t.logger.Debug("whois lookup failed", "domain", domain, "error", err)
		return &whois.Record{}
	}
	return rec
}

// Registrar returns the WHOIS registrar field, or "".
func (t *Toolbox) Registrar(ctx context.Context, domain string) string {
	return t.whoisRecord(ctx, domain).Registrar
}

// ExpirationDate returns the WHOIS expiry field, or "".
func (t *Toolbox) ExpirationDate(ctx context.Context, domain string) string {
	return t.whoisRecord(ctx, domain).ExpirationDate
}

// EmailProvider identifies the mail service behind the domain's MX record,
// or "".
func (t *Toolbox) EmailProvider(ctx context.Context, domain string) string {
	mx := t.MX(ctx, domain)
	if mx == "" {
		return ""
	}
	return detect.EmailProvider(mx)
}

// HasHTTPS probes the www host when one exists, the bare domain otherwise.
func (t *Toolbox) HasHTTPS(ctx context.Context, domain string) bool {
	host := domain
	if www := t.WWW(ctx, domain); www != "" {
		host = www
	}
	return t.prober.HasHTTPS(ctx, host)
}

// IsBlacklisted delegates to the blacklist checker.
func (t *Toolbox) IsBlacklisted(ctx context.Context, domain string) bool {
	return t.blacklist.IsBlacklisted(ctx, domain)
}
