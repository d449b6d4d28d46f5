// Package asnlookup resolves the autonomous-system ownership of an IP
// address, either online through the Team Cymru DNS service or offline
// through a GeoLite2-ASN database.
package asnlookup

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
)

// Info describes the AS that originates an IP. Fields a given backend
// cannot supply stay empty.
type Info struct {
	ASN         string
	Country     string
	Registry    string
	Description string
}

// Lookuper resolves AS ownership for a single IP address.
type Lookuper interface {
	Lookup(ctx context.Context, ip string) (*Info, error)
}

const (
	cymruIPv4Suffix = "%s.origin.asn.cymru.com"
	cymruIPv6Suffix = "%s.origin6.asn.cymru.com"
	cymruASNSuffix  = "AS%s.asn.cymru.com"
)

// CymruLookuper queries the Team Cymru IP-to-ASN DNS zones.
type CymruLookuper struct {
	dns    dnsclient.Client
	logger *slog.Logger
}

var _ Lookuper = (*CymruLookuper)(nil)

// NewCymru creates a Team Cymru backed Lookuper on the given DNS client.
func NewCymru(client dnsclient.Client, logger *slog.Logger) *CymruLookuper {
	return &CymruLookuper{dns: client, logger: logger}
}

// Lookup resolves the origin ASN for ip, then enriches it with the ASN's
// registry description record.
func (c *CymruLookuper) Lookup(ctx context.Context, ip string) (*Info, error) {
	reversed, isV6, err := reverseIP(ip)
	if err != nil {
		return nil, err
	}
	suffix := cymruIPv4Suffix
	if isV6 {
		suffix = cymruIPv6Suffix
	}

	txt, err := c.firstTXT(ctx, fmt.Sprintf(suffix, reversed))
	if err != nil {
		return nil, fmt.Errorf("cymru origin lookup for %s: %w", ip, err)
	}

	info := &Info{}
	// Origin record: "15169 | 8.8.8.0/24 | US | arin | 1992-12-01"
	parts := strings.Split(txt, "|")
	if len(parts) >= 1 {
		// Multi-origin prefixes list several ASNs; keep the first.
		info.ASN = strings.Fields(strings.TrimSpace(parts[0]))[0]
	}
	if len(parts) >= 3 {
		info.Country = strings.TrimSpace(parts[2])
	}
	if len(parts) >= 4 {
		info.Registry = strings.TrimSpace(parts[3])
	}

	if info.ASN != "" {
		c.enrich(ctx, info)
	}
	return info, nil
}

// enrich fetches the AS description record. Failure keeps the origin data.
func (c *CymruLookuper) enrich(ctx context.Context, info *Info) {
	txt, err := c.firstTXT(ctx, fmt.Sprintf(cymruASNSuffix, info.ASN))
	if err != nil {
		c.logger.Debug("cymru asn enrich failed", "asn", info.ASN, "error", err)
		return
	}
	// ASN record: "15169 | US | arin | 2000-03-30 | GOOGLE, US"
	parts := strings.Split(txt, "|")
	if len(parts) >= 5 {
		info.Description = strings.TrimSpace(parts[4])
	}
}

func (c *CymruLookuper) firstTXT(ctx context.Context, name string) (string, error) {
	answers, err := c.dns.Query(ctx, name, dns.TypeTXT)
	if err != nil {
		return "", err
	}
	for _, rr := range answers {
		if txt, ok := rr.(*dns.TXT); ok && len(txt.Txt) > 0 {
			return strings.Join(txt.Txt, ""), nil
		}
	}
	return "", dnsclient.ErrNoAnswer
}

// reverseIP reverses an IP for Team Cymru queries. IPv4 reverses octets;
// IPv6 expands to nibbles reversed in place.
func reverseIP(ip string) (string, bool, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", false, fmt.Errorf("invalid IP: %q", ip)
	}
	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d", v4[3], v4[2], v4[1], v4[0]), false, nil
	}
	v6 := parsed.To16()
	nibbles := make([]string, 0, 32)
	for _, b := range v6 {
		nibbles = append(nibbles, fmt.Sprintf("%x", b>>4), fmt.Sprintf("%x", b&0xf))
	}
	for i, j := 0, len(nibbles)-1; i < j; i, j = i+1, j-1 {
		nibbles[i], nibbles[j] = nibbles[j], nibbles[i]
	}
	return strings.Join(nibbles, "."), true, nil
}
