package asnlookup

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/oschwald/geoip2-golang"
)

// GeoIPLookuper resolves AS ownership from a local GeoLite2-ASN database.
// It answers without network traffic but the database carries no registry
// or country column, so those fields stay empty.
type GeoIPLookuper struct {
	reader *geoip2.Reader
}

var _ Lookuper = (*GeoIPLookuper)(nil)

// NewGeoIP opens the GeoLite2-ASN mmdb at path.
func NewGeoIP(path string) (*GeoIPLookuper, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening GeoLite2-ASN database %q: %w", path, err)
	}
	return &GeoIPLookuper{reader: reader}, nil
}

// Lookup implements Lookuper.
func (g *GeoIPLookuper) Lookup(_ context.Context, ip string) (*Info, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("invalid IP: %q", ip)
	}
	rec, err := g.reader.ASN(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip asn lookup for %s: %w", ip, err)
	}
	return &Info{
		ASN:         strconv.FormatUint(uint64(rec.AutonomousSystemNumber), 10),
		Description: rec.AutonomousSystemOrganization,
	}, nil
}

// Close releases the underlying mmdb mapping.
func (g *GeoIPLookuper) Close() error {
	return g.reader.Close()
}
