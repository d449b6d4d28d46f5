package toolbox_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/asnlookup"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/testutil"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/toolbox"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/validate"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/whois"
)

type stubWhois struct {
	rec *whois.Record
	err error
}

func (s *stubWhois) Lookup(context.Context, string) (*whois.Record, error) {
	return s.rec, s.err
}

type stubASN struct {
	info *asnlookup.Info
	err  error
}

func (s *stubASN) Lookup(context.Context, string) (*asnlookup.Info, error) {
	return s.info, s.err
}

type stubBlacklist struct{ listed bool }

func (s *stubBlacklist) IsBlacklisted(context.Context, string) bool { return s.listed }

type stubProber struct{ hosts []string }

func (s *stubProber) HasHTTPS(_ context.Context, host string) bool {
	s.hosts = append(s.hosts, host)
	return true
}

// zone is a tiny in-memory zone serving the answers a full lookup touches.
var zone = map[string][]string{
	"example.com A":             {"example.com. 300 IN A 93.184.216.34"},
	"example.com AAAA":          {"example.com. 300 IN AAAA 2606:2800:220:1:248:1893:25c8:1946"},
	"example.com MX":            {"example.com. 300 IN MX 10 aspmx.l.google.com."},
	"example.com SOA":           {"example.com. 300 IN SOA ns1.example.com. hostmaster.example.com. 2024010101 7200 900 1209600 86400"},
	"example.com NS":            {"example.com. 300 IN NS ns1.example.com.", "example.com. 300 IN NS ns2.example.com."},
	"example.com TXT":           {`example.com. 300 IN TXT "v=spf1 -all"`},
	"www.example.com A":         {"www.example.com. 300 IN A 93.184.216.34"},
	"ns1.example.com A":         {"ns1.example.com. 300 IN A 198.41.0.4"},
	"ns2.example.com A":         {"ns2.example.com. 300 IN A 192.168.0.53"},
	"ns1.example.com AAAA":      {"ns1.example.com. 300 IN AAAA 2001:500:1::53"},
	"34.216.184.93.in-addr.arpa. PTR": {"34.216.184.93.in-addr.arpa. 300 IN PTR web.example.com."},
}

func zoneClient() *testutil.MockDNSClient {
	return &testutil.MockDNSClient{
		QueryFn: func(_ context.Context, name string, qtype uint16) ([]dns.RR, error) {
			key := strings.TrimSuffix(name, ".") + " " + dns.TypeToString[qtype]
			if qtype == dns.TypePTR {
				key = name + " PTR"
			}
			lines, ok := zone[key]
			if !ok {
				return nil, dnsclient.ErrNotFound
			}
			rrs := make([]dns.RR, 0, len(lines))
			for _, l := range lines {
				rrs = append(rrs, testutil.MustRR(l))
			}
			return rrs, nil
		},
	}
}

func newToolbox(client dnsclient.Client) *toolbox.Toolbox {
	return toolbox.New(toolbox.Deps{
		DNS:       client,
		Whois:     &stubWhois{rec: &whois.Record{Registrar: "Test Registrar", ExpirationDate: "2026-01-01"}},
		ASN:       &stubASN{info: &asnlookup.Info{ASN: "15169", Country: "US", Registry: "arin", Description: "GOOGLE, US"}},
		Blacklist: &stubBlacklist{},
		Prober:    &stubProber{},
		Validator: validate.New(nil),
		Logger:    testutil.NopLogger(),
		PoolSize:  4,
	})
}

func TestScalarLookups(t *testing.T) {
	tb := newToolbox(zoneClient())
	ctx := context.Background()

	assert.Equal(t, "93.184.216.34", tb.A(ctx, "example.com"))
	assert.Equal(t, "2606:2800:220:1:248:1893:25c8:1946", tb.AAAA(ctx, "example.com"))
	assert.Equal(t, "10 aspmx.l.google.com.", tb.MX(ctx, "example.com"))
	assert.Contains(t, tb.SOA(ctx, "example.com"), "ns1.example.com.")
}

func TestScalarLookups_AbsentDomain(t *testing.T) {
	tb := newToolbox(zoneClient())
	ctx := context.Background()

	assert.Empty(t, tb.A(ctx, "absent.example"))
	assert.Empty(t, tb.MX(ctx, "absent.example"))
	assert.Empty(t, tb.SOA(ctx, "absent.example"))
}

func TestA_ImplausibleAnswerRejected(t *testing.T) {
	mock := &testutil.MockDNSClient{
		QueryFn: func(_ context.Context, name string, _ uint16) ([]dns.RR, error) {
			return []dns.RR{testutil.MustRR(name + " 300 IN A 127.0.0.1")}, nil
		},
	}
	tb := newToolbox(mock)

	assert.Empty(t, tb.A(context.Background(), "example.com"))
}

func TestNS_TrailingDotStripped(t *testing.T) {
	tb := newToolbox(zoneClient())

	assert.Equal(t, []string{"ns1.example.com", "ns2.example.com"},
		tb.NS(context.Background(), "example.com"))
}

func TestTXT(t *testing.T) {
	tb := newToolbox(zoneClient())

	assert.Equal(t, []string{"v=spf1 -all"}, tb.TXT(context.Background(), "example.com"))
}

func TestWWW(t *testing.T) {
	tb := newToolbox(zoneClient())
	ctx := context.Background()

	assert.Equal(t, "www.example.com", tb.WWW(ctx, "example.com"))
	assert.Empty(t, tb.WWW(ctx, "absent.example"))
}

func TestGlueIPs_RetainsImplausibleAddresses(t *testing.T) {
	tb := newToolbox(zoneClient())

	ips := tb.GlueIPs(context.Background(), "example.com", record.TypeIPv4)

	// ns2's answer is private space; it is logged but kept.
	assert.Equal(t, []string{"198.41.0.4", "192.168.0.53"}, ips)
}

func TestGlueIPs_IPv6(t *testing.T) {
	tb := newToolbox(zoneClient())

	ips := tb.GlueIPs(context.Background(), "example.com", record.TypeIPv6)
	assert.Equal(t, []string{"2001:500:1::53"}, ips)
}

func TestPTR(t *testing.T) {
	tb := newToolbox(zoneClient())

	assert.Equal(t, "web.example.com", tb.PTR(context.Background(), "example.com"))
	assert.Empty(t, tb.PTR(context.Background(), "absent.example"))
}

func TestXFR(t *testing.T) {
	var transferServer, transferDomain string
	client := zoneClient()
	client.TransferFn = func(_ context.Context, server, domain string) ([]string, error) {
		transferServer, transferDomain = server, domain
		return []string{"example.com. 300 IN SOA ..."}, nil
	}
	tb := newToolbox(client)

	lines := tb.XFR(context.Background(), "example.com")

	require.Len(t, lines, 1)
	// The transfer targets the SOA master's address, not the domain.
	assert.Equal(t, "198.41.0.4", transferServer)
	assert.Equal(t, "example.com", transferDomain)
}

func TestXFR_RefusedIsEmpty(t *testing.T) {
	tb := newToolbox(zoneClient())

	assert.Empty(t, tb.XFR(context.Background(), "example.com"))
}

func TestASNPools_IndexAligned(t *testing.T) {
	tb := newToolbox(zoneClient())

	pools := tb.ASNPools(context.Background(), "example.com")

	require.Len(t, pools.IPList, 2)
	assert.Len(t, pools.ASNList, 2)
	assert.Len(t, pools.CountryList, 2)
	assert.Len(t, pools.RegistryList, 2)
	assert.Len(t, pools.DescriptionList, 2)
	assert.Equal(t, "15169", pools.ASNList[0])
	assert.Equal(t, "GOOGLE, US", pools.DescriptionList[0])
}

func TestASNPools_LookupFailureLeavesEmptySlots(t *testing.T) {
	tb := toolbox.New(toolbox.Deps{
		DNS:       zoneClient(),
		Whois:     &stubWhois{rec: &whois.Record{}},
		ASN:       &stubASN{err: assert.AnError},
		Blacklist: &stubBlacklist{},
		Prober:    &stubProber{},
		Validator: validate.New(nil),
		Logger:    testutil.NopLogger(),
	})

	pools := tb.ASNPools(context.Background(), "example.com")

	require.Len(t, pools.IPList, 2)
	assert.Equal(t, []string{"", ""}, pools.ASNList)
}

func TestWhoisFields(t *testing.T) {
	tb := newToolbox(zoneClient())
	ctx := context.Background()

	assert.Equal(t, "Test Registrar", tb.Registrar(ctx, "example.com"))
	assert.Equal(t, "2026-01-01", tb.ExpirationDate(ctx, "example.com"))
}

func TestWhoisFields_FailureDegrades(t *testing.T) {
	tb := toolbox.New(toolbox.Deps{
		DNS:       zoneClient(),
		Whois:     &stubWhois{err: assert.AnError},
		ASN:       &stubASN{info: &asnlookup.Info{}},
		Blacklist: &stubBlacklist{},
		Prober:    &stubProber{},
		Validator: validate.New(nil),
		Logger:    testutil.NopLogger(),
	})

	assert.Empty(t, tb.Registrar(context.Background(), "example.com"))
	assert.Empty(t, tb.ExpirationDate(context.Background(), "example.com"))
}

func TestEmailProvider(t *testing.T) {
	tb := newToolbox(zoneClient())

	assert.Equal(t, "Google_Workspace", tb.EmailProvider(context.Background(), "example.com"))
	assert.Empty(t, tb.EmailProvider(context.Background(), "absent.example"))
}

func TestHasHTTPS_PrefersWWWHost(t *testing.T) {
	prober := &stubProber{}
	tb := toolbox.New(toolbox.Deps{
		DNS:       zoneClient(),
		Whois:     &stubWhois{rec: &whois.Record{}},
		ASN:       &stubASN{info: &asnlookup.Info{}},
		Blacklist: &stubBlacklist{},
		Prober:    prober,
		Validator: validate.New(nil),
		Logger:    testutil.NopLogger(),
	})

	assert.True(t, tb.HasHTTPS(context.Background(), "example.com"))
	require.Len(t, prober.hosts, 1)
	assert.Equal(t, "www.example.com", prober.hosts[0])
}

func TestSnapshot(t *testing.T) {
	client := zoneClient()
	client.TransferFn = func(context.Context, string, string) ([]string, error) {
		return nil, dnsclient.ErrRefused
	}
	tb := newToolbox(client)

	snap, err := tb.Snapshot(context.Background(), "https://www.example.com/path", false)
	require.NoError(t, err)

	assert.Equal(t, "example.com", snap.DomainName)
	assert.False(t, snap.CheckTime.IsZero())
	assert.Greater(t, snap.SearchUsedTime, time.Duration(0))

	assert.Equal(t, "93.184.216.34", snap.A)
	assert.Equal(t, "10 aspmx.l.google.com.", snap.MX)
	assert.Equal(t, []string{"ns1.example.com", "ns2.example.com"}, snap.NS)
	assert.Equal(t, []string{"198.41.0.4", "192.168.0.53"}, snap.IPv4)
	assert.Equal(t, "web.example.com", snap.PTR)
	assert.Equal(t, "Test Registrar", snap.Registrar)
	assert.Equal(t, "2026-01-01", snap.ExpirationDate)
	assert.Equal(t, "Google_Workspace", snap.EmailExchangeService)
	assert.True(t, snap.HasHTTPS)
	assert.False(t, snap.IsBlacklisted)

	// The sweep was not requested; its lists stay empty.
	assert.Empty(t, snap.SRV.UDP)
	assert.Empty(t, snap.SRV.TCP)
	assert.Empty(t, snap.SRV.TLS)
}

func TestSnapshot_RejectedInput(t *testing.T) {
	tb := newToolbox(zoneClient())

	_, err := tb.Snapshot(context.Background(), "ftp://example.com", false)
	assert.ErrorIs(t, err, apperr.ErrRejected)
}
