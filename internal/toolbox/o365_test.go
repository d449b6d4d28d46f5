package toolbox_test

import (
	"context"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/testutil"
)

// tenantZone answers the probes a Microsoft 365 tenant would answer.
var tenantZone = map[string]string{
	"autodiscover.contoso.com CNAME":          "autodiscover.contoso.com. 300 IN CNAME autodiscover.outlook.com.",
	"msoid.contoso.com CNAME":                 "msoid.contoso.com. 300 IN CNAME clientconfig.microsoftonline-p.net.",
	"lyncdiscover.contoso.com CNAME":          "lyncdiscover.contoso.com. 300 IN CNAME webdir.online.lync.com.",
	"contoso.com MX":                          "contoso.com. 300 IN MX 0 contoso-com.mail.protection.outlook.com.",
	"contoso.com TXT":                         `contoso.com. 300 IN TXT "v=spf1 include:spf.protection.outlook.com -all"`,
	"_sip._tls.contoso.com SRV":               "_sip._tls.contoso.com. 300 IN SRV 100 1 443 sipdir.online.lync.com.",
	"_sipfederationtls._tcp.contoso.com SRV":  "_sipfederationtls._tcp.contoso.com. 300 IN SRV 100 1 5061 sipfed.online.lync.com.",
}

func tenantClient(zone map[string]string) *testutil.MockDNSClient {
	return &testutil.MockDNSClient{
		QueryFn: func(_ context.Context, name string, qtype uint16) ([]dns.RR, error) {
			if line, ok := zone[name+" "+dns.TypeToString[qtype]]; ok {
				return []dns.RR{testutil.MustRR(line)}, nil
			}
			return nil, dnsclient.ErrNotFound
		},
	}
}

func TestO365Records_FullTenant(t *testing.T) {
	tb := newToolbox(tenantClient(tenantZone))

	out := tb.O365Records(context.Background(), "contoso.com")

	assert.Equal(t, []string{
		"autodiscover.outlook.com",
		"clientconfig.microsoftonline-p.net",
		"webdir.online.lync.com",
	}, out.CNAME)
	assert.Equal(t, []string{"contoso-com.mail.protection.outlook.com"}, out.MX)
	assert.Equal(t, []string{"v=spf1 include:spf.protection.outlook.com -all"}, out.SPF)
	assert.Equal(t, []string{"sipdir.online.lync.com", "sipfed.online.lync.com"}, out.SRV)
}

func TestO365Records_NoTenant(t *testing.T) {
	tb := newToolbox(zoneClient())

	out := tb.O365Records(context.Background(), "example.com")

	// Each probe still claims its slot so the bucket shape is stable.
	assert.Equal(t, []string{"", "", ""}, out.CNAME)
	assert.Equal(t, []string{""}, out.MX)
	assert.Equal(t, []string{""}, out.SPF)
	assert.Equal(t, []string{"", ""}, out.SRV)
}

func TestO365Records_ForeignAnswersIgnored(t *testing.T) {
	// The probe names exist but point elsewhere; no signature matches.
	zone := map[string]string{
		"autodiscover.contoso.com CNAME": "autodiscover.contoso.com. 300 IN CNAME mail.contoso.com.",
		"contoso.com MX":                 "contoso.com. 300 IN MX 10 mx.contoso.com.",
		"contoso.com TXT":                `contoso.com. 300 IN TXT "v=spf1 mx -all"`,
	}
	tb := newToolbox(tenantClient(zone))

	out := tb.O365Records(context.Background(), "contoso.com")

	assert.Equal(t, []string{"", "", ""}, out.CNAME)
	assert.Equal(t, []string{""}, out.MX)
	assert.Equal(t, []string{""}, out.SPF)
	assert.Equal(t, []string{"", ""}, out.SRV)
}
