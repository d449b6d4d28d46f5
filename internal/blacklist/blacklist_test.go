package blacklist_test

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/blacklist"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/httpclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/testutil"
)

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"any", "all"} {
		p, err := blacklist.ParsePolicy(s)
		require.NoError(t, err)
		assert.Equal(t, blacklist.Policy(s), p)
	}

	_, err := blacklist.ParsePolicy("either")
	assert.Error(t, err)
	_, err = blacklist.ParsePolicy("")
	assert.Error(t, err)
}

// listedMock answers the DNSBL query for listed.example in every zone and
// NXDOMAIN for everything else.
func listedMock(listed string) *testutil.MockDNSClient {
	return &testutil.MockDNSClient{
		QueryFn: func(_ context.Context, name string, _ uint16) ([]dns.RR, error) {
			if len(name) > len(listed) && name[:len(listed)+1] == listed+"." {
				return []dns.RR{testutil.MustRR(name + " 300 IN A 127.0.1.2")}, nil
			}
			return nil, dnsclient.ErrNotFound
		},
	}
}

func TestIsBlacklisted_DNSBLHit(t *testing.T) {
	c := blacklist.New(listedMock("bad.example"), httpclient.New(0), nil, "", blacklist.PolicyAny, testutil.NopLogger())

	assert.True(t, c.IsBlacklisted(context.Background(), "bad.example"))
	assert.False(t, c.IsBlacklisted(context.Background(), "good.example"))
}

func TestIsBlacklisted_DNSBLFailuresDegradeToClean(t *testing.T) {
	mock := &testutil.MockDNSClient{
		QueryFn: func(_ context.Context, _ string, _ uint16) ([]dns.RR, error) {
			return nil, dnsclient.ErrServFail
		},
	}
	c := blacklist.New(mock, httpclient.New(0), nil, "", blacklist.PolicyAny, testutil.NopLogger())

	assert.False(t, c.IsBlacklisted(context.Background(), "example.com"))
}

func activateVT(t *testing.T, verdict string) {
	t.Helper()
	httpmock.RegisterResponder("GET", `=~^https://www\.virustotal\.com/api/v3/urls/`,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{
			"data": map[string]any{
				"attributes": map[string]any{
					"last_analysis_results": map[string]any{
						"SomeVendor": map[string]any{"result": verdict},
					},
				},
			},
		}))
}

func TestIsBlacklisted_VirusTotal(t *testing.T) {
	client := httpclient.New(0)
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()
	activateVT(t, "malicious")

	// DNSBL clean, VirusTotal flags: PolicyAny flags the domain.
	c := blacklist.New(&testutil.MockDNSClient{}, client, nil, "test-key", blacklist.PolicyAny, testutil.NopLogger())
	assert.True(t, c.IsBlacklisted(context.Background(), "example.com"))

	// PolicyAll needs both sources; DNSBL is clean so the verdict is clean.
	c = blacklist.New(&testutil.MockDNSClient{}, client, nil, "test-key", blacklist.PolicyAll, testutil.NopLogger())
	assert.False(t, c.IsBlacklisted(context.Background(), "example.com"))
}

func TestIsBlacklisted_VirusTotalCleanVerdicts(t *testing.T) {
	client := httpclient.New(0)
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()
	activateVT(t, "clean")

	c := blacklist.New(&testutil.MockDNSClient{}, client, nil, "test-key", blacklist.PolicyAny, testutil.NopLogger())
	assert.False(t, c.IsBlacklisted(context.Background(), "example.com"))
}

func TestIsBlacklisted_VirusTotalErrorDegrades(t *testing.T) {
	client := httpclient.New(0)
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", `=~^https://www\.virustotal\.com/api/v3/urls/`,
		httpmock.NewStringResponder(429, `{"error":{"code":"QuotaExceededError"}}`))

	c := blacklist.New(&testutil.MockDNSClient{}, client, nil, "test-key", blacklist.PolicyAny, testutil.NopLogger())
	assert.False(t, c.IsBlacklisted(context.Background(), "example.com"))
}

func TestIsBlacklisted_NoAPIKeySkipsVirusTotal(t *testing.T) {
	client := httpclient.New(0)
	httpmock.ActivateNonDefault(client.GetClient())
	defer httpmock.DeactivateAndReset()
	// No responder registered: any VirusTotal call would fail the test via
	// httpmock's no-responder error, but the DNSBL verdict must stand alone.

	c := blacklist.New(listedMock("bad.example"), client, nil, "", blacklist.PolicyAll, testutil.NopLogger())
	assert.True(t, c.IsBlacklisted(context.Background(), "bad.example"))
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}
