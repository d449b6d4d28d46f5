// Package blacklist decides whether a domain appears on threat lists. Two
// independent sources feed the verdict: DNS-based blacklist zones queried
// directly, and the VirusTotal URL-analysis API. How the two combine is a
// policy choice, not a constant.
package blacklist

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/imroc/req/v3"
	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
)

// Policy selects how the DNSBL and VirusTotal verdicts combine.
type Policy string

// Combination policies. PolicyAny flags a domain listed by either source;
// PolicyAll requires both sources to agree before flagging.
const (
	PolicyAny Policy = "any"
	PolicyAll Policy = "all"
)

// ParsePolicy validates a policy string from configuration.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyAny, PolicyAll:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("invalid blacklist policy %q: must be \"any\" or \"all\"", s)
	}
}

// DefaultZones are public domain-reputation DNSBL zones that answer plain
// domain queries (no IP reversal required).
var DefaultZones = []string{
	"dbl.spamhaus.org",
	"multi.surbl.org",
	"uribl.spameatingmonkey.net",
}

const virusTotalURL = "https://www.virustotal.com/api/v3/urls/%s"

// Checker runs the blacklist sources and combines them per the configured
// policy.
type Checker struct {
	dns    dnsclient.Client
	client *req.Client
	zones  []string
	apiKey string
	policy Policy
	logger *slog.Logger
}

// New builds a Checker. An empty apiKey disables the VirusTotal source: the
// DNSBL verdict then stands alone under either policy.
func New(dnsClient dnsclient.Client, httpClient *req.Client, zones []string, apiKey string, policy Policy, logger *slog.Logger) *Checker {
	if len(zones) == 0 {
		zones = DefaultZones
	}
	return &Checker{
		dns:    dnsClient,
		client: httpClient,
		zones:  zones,
		apiKey: apiKey,
		policy: policy,
		logger: logger,
	}
}

// IsBlacklisted reports whether domain is flagged. Source failures count as
// "not listed" for that source: reputation checking degrades, it never
// breaks a snapshot.
func (c *Checker) IsBlacklisted(ctx context.Context, domain string) bool {
	dnsbl := c.listedByDNSBL(ctx, domain)

	if c.apiKey == "" {
		return dnsbl
	}
	vt := c.listedByVirusTotal(ctx, domain)

	if c.policy == PolicyAll {
		return dnsbl && vt
	}
	return dnsbl || vt
}

// listedByDNSBL queries each zone for <domain>.<zone>. Any A answer means
// the zone lists the domain; NXDOMAIN is the clean-host response.
func (c *Checker) listedByDNSBL(ctx context.Context, domain string) bool {
	for _, zone := range c.zones {
		answers, err := c.dns.Query(ctx, domain+"."+zone, dns.TypeA)
		if err != nil {
			if !errors.Is(err, dnsclient.ErrNotFound) && !errors.Is(err, dnsclient.ErrNoAnswer) {
				c.logger.Debug("dnsbl query failed", "zone", zone, "domain", domain, "error", err)
			}
			continue
		}
		if len(answers) > 0 {
			c.logger.Debug("dnsbl hit", "zone", zone, "domain", domain)
			return true
		}
	}
	return false
}

// vtResponse mirrors the slice of the VirusTotal v3 URL report the verdict
// needs.
type vtResponse struct {
	Data struct {
		Attributes struct {
			LastAnalysisResults map[string]struct {
				Result string `json:"result"`
			} `json:"last_analysis_results"`
		} `json:"attributes"`
	} `json:"data"`
}

// listedByVirusTotal fetches the URL analysis report for domain and counts
// any provider verdict other than "clean"/"unrated" as a listing.
func (c *Checker) listedByVirusTotal(ctx context.Context, domain string) bool {
	urlID := base64.RawURLEncoding.EncodeToString([]byte(domain))

	var report vtResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("x-apikey", c.apiKey).
		SetSuccessResult(&report).
		Get(fmt.Sprintf(virusTotalURL, urlID))
	if err != nil {
		c.logger.Debug("virustotal request failed", "domain", domain, "error", err)
		return false
	}
	if !resp.IsSuccessState() {
		c.logger.Debug("virustotal non-success response", "domain", domain,
			"status", resp.StatusCode, "error", apperr.ErrRequestFailed)
		return false
	}

	for provider, r := range report.Data.Attributes.LastAnalysisResults {
		if r.Result != "clean" && r.Result != "unrated" {
			c.logger.Debug("virustotal hit", "domain", domain, "provider", provider, "verdict", r.Result)
			return true
		}
	}
	return false
}
