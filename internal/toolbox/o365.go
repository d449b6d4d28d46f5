package toolbox

import (
	"context"
	"strings"

	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
)

// Microsoft 365 tenancy leaves a fixed fingerprint in a domain's zone. Each
// probe queries one well-known name and keeps the answer only when it points
// at the matching Microsoft endpoint.
type o365Probe struct {
	bucket string // cname, mx, spf or srv
	prefix string // prepended to the domain, "" for the apex
	qtype  uint16
	// suffixes that mark the answer as Microsoft-operated
	signatures []string
}

var o365Probes = []o365Probe{
	{bucket: "cname", prefix: "autodiscover.", qtype: dns.TypeCNAME,
		signatures: []string{"autodiscover.outlook.com"}},
	{bucket: "cname", prefix: "msoid.", qtype: dns.TypeCNAME,
		signatures: []string{"clientconfig.microsoftonline-p.net"}},
	{bucket: "cname", prefix: "lyncdiscover.", qtype: dns.TypeCNAME,
		signatures: []string{"webdir.online.lync.com"}},
	{bucket: "mx", qtype: dns.TypeMX,
		signatures: []string{"mail.protection.outlook.com", "protection.outlook.com"}},
	{bucket: "spf", qtype: dns.TypeTXT,
		signatures: []string{"include:spf.protection.outlook.com"}},
	{bucket: "srv", prefix: "_sip._tls.", qtype: dns.TypeSRV,
		signatures: []string{"sipdir.online.lync.com"}},
	{bucket: "srv", prefix: "_sipfederationtls._tcp.", qtype: dns.TypeSRV,
		signatures: []string{"sipfed.online.lync.com"}},
}

// matches reports whether a single answer carries the probe's signature.
func (p o365Probe) matches(value string) bool {
	needle := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(value), "."))
	for _, sig := range p.signatures {
		if strings.Contains(needle, sig) {
			return true
		}
	}
	return false
}

// answerText extracts the comparable payload for a probe answer.
func (p o365Probe) answerText(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.CNAME:
		return v.Target
	case *dns.MX:
		return v.Mx
	case *dns.TXT:
		return strings.Join(v.Txt, "")
	case *dns.SRV:
		return v.Target
	}
	return ""
}

// O365Records runs all seven signature probes and buckets the matching
// answers. Every probe contributes at least one entry: a probe with no
// matching answer adds "", so the bucket shape stays one slot per probe
// and a domain with no Microsoft footprint yields buckets of blanks.
func (t *Toolbox) O365Records(ctx context.Context, domain string) record.O365Records {
	var out record.O365Records
	for _, p := range o365Probes {
		name := p.prefix + domain
		var lines []string
		for _, rr := range t.resolve(ctx, name, p.qtype) {
			value := p.answerText(rr)
			if value == "" || !p.matches(value) {
				continue
			}
			lines = append(lines, strings.TrimSuffix(value, "."))
		}
		if len(lines) == 0 {
			lines = []string{""}
		}
		switch p.bucket {
		case "cname":
			out.CNAME = append(out.CNAME, lines...)
		case "mx":
			out.MX = append(out.MX, lines...)
		case "spf":
			out.SPF = append(out.SPF, lines...)
		case "srv":
			out.SRV = append(out.SRV, lines...)
		}
	}
	return out
}
