// Package validate checks the plausibility of DNS answer values against
// their record type. A rejected value is well-formed wire data that can
// never be a legitimate public answer (loopback A records, unspecified
// IPv6, oversized MX targets), typically a sign of a lying resolver or a
// misconfigured zone.
package validate

import (
	"net/netip"
	"regexp"
	"strings"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
)

// deniedV4 lists the IPv4 ranges that must never appear in a public A
// answer: the zero network, loopback, RFC1918 private space, link-local,
// multicast, reserved-future space, and the IETF/documentation/6to4 relay
// test ranges.
var deniedV4 = mustPrefixes(
	"0.0.0.0/8",
	"10.0.0.0/8",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.0.2.0/24",
	"192.88.99.0/24",
	"192.168.0.0/16",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"224.0.0.0/4",
	"233.252.0.0/24",
	"240.0.0.0/4",
)

// deniedV6 lists IPv6 ranges rejected for AAAA answers: discard-only,
// documentation, ULA (private), link-local and deprecated site-local space.
var deniedV6 = mustPrefixes(
	"100::/64",
	"2001:db8::/32",
	"fc00::/7",
	"fe80::/10",
	"fec0::/10",
)

func mustPrefixes(cidrs ...string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, c := range cidrs {
		out = append(out, netip.MustParsePrefix(c))
	}
	return out
}

// dottedQuad requires exactly four decimal octets; netip also accepts this
// form only, but the regexp rejects exotic spellings early with a clearer
// failure mode.
var dottedQuad = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// Validator applies per-record-type plausibility rules. SpecialBlocks is a
// caller-supplied denylist of literal A values rejected in addition to the
// built-in ranges.
type Validator struct {
	specialBlocks map[string]struct{}
}

// New returns a Validator with the given extra denied A values.
func New(specialBlocks []string) *Validator {
	blocks := make(map[string]struct{}, len(specialBlocks))
	for _, b := range specialBlocks {
		blocks[strings.TrimSpace(b)] = struct{}{}
	}
	return &Validator{specialBlocks: blocks}
}

// IsValid reports whether value is a plausible answer for the given record
// type on domain. It never returns an error: malformed input is simply
// invalid. Types without a plausibility rule are always valid.
func (v *Validator) IsValid(domain string, t record.Type, value string) bool {
	switch t {
	case record.TypeA:
		return v.validA(value)
	case record.TypeAAAA:
		return validAAAA(value)
	case record.TypeMX:
		return len(value) < 256
	case record.TypeSRV:
		// An absent SRV answer is not an error; a present one must at
		// least mention the queried domain. Weak, but it catches
		// wildcard-style garbage answers.
		return value == "" || strings.Contains(value, domain)
	default:
		return true
	}
}

func (v *Validator) validA(value string) bool {
	if !dottedQuad.MatchString(value) {
		return false
	}
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is4() {
		return false
	}
	for _, p := range deniedV4 {
		if p.Contains(addr) {
			return false
		}
	}
	_, denied := v.specialBlocks[value]
	return !denied
}

func validAAAA(value string) bool {
	addr, err := netip.ParseAddr(value)
	if err != nil || !addr.Is6() || addr.Is4In6() {
		return false
	}
	if addr.IsUnspecified() || addr.IsLoopback() || addr.IsMulticast() ||
		addr.IsLinkLocalUnicast() || addr.IsPrivate() {
		return false
	}
	for _, p := range deniedV6 {
		if p.Contains(addr) {
			return false
		}
	}
	return true
}
