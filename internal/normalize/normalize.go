// Package normalize reduces arbitrary user input to a registrable domain
// name (eTLD+1) using public-suffix rules.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
)

// junkRunes matches characters outside the accepted input alphabet.
// Stray shell quoting, whitespace and typos are stripped before parsing
// rather than rejected.
var junkRunes = regexp.MustCompile(`[^A-Za-z0-9.:/-]`)

// Normalize cleans raw input and extracts the registrable domain.
//
// Accepted forms: bare hostnames ("www.example.com"), http:// and https://
// URLs with optional path. Any other scheme (ftp://, mailto:) and input
// that does not contain a public-suffix-listed domain are rejected with
// apperr.ErrRejected. Normalize is idempotent: feeding its output back in
// returns the same string.
func Normalize(raw string) (string, error) {
	cleaned := strings.ToLower(junkRunes.ReplaceAllString(raw, ""))
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty input", apperr.ErrRejected)
	}

	host := cleaned
	if scheme, rest, found := strings.Cut(cleaned, "://"); found {
		if scheme != "http" && scheme != "https" {
			return "", fmt.Errorf("%w: unsupported scheme %q", apperr.ErrRejected, scheme)
		}
		host = rest
	}
	// Drop path and port remnants.
	host, _, _ = strings.Cut(host, "/")
	host, _, _ = strings.Cut(host, ":")
	host = strings.Trim(host, ".")
	if host == "" {
		return "", fmt.Errorf("%w: no hostname in %q", apperr.ErrRejected, raw)
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a registrable domain", apperr.ErrRejected, host)
	}
	// EffectiveTLDPlusOne accepts names that are themselves a public suffix
	// boundary case; an eTLD+1 without a dot is never a usable domain.
	if !strings.Contains(domain, ".") {
		return "", fmt.Errorf("%w: %q is not a registrable domain", apperr.ErrRejected, host)
	}
	return domain, nil
}
