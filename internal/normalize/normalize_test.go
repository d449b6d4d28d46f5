package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/normalize"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare domain", "example.com", "example.com"},
		{"subdomain stripped", "www.example.com", "example.com"},
		{"deep subdomain", "a.b.mail.example.com", "example.com"},
		{"uppercase folded", "EXAMPLE.COM", "example.com"},
		{"http url", "http://example.com", "example.com"},
		{"https url with path", "https://www.example.com/about/team", "example.com"},
		{"port dropped", "example.com:8080", "example.com"},
		{"trailing dot", "example.com.", "example.com"},
		{"shell junk stripped", `"example.com"`, "example.com"},
		{"whitespace stripped", " example.com ", "example.com"},
		{"hyphenated label kept", "my-site.co.uk", "my-site.co.uk"},
		{"multi-label public suffix", "shop.example.co.uk", "example.co.uk"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalize.Normalize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only junk", "!!! ???"},
		{"ftp scheme", "ftp://example.com"},
		{"mailto scheme", "mailto://user.example.com"},
		{"bare tld", "com"},
		{"public suffix only", "co.uk"},
		{"no suffix", "localhost"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalize.Normalize(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrRejected)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"https://www.example.com/path", "shop.example.co.uk", "EXAMPLE.ORG"}
	for _, input := range inputs {
		first, err := normalize.Normalize(input)
		require.NoError(t, err)
		second, err := normalize.Normalize(first)
		require.NoError(t, err)
		assert.Equal(t, first, second, "normalizing twice must be stable for %q", input)
	}
}
