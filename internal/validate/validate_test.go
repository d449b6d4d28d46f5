package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/validate"
)

func TestIsValid_A(t *testing.T) {
	v := validate.New(nil)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"public address", "93.184.216.34", true},
		{"another public address", "8.8.8.8", true},
		{"loopback", "127.0.0.1", false},
		{"private 10/8", "10.1.2.3", false},
		{"private 172.16/12", "172.20.0.1", false},
		{"private 192.168/16", "192.168.1.1", false},
		{"link local", "169.254.10.10", false},
		{"zero network", "0.0.0.0", false},
		{"multicast", "224.0.0.251", false},
		{"documentation", "192.0.2.1", false},
		{"reserved", "255.255.255.255", false},
		{"not an address", "example.com", false},
		{"ipv6 for A", "2606:2800:220:1::1", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.IsValid("example.com", record.TypeA, tc.value))
		})
	}
}

func TestIsValid_A_SpecialBlocks(t *testing.T) {
	v := validate.New([]string{"198.18.0.1"})

	assert.False(t, v.IsValid("example.com", record.TypeA, "198.18.0.1"))
	assert.True(t, v.IsValid("example.com", record.TypeA, "198.18.0.2"))
}

func TestIsValid_AAAA(t *testing.T) {
	v := validate.New(nil)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"public address", "2606:2800:220:1:248:1893:25c8:1946", true},
		{"loopback", "::1", false},
		{"unspecified", "::", false},
		{"link local", "fe80::1", false},
		{"unique local", "fd12:3456:789a::1", false},
		{"documentation", "2001:db8::1", false},
		{"site local", "fec0::1", false},
		{"mapped v4", "::ffff:8.8.8.8", false},
		{"plain v4", "8.8.8.8", false},
		{"garbage", "not-an-ip", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, v.IsValid("example.com", record.TypeAAAA, tc.value))
		})
	}
}

func TestIsValid_MX(t *testing.T) {
	v := validate.New(nil)

	assert.True(t, v.IsValid("example.com", record.TypeMX, "10 mail.example.com."))
	assert.False(t, v.IsValid("example.com", record.TypeMX, strings.Repeat("x", 256)))
}

func TestIsValid_SRV(t *testing.T) {
	v := validate.New(nil)

	assert.True(t, v.IsValid("example.com", record.TypeSRV, ""))
	assert.True(t, v.IsValid("example.com", record.TypeSRV, "0 5 5060 sip.example.com."))
	assert.False(t, v.IsValid("example.com", record.TypeSRV, "0 5 5060 sip.attacker.net."))
}

func TestIsValid_DefaultTypes(t *testing.T) {
	v := validate.New(nil)

	// Types without a plausibility rule accept anything.
	assert.True(t, v.IsValid("example.com", record.TypeTXT, "v=spf1 -all"))
	assert.True(t, v.IsValid("example.com", record.TypeSOA, "ns1.example.com. hostmaster.example.com. 1 7200 900 1209600 86400"))
}
