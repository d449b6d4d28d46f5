package record

import (
	"fmt"
	"strings"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
)

// Type is the closed set of snapshot fields a caller can ask for by name.
// It covers the wire record types the toolbox queries directly plus the
// derived fields (WWW, IPv4/IPv6 glue, ASN, XFR, O365, SRV sweep).
type Type uint8

// Snapshot field identifiers.
const (
	TypeA Type = iota
	TypeAAAA
	TypeMX
	TypeSOA
	TypeNS
	TypeTXT
	TypeSRV
	TypePTR
	TypeWWW
	TypeIPv4
	TypeIPv6
	TypeASN
	TypeXFR
	TypeO365
	TypeRegistrar
	TypeExpirationDate
	TypeEmailExchangeService
	TypeHasHTTPS
	TypeIsBlacklisted
)

var typeNames = map[Type]string{
	TypeA:                    "A",
	TypeAAAA:                 "AAAA",
	TypeMX:                   "MX",
	TypeSOA:                  "SOA",
	TypeNS:                   "NS",
	TypeTXT:                  "TXT",
	TypeSRV:                  "SRV",
	TypePTR:                  "PTR",
	TypeWWW:                  "WWW",
	TypeIPv4:                 "IPV4",
	TypeIPv6:                 "IPV6",
	TypeASN:                  "ASN",
	TypeXFR:                  "XFR",
	TypeO365:                 "O365",
	TypeRegistrar:            "REGISTRAR",
	TypeExpirationDate:       "EXPIRATION_DATE",
	TypeEmailExchangeService: "EMAIL_EXCHANGE_SERVICE",
	TypeHasHTTPS:             "HAS_HTTPS",
	TypeIsBlacklisted:        "IS_BLACKLISTED",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the canonical upper-case name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType maps a record-type string to its Type, case-insensitively.
// Unknown strings return apperr.ErrUnsupportedRecordType: this is the single
// point where the open string world meets the closed enum, so every switch
// over Type after this boundary can be exhaustive.
func ParseType(s string) (Type, error) {
	t, ok := typesByName[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperr.ErrUnsupportedRecordType, s)
	}
	return t, nil
}
