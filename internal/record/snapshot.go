// Package record defines the typed domain snapshot and the closed record-type
// enumeration shared by the resolution pipeline, the store and the API.
package record

import "time"

// ASNPools holds AS-ownership data for the domain's nameserver addresses.
// The five slices are index-aligned: position i across all of them describes
// the same IP. A failed per-IP lookup leaves empty strings at its index so
// alignment is never broken.
type ASNPools struct {
	IPList          []string `json:"ip_list"`
	ASNList         []string `json:"asn_list"`
	CountryList     []string `json:"country_list"`
	RegistryList    []string `json:"registry_list"`
	DescriptionList []string `json:"description_list"`
}

// SRVRecords holds the results of the well-known-service SRV sweep, one list
// per transport protocol.
type SRVRecords struct {
	UDP []string `json:"UDP"`
	TCP []string `json:"TCP"`
	TLS []string `json:"TLS"`
}

// O365Records buckets the seven Office 365 signature probes by the wire
// record kind each one inspects. Probes that did not match contribute "".
type O365Records struct {
	CNAME []string `json:"CNAME"`
	MX    []string `json:"MX"`
	SPF   []string `json:"SPF"`
	SRV   []string `json:"SRV"`
}

// Snapshot is one complete resolution result for one domain at one instant.
// Scalar fields use "" for "not found or invalid"; callers treat nil and
// empty list fields the same.
type Snapshot struct {
	DomainName     string        `json:"domain_name"`
	CheckTime      time.Time     `json:"check_time"`
	SearchUsedTime time.Duration `json:"search_used_time"`

	A    string `json:"a"`
	AAAA string `json:"aaaa"`
	MX   string `json:"mx"`
	SOA  string `json:"soa"`
	WWW  string `json:"www"`
	PTR  string `json:"ptr"`

	NS   []string `json:"ns"`
	TXT  []string `json:"txt"`
	IPv4 []string `json:"ipv4"`
	IPv6 []string `json:"ipv6"`
	XFR  []string `json:"xfr"`

	ASN  ASNPools    `json:"asn"`
	SRV  SRVRecords  `json:"srv"`
	O365 O365Records `json:"o365"`

	Registrar            string `json:"registrar"`
	ExpirationDate       string `json:"expiration_date"`
	EmailExchangeService string `json:"email_exchange_service"`

	HasHTTPS      bool `json:"has_https"`
	IsBlacklisted bool `json:"is_blacklisted"`
}

// Field extracts the snapshot field named by t. The switch is exhaustive
// over the Type enum; ParseType has already rejected unknown strings.
func (s *Snapshot) Field(t Type) any {
	switch t {
	case TypeA:
		return s.A
	case TypeAAAA:
		return s.AAAA
	case TypeMX:
		return s.MX
	case TypeSOA:
		return s.SOA
	case TypeNS:
		return s.NS
	case TypeTXT:
		return s.TXT
	case TypeSRV:
		return s.SRV
	case TypePTR:
		return s.PTR
	case TypeWWW:
		return s.WWW
	case TypeIPv4:
		return s.IPv4
	case TypeIPv6:
		return s.IPv6
	case TypeASN:
		return s.ASN
	case TypeXFR:
		return s.XFR
	case TypeO365:
		return s.O365
	case TypeRegistrar:
		return s.Registrar
	case TypeExpirationDate:
		return s.ExpirationDate
	case TypeEmailExchangeService:
		return s.EmailExchangeService
	case TypeHasHTTPS:
		return s.HasHTTPS
	case TypeIsBlacklisted:
		return s.IsBlacklisted
	}
	return nil
}
