// Package store persists domains and their resolution history. A Domain row
// exists once per registrable name; every completed resolution appends one
// DomainRecord, so the table is the full lookup history and the newest row
// per domain is the current answer.
package store

import "time"

// Domain is the identity row for a registrable domain name.
type Domain struct {
	ID           uint   `gorm:"primarykey"`
	DomainString string `gorm:"uniqueIndex"`
	CreatedAt    time.Time
}

// DomainRecord is one resolution result. Everything except the identity and
// timing columns is stored as an opaque encoded blob; the codec package owns
// the encoding on both the write and read paths. DomainName is denormalized
// onto the row so history reads decode without touching the domains table.
type DomainRecord struct {
	ID       uint `gorm:"primarykey"`
	DomainID uint `gorm:"index"`
	Domain   Domain `gorm:"constraint:OnDelete:CASCADE;"`

	DomainName string `gorm:"index"`

	CheckTime      time.Time `gorm:"index"`
	SearchUsedTime time.Duration

	A    []byte
	AAAA []byte
	MX   []byte
	SOA  []byte
	WWW  []byte
	PTR  []byte
	NS   []byte
	TXT  []byte
	IPv4 []byte
	IPv6 []byte
	XFR  []byte
	ASN  []byte
	SRV  []byte
	O365 []byte

	Registrar            []byte
	ExpirationDate       []byte
	EmailExchangeService []byte
	HasHTTPS             []byte
	IsBlacklisted        []byte
}
