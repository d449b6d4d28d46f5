// Package codec is the single serialization boundary between the typed
// snapshot and its stored forms. The store keeps each field as its own
// encoded column; the cache keeps one encoded blob per domain. Nothing
// outside this package marshals snapshot data.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/store"
)

// Marshal encodes a whole snapshot for the cache wire.
func Marshal(snap *record.Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a cache blob back into a snapshot.
func Unmarshal(data []byte) (*record.Snapshot, error) {
	var snap record.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func encodeField(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// Snapshot fields are plain strings, bools and slices; marshaling
		// them cannot fail.
		panic(fmt.Sprintf("codec: encode field: %v", err))
	}
	return data
}

func decodeField(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// EncodeRecord converts a snapshot into a history row for domainID. The
// identity and timing fields stay native columns; everything else becomes
// its encoded column.
func EncodeRecord(domainID uint, snap *record.Snapshot) *store.DomainRecord {
	return &store.DomainRecord{
		DomainID:       domainID,
		DomainName:     snap.DomainName,
		CheckTime:      snap.CheckTime,
		SearchUsedTime: snap.SearchUsedTime,

		A:    encodeField(snap.A),
		AAAA: encodeField(snap.AAAA),
		MX:   encodeField(snap.MX),
		SOA:  encodeField(snap.SOA),
		WWW:  encodeField(snap.WWW),
		PTR:  encodeField(snap.PTR),
		NS:   encodeField(snap.NS),
		TXT:  encodeField(snap.TXT),
		IPv4: encodeField(snap.IPv4),
		IPv6: encodeField(snap.IPv6),
		XFR:  encodeField(snap.XFR),
		ASN:  encodeField(snap.ASN),
		SRV:  encodeField(snap.SRV),
		O365: encodeField(snap.O365),

		Registrar:            encodeField(snap.Registrar),
		ExpirationDate:       encodeField(snap.ExpirationDate),
		EmailExchangeService: encodeField(snap.EmailExchangeService),
		HasHTTPS:             encodeField(snap.HasHTTPS),
		IsBlacklisted:        encodeField(snap.IsBlacklisted),
	}
}

// DecodeRecord rebuilds a snapshot from a history row.
func DecodeRecord(rec *store.DomainRecord) (*record.Snapshot, error) {
	snap := &record.Snapshot{
		DomainName:     rec.DomainName,
		CheckTime:      rec.CheckTime,
		SearchUsedTime: rec.SearchUsedTime,
	}
	fields := []struct {
		name string
		data []byte
		dst  any
	}{
		{"a", rec.A, &snap.A},
		{"aaaa", rec.AAAA, &snap.AAAA},
		{"mx", rec.MX, &snap.MX},
		{"soa", rec.SOA, &snap.SOA},
		{"www", rec.WWW, &snap.WWW},
		{"ptr", rec.PTR, &snap.PTR},
		{"ns", rec.NS, &snap.NS},
		{"txt", rec.TXT, &snap.TXT},
		{"ipv4", rec.IPv4, &snap.IPv4},
		{"ipv6", rec.IPv6, &snap.IPv6},
		{"xfr", rec.XFR, &snap.XFR},
		{"asn", rec.ASN, &snap.ASN},
		{"srv", rec.SRV, &snap.SRV},
		{"o365", rec.O365, &snap.O365},
		{"registrar", rec.Registrar, &snap.Registrar},
		{"expiration_date", rec.ExpirationDate, &snap.ExpirationDate},
		{"email_exchange_service", rec.EmailExchangeService, &snap.EmailExchangeService},
		{"has_https", rec.HasHTTPS, &snap.HasHTTPS},
		{"is_blacklisted", rec.IsBlacklisted, &snap.IsBlacklisted},
	}
	for _, f := range fields {
		if err := decodeField(f.data, f.dst); err != nil {
			return nil, fmt.Errorf("decode field %s: %w", f.name, err)
		}
	}
	return snap, nil
}
