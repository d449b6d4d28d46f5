package toolbox

import (
	"context"
	"time"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/normalize"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/worker"
)

// Snapshot resolves every record type for raw and assembles the result.
// The input is normalized first; a rejected input is the only error path.
// All lookups run concurrently through a bounded pool and each task owns
// exactly one snapshot field, so the assembled value needs no locking.
//
// withSRV gates the full service sweep: it multiplies query volume by three
// orders of magnitude, so it runs only on request and the SRV field stays
// empty otherwise.
func (t *Toolbox) Snapshot(ctx context.Context, raw string, withSRV bool) (*record.Snapshot, error) {
	domain, err := normalize.Normalize(raw)
	if err != nil {
		return nil, err
	}

	snap := &record.Snapshot{
		DomainName: domain,
		CheckTime:  time.Now().UTC(),
	}
	start := time.Now()

	tasks := []worker.Task{
		func(ctx context.Context) { snap.A = t.A(ctx, domain) },
		func(ctx context.Context) { snap.AAAA = t.AAAA(ctx, domain) },
		func(ctx context.Context) { snap.MX = t.MX(ctx, domain) },
		func(ctx context.Context) { snap.SOA = t.SOA(ctx, domain) },
		func(ctx context.Context) { snap.WWW = t.WWW(ctx, domain) },
		func(ctx context.Context) { snap.PTR = t.PTR(ctx, domain) },
		func(ctx context.Context) { snap.NS = t.NS(ctx, domain) },
		func(ctx context.Context) { snap.TXT = t.TXT(ctx, domain) },
		func(ctx context.Context) { snap.IPv4 = t.GlueIPs(ctx, domain, record.TypeIPv4) },
		func(ctx context.Context) { snap.IPv6 = t.GlueIPs(ctx, domain, record.TypeIPv6) },
		func(ctx context.Context) { snap.XFR = t.XFR(ctx, domain) },
		func(ctx context.Context) { snap.ASN = t.ASNPools(ctx, domain) },
		func(ctx context.Context) { snap.O365 = t.O365Records(ctx, domain) },
		func(ctx context.Context) {
			rec := t.whoisRecord(ctx, domain)
			snap.Registrar = rec.Registrar
			snap.ExpirationDate = rec.ExpirationDate
		},
		func(ctx context.Context) { snap.EmailExchangeService = t.EmailProvider(ctx, domain) },
		func(ctx context.Context) { snap.HasHTTPS = t.HasHTTPS(ctx, domain) },
		func(ctx context.Context) { snap.IsBlacklisted = t.IsBlacklisted(ctx, domain) },
	}
	if withSRV {
		tasks = append(tasks, func(ctx context.Context) { snap.SRV = t.SRVRecords(ctx, domain) })
	}

	worker.NewPool(t.poolSize, t.logger).Run(ctx, tasks)
	snap.SearchUsedTime = time.Since(start)
	return snap, nil
}
