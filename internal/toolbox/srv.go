package toolbox

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/miekg/dns"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/dnsclient"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/worker"
)

var srvProtocols = []string{"udp", "tcp", "tls"}

// SRVResults sweeps the full service catalogue under one transport protocol
// and returns every plausible SRV answer found, sorted for stable output.
// The sweep issues one query per service name through a bounded pool; absent
// names are the overwhelming majority, so misses are skipped without a log
// line and answers pass the validator before they count.
func (t *Toolbox) SRVResults(ctx context.Context, domain, proto string) []string {
	var (
		mu  sync.Mutex
		out []string
	)
	tasks := make([]worker.Task, 0, len(serviceNames))
	for _, service := range serviceNames {
		name := fmt.Sprintf("_%s._%s.%s", service, proto, domain)
		tasks = append(tasks, func(ctx context.Context) {
			for _, rr := range t.resolveQuiet(ctx, name, dns.TypeSRV) {
				line := dnsclient.RRString(rr)
				if !t.validator.IsValid(domain, record.TypeSRV, line) {
					continue
				}
				mu.Lock()
				out = append(out, line)
				mu.Unlock()
			}
		})
	}
	worker.NewPool(t.poolSize, t.logger).Run(ctx, tasks)
	sort.Strings(out)
	return out
}

// SRVRecords runs the sweep for all three protocols.
func (t *Toolbox) SRVRecords(ctx context.Context, domain string) record.SRVRecords {
	return record.SRVRecords{
		UDP: t.SRVResults(ctx, domain, "udp"),
		TCP: t.SRVResults(ctx, domain, "tcp"),
		TLS: t.SRVResults(ctx, domain, "tls"),
	}
}
