// Package rpc measures JSON-RPC endpoints and picks the best one to explore.
package rpc

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
)

// DefaultProbeTimeout bounds a single endpoint probe.
const DefaultProbeTimeout = 5 * time.Second

// Endpoint is the measured state of one RPC URL.
type Endpoint struct {
	URL         string
	Latency     time.Duration
	BlockNumber uint64
	ChainID     uint64
	Healthy     bool
	Err         error
}

// Probe pings url once and reads its chain ID. A node that answers the
// block number but not the chain ID is still healthy.
func Probe(ctx context.Context, url string, timeout time.Duration) Endpoint {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := chain.NewEVMClient(url, chain.WithTimeout(timeout))
	latency, block, err := c.Ping(ctx)
	ep := Endpoint{
		URL:         url,
		Latency:     latency,
		BlockNumber: block,
		Healthy:     err == nil,
		Err:         err,
	}
	if err == nil {
		ep.ChainID, _ = c.ChainID(ctx)
	}
	return ep
}

// Benchmark probes every url concurrently. Results keep the input order.
func Benchmark(ctx context.Context, urls []string, timeout time.Duration) []Endpoint {
	results := make([]Endpoint, len(urls))

	var g errgroup.Group
	g.SetLimit(8)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			results[i] = Probe(ctx, url, timeout)
			return nil
		})
	}
	_ = g.Wait()
	return results
}
