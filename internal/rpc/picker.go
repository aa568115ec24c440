package rpc

import (
	"errors"
)

// ErrNoHealthyRPC is returned when no healthy RPC endpoint is available.
var ErrNoHealthyRPC = errors.New("no healthy RPC endpoint available")

// Discard nodes more than this many blocks behind the best one on the same chain.
const staleBlockThreshold = 3

// Fastest returns the healthy endpoint with the best latency score. Nodes
// lagging the highest block of their chain are skipped.
func Fastest(endpoints []Endpoint) (*Endpoint, error) {
	best := make(map[uint64]uint64)
	for _, e := range endpoints {
		if e.Healthy && e.BlockNumber > best[e.ChainID] {
			best[e.ChainID] = e.BlockNumber
		}
	}

	var (
		winner    *Endpoint
		bestScore float64
	)
	for i := range endpoints {
		e := &endpoints[i]
		if !e.Healthy || Stale(*e, best[e.ChainID]) {
			continue
		}
		s := score(e, best[e.ChainID])
		if winner == nil || s > bestScore {
			winner, bestScore = e, s
		}
	}
	if winner == nil {
		return nil, ErrNoHealthyRPC
	}
	return winner, nil
}

// Stale reports whether e lags bestBlock by more than the threshold.
func Stale(e Endpoint, bestBlock uint64) bool {
	return bestBlock > e.BlockNumber && bestBlock-e.BlockNumber > staleBlockThreshold
}

func score(e *Endpoint, bestBlock uint64) float64 {
	var s float64

	// higher = faster
	if ms := e.Latency.Milliseconds(); ms > 0 {
		s += 1000.0 / float64(ms)
	} else {
		s += 1000.0
	}

	// loses 1 point per block behind
	if bestBlock > 0 {
		s += float64(10 - int64(bestBlock-e.BlockNumber))
	}
	return s
}
