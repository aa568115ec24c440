package explorer

import "sync/atomic"

// Generation tags refresh requests so that a response arriving after a
// newer request was issued can be recognised and dropped.
type Generation struct {
	n atomic.Uint64
}

// Next starts a new generation and returns its token.
func (g *Generation) Next() uint64 { return g.n.Add(1) }

// Current reports whether tok is still the latest generation.
func (g *Generation) Current(tok uint64) bool { return g.n.Load() == tok }
