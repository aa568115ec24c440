package explorer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/decoder"
)

// TxView is one row of the transaction list.
type TxView struct {
	Hash     string
	From     string
	To       string // empty for contract creation
	FromName string // friendly name or shortened address
	ToName   string
	ValueETH string
	Block    uint64
	Index    uint64
	Time     time.Time
	Call     decoder.DecodedCall
}

// RecentTransactions walks back from the latest block until limit
// transactions are collected or block 0 has been read. Blocks are fetched
// concurrently in windows, but the result is ordered newest block first,
// then by transaction index. It also returns the latest block number.
func (s *Session) RecentTransactions(ctx context.Context, limit int) ([]TxView, uint64, error) {
	if limit <= 0 {
		limit = DefaultTxLimit
	}

	latest, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, 0, err
	}

	var views []TxView
	next := int64(latest)
	for len(views) < limit && next >= 0 {
		lo := next - int64(s.window) + 1
		if lo < 0 {
			lo = 0
		}

		blocks, err := s.fetchWindow(ctx, uint64(lo), uint64(next))
		if err != nil {
			return nil, latest, err
		}
		for _, b := range blocks {
			if b == nil {
				continue
			}
			for _, tx := range b.Transactions {
				views = append(views, s.view(b, tx))
			}
		}
		next = lo - 1
	}

	if len(views) > limit {
		views = views[:limit]
	}
	s.log.Debug("collected transactions",
		zap.Uint64("latest", latest),
		zap.Int("count", len(views)))
	return views, latest, nil
}

// fetchWindow fetches blocks hi down to lo, returned newest first. A block
// the node does not have (pruned or not yet indexed) is left nil.
func (s *Session) fetchWindow(ctx context.Context, lo, hi uint64) ([]*chain.Block, error) {
	blocks := make([]*chain.Block, hi-lo+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.window)
	for i := range blocks {
		i := i
		num := hi - uint64(i)
		g.Go(func() error {
			b, err := s.client.BlockByNumber(gctx, num)
			if errors.Is(err, chain.ErrBlockNotFound) {
				s.log.Debug("block missing", zap.Uint64("block", num))
				return nil
			}
			if err != nil {
				return fmt.Errorf("fetching block %d: %w", num, err)
			}
			blocks[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *Session) view(b *chain.Block, tx *chain.Transaction) TxView {
	return TxView{
		Hash:     tx.Hash,
		From:     tx.From,
		To:       tx.To,
		FromName: s.table.DisplayAddress(tx.From),
		ToName:   s.table.DisplayAddress(tx.To),
		ValueETH: tx.ValueETH,
		Block:    b.Number,
		Index:    tx.Index,
		Time:     b.Time(),
		Call:     s.decoder.Decode(tx.Input),
	}
}

// Block fetches block num and decodes each of its transactions in index
// order. Block timestamps are taken from the header.
func (s *Session) Block(ctx context.Context, num uint64) (*chain.Block, []TxView, error) {
	b, err := s.client.BlockByNumber(ctx, num)
	if err != nil {
		return nil, nil, err
	}
	views := make([]TxView, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		views = append(views, s.view(b, tx))
	}
	return b, views, nil
}
