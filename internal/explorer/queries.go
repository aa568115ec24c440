package explorer

import (
	"context"
	"math/big"
	"time"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
)

// TokenInfo is the PLZToken view of one account.
type TokenInfo struct {
	Account         string
	Balance         *big.Int
	BalancePLZ      string    // Balance scaled by 18 decimals
	LastRequestedAt time.Time // zero when the faucet was never used
}

// TokenInfo reads the PLZ balance and last faucet request of account.
// An invalid address fails with contract.ErrInvalidAddress before any call.
func (s *Session) TokenInfo(ctx context.Context, account string) (*TokenInfo, error) {
	bal, err := s.token.BalanceOf(ctx, account)
	if err != nil {
		return nil, err
	}
	last, err := s.token.LastRequestedAt(ctx, account)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{
		Account:         account,
		Balance:         bal,
		BalancePLZ:      chain.WeiToETH(bal),
		LastRequestedAt: last,
	}, nil
}

// NFTInfo is the PLZNFT contract summary.
type NFTInfo struct {
	Address    string
	Balance    *big.Int // native balance held by the contract, in wei
	BalanceETH string
}

// NFTInfo reads the native balance held by the PLZNFT contract.
func (s *Session) NFTInfo(ctx context.Context) (*NFTInfo, error) {
	addr := s.nft.Address()
	wei, err := s.client.Balance(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &NFTInfo{Address: addr, Balance: wei, BalanceETH: chain.WeiToETH(wei)}, nil
}

// OwnsNFT reports whether account holds a PLZNFT.
func (s *Session) OwnsNFT(ctx context.Context, account string) (bool, error) {
	return s.nft.Owns(ctx, account)
}

// Beverages returns the Ordering menu.
func (s *Session) Beverages(ctx context.Context) ([]string, error) {
	return s.orders.Beverages(ctx)
}

// Order fetches one order. A reverting id yields contract.ErrOrderNotFound.
func (s *Session) Order(ctx context.Context, id uint64) (*contract.Order, error) {
	return s.orders.Order(ctx, id)
}

// Orders lists up to limit orders (limit <= 0: all).
func (s *Session) Orders(ctx context.Context, limit int) ([]contract.Order, error) {
	return s.orders.Orders(ctx, limit)
}
