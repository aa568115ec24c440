package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
	"github.com/Mohsinsiddi/plzscan/internal/chain"
)

// ErrOrderNotFound is returned when orders(id) reverts.
var ErrOrderNotFound = errors.New("Failed to fetch order details. Make sure the order ID is correct.")

// orderCountFuncs are the count getters Orders looks for, in preference order.
var orderCountFuncs = []string{"orderCount", "getOrderCount", "totalOrders"}

// Token reads the PLZToken contract.
type Token struct{ c *Caller }

// NewToken binds a PLZToken reader to address.
func NewToken(b Backend, address string) *Token {
	return &Token{c: NewCaller(b, address, GetBuiltinABI(PLZToken))}
}

// BalanceOf returns the token balance of account in base units.
func (t *Token) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	addr, err := parseAddress(account)
	if err != nil {
		return nil, err
	}
	out, err := t.c.Call(ctx, "balanceOf", addr)
	if err != nil {
		return nil, err
	}
	return outBig(out, 0)
}

// LastRequestedAt returns when account last used the faucet. The zero
// time means it never did.
func (t *Token) LastRequestedAt(ctx context.Context, account string) (time.Time, error) {
	addr, err := parseAddress(account)
	if err != nil {
		return time.Time{}, err
	}
	out, err := t.c.Call(ctx, "lastRequestedAt", addr)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := outBig(out, 0)
	if err != nil {
		return time.Time{}, err
	}
	if ts.Sign() == 0 || !ts.IsInt64() {
		return time.Time{}, nil
	}
	return time.Unix(ts.Int64(), 0), nil
}

// NFT reads the PLZNFT contract.
type NFT struct{ c *Caller }

// NewNFT binds a PLZNFT reader to address.
func NewNFT(b Backend, address string) *NFT {
	return &NFT{c: NewCaller(b, address, GetBuiltinABI(PLZNFT))}
}

// Address returns the NFT contract address.
func (n *NFT) Address() string { return n.c.Address() }

// BalanceOf returns how many PLZNFT tokens owner holds.
func (n *NFT) BalanceOf(ctx context.Context, owner string) (*big.Int, error) {
	addr, err := parseAddress(owner)
	if err != nil {
		return nil, err
	}
	out, err := n.c.Call(ctx, "balanceOf", addr)
	if err != nil {
		return nil, err
	}
	return outBig(out, 0)
}

// Owns reports whether owner holds at least one PLZNFT.
func (n *NFT) Owns(ctx context.Context, owner string) (bool, error) {
	bal, err := n.BalanceOf(ctx, owner)
	if err != nil {
		return false, err
	}
	return bal.Sign() > 0, nil
}

// Order is one record of the Ordering contract.
type Order struct {
	ID        uint64 `json:"id"`
	Customer  string `json:"customer"`
	Beverage  string `json:"beverage"`
	Fulfilled bool   `json:"fulfilled"`
}

// OrderBook reads the Ordering contract.
type OrderBook struct{ c *Caller }

// NewOrderBook binds an Ordering reader to address.
func NewOrderBook(b Backend, address string) *OrderBook {
	return NewOrderBookWithABI(b, address, GetBuiltinABI(Ordering))
}

// NewOrderBookWithABI binds an Ordering reader using a custom ABI, e.g. a
// redeployed contract that adds a count getter.
func NewOrderBookWithABI(b Backend, address string, a abi.ABI) *OrderBook {
	return &OrderBook{c: NewCaller(b, address, a)}
}

// Beverages returns the menu in contract order.
func (o *OrderBook) Beverages(ctx context.Context) ([]string, error) {
	out, err := o.c.Call(ctx, "getAllValidBeverages")
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	list, ok := out[0].([]string)
	if !ok {
		return nil, fmt.Errorf("getAllValidBeverages: expected []string, got %T", out[0])
	}
	return list, nil
}

// Order fetches orders(id). A revert is reported as ErrOrderNotFound and
// still matches chain.ErrReverted.
func (o *OrderBook) Order(ctx context.Context, id uint64) (*Order, error) {
	out, err := o.c.Call(ctx, "orders", new(big.Int).SetUint64(id))
	if err != nil {
		if chain.IsRevert(err) {
			return nil, fmt.Errorf("%w (order %d): %w", ErrOrderNotFound, id, err)
		}
		return nil, err
	}

	customer, err := outAddress(out, 0)
	if err != nil {
		return nil, fmt.Errorf("orders(%d): %w", id, err)
	}
	beverage, err := outString(out, 1)
	if err != nil {
		return nil, fmt.Errorf("orders(%d): %w", id, err)
	}
	fulfilled, err := outBool(out, 2)
	if err != nil {
		return nil, fmt.Errorf("orders(%d): %w", id, err)
	}
	return &Order{ID: id, Customer: customer.Hex(), Beverage: beverage, Fulfilled: fulfilled}, nil
}

// Orders lists orders from id 0 upwards, at most limit of them (limit <= 0
// means no cap). When the ABI has a count getter it bounds the walk.
// Otherwise ids are probed until orders(i) reverts. Any other failure
// aborts the listing so a flaky node is never mistaken for the end.
func (o *OrderBook) Orders(ctx context.Context, limit int) ([]Order, error) {
	count, counted, err := o.count(ctx)
	if err != nil {
		return nil, err
	}

	var list []Order
	for i := uint64(0); limit <= 0 || len(list) < limit; i++ {
		if counted && i >= count {
			break
		}
		if err := ctx.Err(); err != nil {
			return list, err
		}
		ord, err := o.Order(ctx, i)
		if err != nil {
			if !counted && errors.Is(err, ErrOrderNotFound) {
				break
			}
			return list, fmt.Errorf("listing orders at %d: %w", i, err)
		}
		list = append(list, *ord)
	}
	return list, nil
}

func (o *OrderBook) count(ctx context.Context) (uint64, bool, error) {
	for _, name := range orderCountFuncs {
		if !o.c.Has(name) {
			continue
		}
		out, err := o.c.Call(ctx, name)
		if err != nil {
			return 0, false, err
		}
		n, err := outBig(out, 0)
		if err != nil {
			return 0, false, fmt.Errorf("%s: %w", name, err)
		}
		return n.Uint64(), true, nil
	}
	return 0, false, nil
}
