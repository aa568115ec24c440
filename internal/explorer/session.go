// Package explorer ties the RPC client, the selector decoder and the
// PLZCoffee contract readers into one connected session.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/decoder"
)

var (
	// ErrConnect is returned when an endpoint cannot be reached or does not
	// speak JSON-RPC. Its message is shown to the user as is.
	ErrConnect = errors.New("Invalid RPC URL. Please try again.")

	// ErrNoEndpoint is returned when no RPC URL was given or configured.
	ErrNoEndpoint = errors.New("no RPC endpoint: pass --rpc or run `plzscan connect <url> --save`")
)

const (
	// DefaultTxLimit is how many transactions the list collects.
	DefaultTxLimit = 100

	// DefaultBlockWindow is how many blocks are fetched concurrently.
	DefaultBlockWindow = 8
)

// Options tune a session. The zero value is usable.
type Options struct {
	Timeout     time.Duration
	Retries     uint
	BlockWindow int
	Contracts   *contract.Table
	Logger      *zap.Logger
}

// Session is a connected explorer handle. It is passed explicitly to
// everything that talks to the chain.
type Session struct {
	client  *chain.EVMClient
	decoder *decoder.Decoder
	table   *contract.Table
	token   *contract.Token
	nft     *contract.NFT
	orders  *contract.OrderBook
	window  int
	log     *zap.Logger
}

// Connect builds a client for url and checks that it answers JSON-RPC.
// net_listening is tried first; nodes that do not implement it are probed
// with eth_blockNumber instead. Any failure is reported as ErrConnect.
func Connect(ctx context.Context, url string, opts Options) (*Session, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoEndpoint
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("%w (unsupported scheme in %q)", ErrConnect, url)
	}

	s := newSession(url, opts)
	if err := s.probe(ctx); err != nil {
		s.log.Debug("connect failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w (%v)", ErrConnect, err)
	}
	s.log.Debug("connected", zap.String("url", url))
	return s, nil
}

func newSession(url string, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	table := opts.Contracts
	if table == nil {
		table = contract.DefaultTable()
	}
	window := opts.BlockWindow
	if window <= 0 {
		window = DefaultBlockWindow
	}

	clientOpts := []chain.Option{
		chain.WithRetries(opts.Retries),
		chain.WithLogger(log.Named("rpc")),
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, chain.WithTimeout(opts.Timeout))
	}
	client := chain.NewEVMClient(url, clientOpts...)

	tokenAddr, _ := table.Address(contract.PLZToken)
	nftAddr, _ := table.Address(contract.PLZNFT)
	orderingAddr, _ := table.Address(contract.Ordering)

	return &Session{
		client:  client,
		decoder: NewDecoder(log.Named("decoder")),
		table:   table,
		token:   contract.NewToken(client, tokenAddr),
		nft:     contract.NewNFT(client, nftAddr),
		orders:  contract.NewOrderBook(client, orderingAddr),
		window:  window,
		log:     log,
	}
}

func (s *Session) probe(ctx context.Context) error {
	_, err := s.client.IsListening(ctx)
	if err == nil {
		return nil
	}
	if !chain.IsMethodNotFound(err) {
		return err
	}
	_, err = s.client.BlockNumber(ctx)
	return err
}

// NewDecoder builds the selector decoder over the built-in ABIs in their
// search order (Ordering, PLZToken, PLZNFT).
func NewDecoder(log *zap.Logger) *decoder.Decoder {
	builtins := contract.AllBuiltins()
	abis := make([]decoder.NamedABI, 0, len(builtins))
	for _, b := range builtins {
		abis = append(abis, decoder.NamedABI{Name: b.Name, ABI: b.ABI})
	}
	return decoder.New(log, abis...)
}

// URL returns the endpoint the session is connected to.
func (s *Session) URL() string { return s.client.URL() }

// Decoder returns the session's selector decoder.
func (s *Session) Decoder() *decoder.Decoder { return s.decoder }

// Contracts returns the contract address table.
func (s *Session) Contracts() *contract.Table { return s.table }

// LatestBlock returns the latest block number.
func (s *Session) LatestBlock(ctx context.Context) (uint64, error) {
	return s.client.BlockNumber(ctx)
}

// ChainID returns the connected chain's ID.
func (s *Session) ChainID(ctx context.Context) (uint64, error) {
	return s.client.ChainID(ctx)
}

// Ping measures one round trip and returns the latest block number.
func (s *Session) Ping(ctx context.Context) (time.Duration, uint64, error) {
	return s.client.Ping(ctx)
}
