package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/logger"
	"github.com/Mohsinsiddi/plzscan/internal/secrets"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openKeystore opens the endpoint secret store. Tests swap it for an
// in-memory store.
var openKeystore = func(dir string) secrets.Store {
	return secrets.DefaultKeystore(dir)
}

// endpoint resolves the RPC URL: --rpc (a URL or network name), then the
// configured rpc_url, then the keychain entry named by rpc_ref.
func endpoint() (string, error) {
	if rpcFlag != "" {
		return chain.NewRegistry().ResolveRPC(rpcFlag), nil
	}
	if cfg.RPCURL != "" || cfg.RPCRef == "" {
		return cfg.RPCURL, nil
	}
	return secrets.ResolveEndpoint(openKeystore(cfg.Dir()), "", cfg.RPCRef)
}

// consoleLogger builds the stderr logger for one-shot commands.
func consoleLogger(cmd *cobra.Command) (*zap.Logger, error) {
	return logger.NewConsole(logger.Options{
		Level:   cfg.LogLevel,
		Verbose: verbose,
		Writer:  cmd.ErrOrStderr(),
	})
}

// sessionOptions maps the effective config onto explorer options.
func sessionOptions(log *zap.Logger) (explorer.Options, error) {
	table, err := contract.LoadTable(cfg.ContractsPath())
	if err != nil {
		return explorer.Options{}, err
	}
	return explorer.Options{
		Timeout:     cfg.Timeout(),
		Retries:     cfg.RPCRetries,
		BlockWindow: cfg.BlockWindow,
		Contracts:   table,
		Logger:      log,
	}, nil
}

// openSession connects to the resolved endpoint.
func openSession(cmd *cobra.Command) (*explorer.Session, error) {
	url, err := endpoint()
	if err != nil {
		return nil, err
	}
	log, err := consoleLogger(cmd)
	if err != nil {
		return nil, err
	}
	opts, err := sessionOptions(log)
	if err != nil {
		return nil, err
	}
	return explorer.Connect(cmd.Context(), url, opts)
}

// contractTable returns the address table without connecting.
func contractTable() (*contract.Table, error) {
	return contract.LoadTable(cfg.ContractsPath())
}

// queryError turns a contract query failure into its field-level message.
// The address and order sentinels are shown as they are.
func queryError(err error) error {
	for _, sentinel := range []error{contract.ErrInvalidAddress, contract.ErrOrderNotFound} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	if chain.IsRevert(err) {
		return fmt.Errorf("call reverted: %w", err)
	}
	return fmt.Errorf("request failed: %w", err)
}

func printBlock(w io.Writer, title string, pairs [][2]string) {
	fmt.Fprintln(w, ui.KeyValueBlock(title, pairs))
}
