package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(fileCfg, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Fprintln(out, string(data))
		file, _ := json.Marshal(fileCfg)
		if eff, _ := json.Marshal(cfg); string(eff) != string(file) {
			fmt.Fprintln(out, ui.Warn("PLZSCAN_* environment overrides are active"))
		}
		fmt.Fprintln(out, ui.Meta("Config directory: "+fileCfg.Dir()))
		return nil
	},
}

// configKeys are the settings `config set` accepts.
var configKeys = []string{"rpc_url", "rpc_timeout", "rpc_retries", "tx_limit", "block_window", "log_level", "log_file"}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set one configuration value. Keys:

  rpc_url        default endpoint, stored in plain text
  rpc_timeout    seconds per RPC request (1-300)
  rpc_retries    extra attempts after a network error (0-10)
  tx_limit       transactions listed by txs and explore (1-10000)
  block_window   blocks fetched concurrently (1-64)
  log_level      debug | info | warn | error
  log_file       explorer log path (default: <config dir>/plzscan.log)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := strings.ToLower(args[0]), args[1]
		if err := setConfigValue(key, value); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s set to %q", key, value)))
		return nil
	},
}

var configForgetCmd = &cobra.Command{
	Use:   "forget <url>",
	Short: "Remove an endpoint from the recent list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fileCfg.Forget(args[0]); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Forgot "+args[0]))
		return nil
	},
}

var configClearEndpointCmd = &cobra.Command{
	Use:   "clear-endpoint",
	Short: "Remove the saved default endpoint (and its keychain entry)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fileCfg.RPCRef != "" {
			if err := openKeystore(fileCfg.Dir()).Delete(fileCfg.RPCRef); err != nil {
				return err
			}
		}
		fileCfg.RPCURL = ""
		fileCfg.RPCRef = ""
		if err := fileCfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Default endpoint cleared"))
		return nil
	},
}

func setConfigValue(key, value string) error {
	atoi := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", key, value)
		}
		return n, nil
	}

	switch key {
	case "rpc_url":
		fileCfg.RPCURL = value
		fileCfg.RPCRef = ""
	case "rpc_timeout":
		n, err := atoi()
		if err != nil {
			return err
		}
		fileCfg.RPCTimeout = n
	case "rpc_retries":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", key, value)
		}
		fileCfg.RPCRetries = uint(n)
	case "tx_limit":
		n, err := atoi()
		if err != nil {
			return err
		}
		fileCfg.TxLimit = n
	case "block_window":
		n, err := atoi()
		if err != nil {
			return err
		}
		fileCfg.BlockWindow = n
	case "log_level":
		fileCfg.LogLevel = strings.ToLower(value)
	case "log_file":
		fileCfg.LogFile = value
	default:
		return fmt.Errorf("unknown key %q (want one of: %s)", key, strings.Join(configKeys, ", "))
	}
	return nil
}

func init() {
	configCmd.AddCommand(configListCmd, configSetCmd, configForgetCmd, configClearEndpointCmd)
}
