package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	defaultTimeout     = 15 // seconds
	defaultRetries     = 0
	defaultTxLimit     = 100
	defaultBlockWindow = 8
	defaultLogLevel    = "warn"
	maxRecent          = 5

	configFile    = "config.json"
	contractsFile = "contracts.yaml"
	logFile       = "plzscan.log"

	// EnvPrefix prefixes every environment override, e.g. PLZSCAN_RPC_URL.
	EnvPrefix = "PLZSCAN"
)

// Config holds all plzscan configuration.
type Config struct {
	RPCURL      string   `json:"rpc_url,omitempty"  validate:"omitempty,url"`
	RPCRef      string   `json:"rpc_ref,omitempty"`                           // keychain reference for a saved endpoint
	RPCTimeout  int      `json:"rpc_timeout"        validate:"gte=1,lte=300"` // seconds
	RPCRetries  uint     `json:"rpc_retries"        validate:"lte=10"`
	TxLimit     int      `json:"tx_limit"           validate:"gte=1,lte=10000"`
	BlockWindow int      `json:"block_window"       validate:"gte=1,lte=64"`
	LogLevel    string   `json:"log_level"          validate:"oneof=debug info warn error"`
	LogFile     string   `json:"log_file,omitempty"`
	Recent      []string `json:"recent,omitempty"` // recently connected endpoints, newest first

	// internal: config dir path used for Save()
	configDir string
}

// envOverrides mirrors the overridable fields; nil means "not set".
type envOverrides struct {
	RPCURL      *string `envconfig:"RPC_URL"`
	RPCTimeout  *int    `envconfig:"RPC_TIMEOUT"`
	RPCRetries  *uint   `envconfig:"RPC_RETRIES"`
	TxLimit     *int    `envconfig:"TX_LIMIT"`
	BlockWindow *int    `envconfig:"BLOCK_WINDOW"`
	LogLevel    *string `envconfig:"LOG_LEVEL"`
	LogFile     *string `envconfig:"LOG_FILE"`
}

// DefaultDir returns ~/.plzscan.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home dir: %w", err)
	}
	return filepath.Join(home, ".plzscan"), nil
}

// Load reads config from dir (or creates defaults). dir defaults to ~/.plzscan.
// The returned config reflects the file only; see Effective for env overrides.
func Load(dir string) (*Config, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Effective returns a copy of c with PLZSCAN_* environment overrides
// applied and validated. c itself is left untouched so Save never
// persists values that only came from the environment.
func (c *Config) Effective() (*Config, error) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("reading %s_* environment: %w", EnvPrefix, err)
	}

	eff := *c
	eff.Recent = slices.Clone(c.Recent)
	if env.RPCURL != nil {
		eff.RPCURL = *env.RPCURL
		eff.RPCRef = ""
	}
	if env.RPCTimeout != nil {
		eff.RPCTimeout = *env.RPCTimeout
	}
	if env.RPCRetries != nil {
		eff.RPCRetries = *env.RPCRetries
	}
	if env.TxLimit != nil {
		eff.TxLimit = *env.TxLimit
	}
	if env.BlockWindow != nil {
		eff.BlockWindow = *env.BlockWindow
	}
	if env.LogLevel != nil {
		eff.LogLevel = *env.LogLevel
	}
	if env.LogFile != nil {
		eff.LogFile = *env.LogFile
	}

	if err := Validate(&eff); err != nil {
		return nil, fmt.Errorf("environment overrides: %w", err)
	}
	return &eff, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := Validate(c); err != nil {
		return err
	}
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Remember moves url to the front of the recent endpoints list.
func (c *Config) Remember(url string) {
	if url == "" {
		return
	}
	if i := slices.Index(c.Recent, url); i >= 0 {
		c.Recent = slices.Delete(c.Recent, i, i+1)
	}
	c.Recent = slices.Insert(c.Recent, 0, url)
	if len(c.Recent) > maxRecent {
		c.Recent = c.Recent[:maxRecent]
	}
}

// Forget removes url from the recent endpoints list.
func (c *Config) Forget(url string) error {
	i := slices.Index(c.Recent, url)
	if i == -1 {
		return fmt.Errorf("endpoint %s not found", url)
	}
	c.Recent = slices.Delete(c.Recent, i, i+1)
	return nil
}

// Timeout returns RPCTimeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RPCTimeout) * time.Second
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// ContractsPath returns the path of the optional contracts.yaml override.
func (c *Config) ContractsPath() string {
	return filepath.Join(c.configDir, contractsFile)
}

// LogPath returns where the interactive explorer writes its log.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.configDir, logFile)
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		RPCTimeout:  defaultTimeout,
		RPCRetries:  defaultRetries,
		TxLimit:     defaultTxLimit,
		BlockWindow: defaultBlockWindow,
		LogLevel:    defaultLogLevel,
		configDir:   dir,
	}
}
