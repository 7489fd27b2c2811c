package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"cosmossdk.io/log"

	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/tokens"
	"github.com/TrustedSmartChain/hbarsign/x/hbarsign/types"
)

// Configuration keys, also used as flag names.
const (
	FlagLogLevel       = "log_level"
	FlagLogFormat      = "log_format"
	FlagMetricsEnabled = "metrics.enabled"
	FlagTokens         = "tokens"

	// EnvPrefix prefixes environment overrides, e.g. HBARSIGN_LOG_LEVEL.
	EnvPrefix = "HBARSIGN"

	LogFormatJSON  = "json"
	LogFormatPlain = "plain"

	DefaultLogLevel = "info"
)

// AppOptions is the read side of the configuration. *viper.Viper satisfies
// it.
type AppOptions interface {
	Get(string) interface{}
}

// NewLogger builds the process logger from log_level and log_format.
func NewLogger(w io.Writer, appOpts AppOptions) (log.Logger, error) {
	levelName := cast.ToString(appOpts.Get(FlagLogLevel))
	if levelName == "" {
		levelName = DefaultLogLevel
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", FlagLogLevel, levelName, err)
	}

	opts := []log.Option{log.LevelOption(level)}
	switch format := cast.ToString(appOpts.Get(FlagLogFormat)); format {
	case "", LogFormatPlain:
		opts = append(opts, log.ColorOption(false))
	case LogFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	default:
		return nil, fmt.Errorf("invalid %s %q: want %s or %s", FlagLogFormat, format, LogFormatPlain, LogFormatJSON)
	}
	return log.NewLogger(w, opts...), nil
}

// TokensFromOptions reads the extra token entries configured under tokens.
// Each entry is a map with id, ticker, name, decimals and an optional
// evm_address.
func TokensFromOptions(appOpts AppOptions) ([]tokens.Info, error) {
	raw := appOpts.Get(FlagTokens)
	if raw == nil {
		return nil, nil
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FlagTokens, err)
	}

	out := make([]tokens.Info, 0, len(items))
	for i, item := range items {
		info, err := tokenFromMap(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", FlagTokens, i, err)
		}
		out = append(out, info)
	}
	return out, nil
}

func tokenFromMap(item interface{}) (tokens.Info, error) {
	m, err := cast.ToStringMapE(item)
	if err != nil {
		return tokens.Info{}, err
	}

	id, err := types.ParseEntityID(cast.ToString(m["id"]))
	if err != nil {
		return tokens.Info{}, err
	}
	decimals, err := cast.ToUint32E(m["decimals"])
	if err != nil {
		return tokens.Info{}, fmt.Errorf("decimals: %w", err)
	}

	info := tokens.Info{
		ID:       id,
		Ticker:   cast.ToString(m["ticker"]),
		Name:     cast.ToString(m["name"]),
		Decimals: decimals,
	}
	if addr := strings.TrimSpace(cast.ToString(m["evm_address"])); addr != "" {
		if !common.IsHexAddress(addr) {
			return tokens.Info{}, fmt.Errorf("evm_address %q is not a 20 byte hex address", addr)
		}
		info.EVMAddress = common.HexToAddress(addr)
	}
	return info, nil
}
