package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds experiment defaults. Zero-valued fields in a file keep the
// built-in defaults.
type Config struct {
	Seed         int64              `toml:"seed"`
	Connectivity ConnectivityConfig `toml:"connectivity"`
	Sweep        SweepConfig        `toml:"sweep"`
}

// ConnectivityConfig is the [connectivity] table.
type ConnectivityConfig struct {
	N      int       `toml:"n"`
	P      []float64 `toml:"p"`
	Trials int       `toml:"trials"`
}

// SweepConfig is the [sweep] table.
type SweepConfig struct {
	N      int       `toml:"n"`
	K      int       `toml:"k"`
	P      []float64 `toml:"p"`
	Trials int       `toml:"trials"`
	Strict bool      `toml:"strict"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Seed: 1,
		Connectivity: ConnectivityConfig{
			N:      100,
			P:      []float64{0.05},
			Trials: 100,
		},
		Sweep: SweepConfig{
			N:      1000,
			K:      10,
			P:      []float64{0, 0.001, 0.01, 0.1, 1},
			Trials: 1,
		},
	}
}

// loadConfig returns DefaultConfig overlaid with the TOML file at path.
// An empty path yields the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	return parseConfig(data, cfg)
}

// parseConfig decodes data on top of base.
func parseConfig(data []byte, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("parse config: unknown keys: %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the Config attached by the root command, or the defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return DefaultConfig()
}
