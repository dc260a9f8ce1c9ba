package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/slamtools/lago"
)

// Config holds the tunables of the init command. All fields have working
// defaults; a TOML file supplied with --config overrides them.
type Config struct {
	// AnchorSigma is the standard deviation of the gauge-fixing prior.
	AnchorSigma float64 `toml:"anchor_sigma"`

	// AutoPrior adds a heading prior on the lowest-numbered vertex when the
	// dataset carries none; without any prior the graph has no anchor.
	AutoPrior bool `toml:"auto_prior"`

	// PriorSigma is the per-component standard deviation of the auto prior.
	PriorSigma float64 `toml:"prior_sigma"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		AnchorSigma: lago.DefaultAnchorSigma,
		AutoPrior:   true,
		PriorSigma:  0.1,
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are an
// error: a typoed tunable silently falling back to its default is worse
// than failing.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("cli: config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("cli: config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.AnchorSigma <= 0 || cfg.PriorSigma <= 0 {
		return Config{}, fmt.Errorf("cli: config %s: sigmas must be positive", path)
	}

	return cfg, nil
}
