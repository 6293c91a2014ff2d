package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/experiment"
)

// connectivityOpts holds the command-line flags for the connectivity command.
type connectivityOpts struct {
	n      int
	p      []float64
	trials int
	seed   int64
}

// newConnectivityCmd creates the connectivity command.
// Flags override the [connectivity] table of --config; unset flags keep it.
func newConnectivityCmd() *cobra.Command {
	opts := connectivityOpts{}

	cmd := &cobra.Command{
		Use:   "connectivity",
		Short: "Measure how often G(n,p) is connected",
		Example: `  smallworld connectivity --n 100 --p 0.05 --trials 100 --seed 1
  smallworld connectivity --n 200 --p 0.01,0.02,0.03,0.04`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			applyConnectivityFlags(cmd, &cfg, opts)
			return runConnectivity(cmd, cfg)
		},
	}

	d := DefaultConfig()
	cmd.Flags().IntVar(&opts.n, "n", d.Connectivity.N, "number of vertices")
	cmd.Flags().Float64SliceVar(&opts.p, "p", d.Connectivity.P, "edge probabilities (comma-separated)")
	cmd.Flags().IntVar(&opts.trials, "trials", d.Connectivity.Trials, "samples per probability")
	cmd.Flags().Int64Var(&opts.seed, "seed", d.Seed, "random seed")

	return cmd
}

// applyConnectivityFlags copies explicitly set flags over cfg.
func applyConnectivityFlags(cmd *cobra.Command, cfg *Config, opts connectivityOpts) {
	f := cmd.Flags()
	if f.Changed("n") {
		cfg.Connectivity.N = opts.n
	}
	if f.Changed("p") {
		cfg.Connectivity.P = opts.p
	}
	if f.Changed("trials") {
		cfg.Connectivity.Trials = opts.trials
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
}

func runConnectivity(cmd *cobra.Command, cfg Config) error {
	ctx := cmd.Context()
	logger, _ := runLogger(loggerFromContext(ctx))
	c := cfg.Connectivity
	logger.Info("connectivity", "n", c.N, "p", c.P, "trials", c.Trials, "seed", cfg.Seed)

	prog := newProgress(logger)
	rng := rand.New(rand.NewSource(cfg.Seed))
	pts, err := experiment.ConnectivityCurve(ctx, c.N, c.P, c.Trials, rng)
	if err != nil {
		return err
	}
	for _, pt := range pts {
		logger.Debug("point", "p", pt.P, "connected", pt.Connected, "rate", pt.Rate)
	}
	prog.done("connectivity finished")

	printConnectivity(cmd.OutOrStdout(), c.N, pts)
	return nil
}
