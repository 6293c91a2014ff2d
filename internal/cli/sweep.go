package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/smallworld/experiment"
)

// sweepOpts holds the command-line flags for the sweep command.
type sweepOpts struct {
	n      int
	k      int
	p      []float64
	trials int
	strict bool
	seed   int64
}

// newSweepCmd creates the sweep command.
// Flags override the [sweep] table of --config; unset flags keep it.
func newSweepCmd() *cobra.Command {
	opts := sweepOpts{}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Watts–Strogatz sweep of C(p)/C(0) and L(p)/L(0)",
		Example: `  smallworld sweep --n 1000 --k 10 --p 0,0.001,0.01,0.1,1 --seed 1
  smallworld sweep --n 500 --k 6 --trials 5 --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			applySweepFlags(cmd, &cfg, opts)
			return runSweep(cmd, cfg)
		},
	}

	d := DefaultConfig()
	cmd.Flags().IntVar(&opts.n, "n", d.Sweep.N, "number of vertices")
	cmd.Flags().IntVar(&opts.k, "k", d.Sweep.K, "lattice degree")
	cmd.Flags().Float64SliceVar(&opts.p, "p", d.Sweep.P, "rewiring probabilities (comma-separated)")
	cmd.Flags().IntVar(&opts.trials, "trials", d.Sweep.Trials, "rewired samples averaged per probability")
	cmd.Flags().BoolVar(&opts.strict, "strict", d.Sweep.Strict, "never rewire onto an existing neighbor")
	cmd.Flags().Int64Var(&opts.seed, "seed", d.Seed, "random seed")

	return cmd
}

// applySweepFlags copies explicitly set flags over cfg.
func applySweepFlags(cmd *cobra.Command, cfg *Config, opts sweepOpts) {
	f := cmd.Flags()
	if f.Changed("n") {
		cfg.Sweep.N = opts.n
	}
	if f.Changed("k") {
		cfg.Sweep.K = opts.k
	}
	if f.Changed("p") {
		cfg.Sweep.P = opts.p
	}
	if f.Changed("trials") {
		cfg.Sweep.Trials = opts.trials
	}
	if f.Changed("strict") {
		cfg.Sweep.Strict = opts.strict
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
}

func runSweep(cmd *cobra.Command, cfg Config) error {
	ctx := cmd.Context()
	logger, _ := runLogger(loggerFromContext(ctx))
	s := cfg.Sweep
	logger.Info("sweep", "n", s.N, "k", s.K, "p", s.P, "trials", s.Trials, "strict", s.Strict, "seed", cfg.Seed)

	prog := newProgress(logger)
	rng := rand.New(rand.NewSource(cfg.Seed))
	pts, err := experiment.SweepContext(ctx, experiment.SweepConfig{
		N:      s.N,
		K:      s.K,
		Ps:     s.P,
		Trials: s.Trials,
		Strict: s.Strict,
	}, rng)
	if err != nil {
		return err
	}
	for _, pt := range pts {
		if pt.Disconnected > 0 {
			logger.Warn("disconnected samples excluded from L", "p", pt.P, "count", pt.Disconnected)
		}
	}
	prog.done("sweep finished")

	printSweep(cmd.OutOrStdout(), s.N, s.K, pts)
	return nil
}
