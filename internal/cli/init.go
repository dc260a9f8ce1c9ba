package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slamtools/lago"
	"github.com/slamtools/lago/g2o"
	"github.com/slamtools/lago/posegraph"
)

// initCommand builds the `lago init` subcommand: dataset in, dataset with
// corrected headings out.
func (c *CLI) initCommand() *cobra.Command {
	var (
		outPath    string
		configPath string
		autoPrior  bool
	)

	cmd := &cobra.Command{
		Use:   "init <dataset.g2o>",
		Short: "Compute the LAGO orientation initialization for a g2o dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("auto-prior") {
				cfg.AutoPrior = autoPrior
			}

			return c.runInit(args[0], outPath, cfg)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&autoPrior, "auto-prior", true, "add a prior on the first vertex when the dataset has none")

	return cmd
}

// runInit executes the pipeline on one dataset file.
func (c *CLI) runInit(inPath, outPath string, cfg Config) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	defer in.Close()

	p := newProgress(c.logger)
	ds, err := g2o.Read(in)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Parsed %d factors, %d vertices", ds.Graph.Len(), len(ds.Guess)))

	if cfg.AutoPrior {
		if err = addAutoPrior(ds, cfg.PriorSigma, c.logger.Debugf); err != nil {
			return err
		}
	}

	p = newProgress(c.logger)
	merged, err := lago.Initialize(ds.Graph, ds.Guess, lago.WithAnchorSigma(cfg.AnchorSigma))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Initialized %d orientations", len(merged)))

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		defer f.Close()
		out = f
	}

	return g2o.Write(out, &g2o.Dataset{Graph: ds.Graph, Guess: merged})
}

// addAutoPrior pins the lowest-numbered vertex to its estimate when the
// dataset has no prior of its own. g2o files carry none, so without this
// the filtered graph has no anchor and the tree is rooted arbitrarily.
func addAutoPrior(ds *g2o.Dataset, sigma float64, debugf func(string, ...interface{})) error {
	for _, f := range ds.Graph.Factors() {
		if f.Kind == posegraph.KindPriorPose || f.Kind == posegraph.KindPriorRot {
			return nil
		}
	}
	keys := ds.Guess.Keys()
	if len(keys) == 0 {
		return nil // nothing to pin; the pipeline will report the real error
	}
	first := keys[0]
	noise, err := posegraph.Isotropic(3, sigma)
	if err != nil {
		return err
	}
	debugf("Adding prior on vertex %d", uint64(first))

	return ds.Graph.AddPriorPose(first, ds.Guess[first], noise)
}
