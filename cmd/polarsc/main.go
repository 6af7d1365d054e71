// Command polarsc builds, inspects and simulates specialized polar SC
// decoders.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Observe-l/polarsc/internal/config"
	"github.com/Observe-l/polarsc/internal/logging"
	"github.com/Observe-l/polarsc/polar/pattern"
	"github.com/Observe-l/polarsc/polar/tree"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "polarsc",
	Short: "Specialized successive-cancellation decoding of polar codes",
	Long: `polarsc specializes the SC decoding tree of a polar code with a catalog of
node patterns (Rate0, Rate1, Rep, SPC and their left-child variants), then
inspects the tree or runs Monte-Carlo BER/FER simulations over AWGN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "polarsc.yaml", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(constructCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// codeFlags lets a subcommand override the code shape from the command line.
type codeFlags struct {
	n, k    int
	catalog string
}

func (f *codeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.n, "n", "N", 0, "code length (overrides config)")
	cmd.Flags().IntVarP(&f.k, "k", "K", 0, "information bits (overrides config)")
	cmd.Flags().StringVar(&f.catalog, "catalog", "", "pattern catalog, e.g. \"R0,R0L,R1,REP_2-8,REPL,SPC_4+\"")
}

func (f *codeFlags) apply(c *config.Config) {
	if f.n > 0 {
		c.Code.N = f.n
	}
	if f.k > 0 {
		c.Code.K = f.k
	}
	if f.catalog != "" {
		c.Decoder.Catalog = f.catalog
	}
}

// buildTree constructs and specializes the tree the configuration describes.
func buildTree(c *config.Config) (*tree.Tree, pattern.Catalog, error) {
	if err := c.Validate(); err != nil {
		return nil, pattern.Catalog{}, err
	}
	frozen, err := c.Code.Frozen()
	if err != nil {
		return nil, pattern.Catalog{}, err
	}
	catalog, err := c.Decoder.ParseCatalog()
	if err != nil {
		return nil, pattern.Catalog{}, err
	}
	t := tree.New(frozen)
	t.Specialize(catalog)
	counts := make(map[string]int)
	for tag, n := range t.Counts() {
		counts[tag.Short()] = n
	}
	logger.Debug("tree specialized",
		zap.Int("n", t.N()),
		zap.Int("k", t.K()),
		zap.Stringer("catalog", catalog),
		zap.Any("patterns", counts),
	)
	return t, catalog, nil
}
