package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Observe-l/polarsc/fec"
)

var (
	constructFlags codeFlags
	constructBase  string
)

var constructCmd = &cobra.Command{
	Use:   "construct",
	Short: "Compute a frozen set and store it as an artifact",
	Long: `Compute the frozen set of the configured code and write it to
<base>/N<n>_K<k>/table_<timestamp>/frozen.json. Point code.frozen_file at the
result, or code.frozen_dir at <base> to always pick the newest table.`,
	Args: cobra.NoArgs,
	RunE: runConstruct,
}

func init() {
	constructFlags.register(constructCmd)
	constructCmd.Flags().StringVar(&constructBase, "out", "tables", "artifact base directory")
}

func runConstruct(cmd *cobra.Command, args []string) error {
	constructFlags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	frozen, err := cfg.Code.Frozen()
	if err != nil {
		return err
	}
	method, param := cfg.Code.Construction, cfg.Code.Param
	switch {
	case cfg.Code.FrozenFile != "", cfg.Code.FrozenDir != "":
		method = "file"
	case cfg.Code.Table != "":
		method = "3gpp"
	case method == string(fec.ConstructionGA) && param == 0:
		param = fec.Sigma(cfg.Code.DesignEbN0, cfg.Code.Rate())
	}
	set := fec.NewFrozenSet(frozen, method, param)
	dir := filepath.Join(fec.ArtifactDir(constructBase, cfg.Code.N, cfg.Code.K), "table_"+time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, "frozen.json")
	if err := fec.SaveFrozenSet(path, set); err != nil {
		return err
	}
	logger.Info("frozen set written",
		zap.String("path", path),
		zap.String("method", method),
		zap.Float64("param", param),
	)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
