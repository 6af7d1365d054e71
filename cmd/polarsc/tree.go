package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Observe-l/polarsc/polar/pattern"
	"github.com/Observe-l/polarsc/polar/tree"
)

var (
	treeFlags  codeFlags
	treeFormat string
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the specialized decoding tree",
	Long: `Build the frozen set from the configuration, specialize the tree with the
catalog and print it as a text summary, a Graphviz digraph or JSON.`,
	Example: `  polarsc tree -N 1024 -K 512
  polarsc tree --format dot | dot -Tsvg > tree.svg
  polarsc tree --catalog "R0,R1,REP_2-8,SPC_4+" --format json`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeFlags.register(treeCmd)
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "text", "output format: text, dot or json")
}

func runTree(cmd *cobra.Command, args []string) error {
	treeFlags.apply(cfg)
	t, catalog, err := buildTree(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch treeFormat {
	case "text":
		return writeSummary(out, t, catalog)
	case "dot":
		return t.WriteDot(out)
	case "json":
		return t.WriteJSON(out)
	}
	return fmt.Errorf("unknown format %q", treeFormat)
}

func writeSummary(w io.Writer, t *tree.Tree, catalog pattern.Catalog) error {
	counts := t.Counts()
	visible := 0
	for _, n := range counts {
		visible += n
	}
	fmt.Fprintf(w, "N=%d K=%d rate=%.4f\n", t.N(), t.K(), float64(t.K())/float64(t.N()))
	fmt.Fprintf(w, "catalog: %s\n", catalog)
	fmt.Fprintf(w, "nodes: %d in arena, %d visited by the decoder\n", t.Len(), visible)
	for _, tag := range pattern.All() {
		if counts[tag] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-12s %6d\n", tag, counts[tag])
	}
	return nil
}
