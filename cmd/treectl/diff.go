package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/combine"
)

var (
	diffAsymmetric bool
	diffFoldCase   bool
	diffOutput     string
)

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffAsymmetric, "asymmetric", false, "Report only the left document's side of each difference")
	cmd.Flags().BoolVar(&diffFoldCase, "fold-case", false, "Case-fold keys before comparing")
	cmd.Flags().StringVarP(&diffOutput, "output", "o", "", "Write diff to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compare two documents and show differences",
		Long: `The diff command compares two documents as nested trees. Each
differing path maps to the pair of values found on the two sides; a key
present on only one side reports just that side. With --asymmetric, only
the left document's values are reported and keys exclusive to the right
document are ignored.

Example:
  treectl diff before.yaml after.yaml
  treectl diff before.yaml after.yaml --asymmetric
  treectl diff before.yaml after.yaml --depth 1 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := loadFile(args[0])
			if err != nil {
				return err
			}
			right, err := loadFile(args[1])
			if err != nil {
				return err
			}
			var l, r tree.Map[string] = left, right
			if diffFoldCase {
				l = foldKeys(l)
				r = foldKeys(r)
			}
			opts := combine.Options{Depth: depthFlag, Symmetric: !diffAsymmetric}
			d := combine.Diff(l, r, opts)
			return writeDoc(renderDiff(d), diffOutput)
		},
	}
}

// foldKeys rebuilds a tree with every key passed through Unicode case
// folding. When two keys fold to the same string, the later one wins.
// Recurses; input depth here is bounded by what the codec can parse.
func foldKeys(d tree.Map[string]) tree.Map[string] {
	folder := cases.Fold()
	out := d.Empty()
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		if m, ok := v.(tree.Map[string]); ok {
			v = foldKeys(m)
		}
		out.Set(folder.String(k), v)
	}
	return out
}

// renderDiff rewrites combine.Pair leaves into small "left"/"right"
// mappings with the absent side omitted, so the result serializes cleanly.
// Recurses; input depth here is bounded by what the codec can parse.
func renderDiff(d tree.Map[string]) tree.Map[string] {
	out := d.Empty()
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		switch vv := v.(type) {
		case tree.Map[string]:
			out.Set(k, renderDiff(vv))
		case combine.Pair:
			side := d.Empty()
			if !tree.IsSentinel(vv.Left) {
				side.Set("left", vv.Left)
			}
			if !tree.IsSentinel(vv.Right) {
				side.Set("right", vv.Right)
			}
			out.Set(k, side)
		default:
			out.Set(k, v)
		}
	}
	return out
}
