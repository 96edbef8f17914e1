package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
)

var (
	popOutput  string
	popInPlace bool
	popPrune   bool
)

func init() {
	cmd := newPopCmd()
	cmd.Flags().StringVarP(&popOutput, "output", "o", "", "Write result to file instead of stdout")
	cmd.Flags().BoolVarP(&popInPlace, "in-place", "i", false, "Rewrite the input file")
	cmd.Flags().BoolVar(&popPrune, "prune", false, "Also remove intermediate mappings left empty")
	rootCmd.AddCommand(cmd)
}

func newPopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pop <file> <key...>",
		Short: "Remove the value at a key path",
		Long: `The pop command removes the value at a key path and writes the
updated document. The removed value is reported on stderr. With --prune,
intermediate mappings that became empty are removed as well, up to the
first ancestor that still has entries.

Example:
  treectl pop config.yaml server port
  treectl pop -i --prune config.yaml server tls enabled`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadFile(args[0])
			if err != nil {
				return err
			}
			var v any
			if popPrune {
				v, err = tree.PopPath[string](d, args[1:]...)
			} else {
				v, err = tree.Pop[string](d, args[1:]...)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "removed: %v\n", v)
			out := popOutput
			if popInPlace {
				out = args[0]
			}
			return writeDoc(d, out)
		},
	}
}
