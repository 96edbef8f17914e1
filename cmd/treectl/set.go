package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
)

var (
	setOutput  string
	setInPlace bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setOutput, "output", "o", "", "Write result to file instead of stdout")
	cmd.Flags().BoolVarP(&setInPlace, "in-place", "i", false, "Rewrite the input file")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <value> <key...>",
		Short: "Set the value at a key path",
		Long: `The set command stores a value at a key path, creating missing
intermediate mappings, and writes the updated document. The value is
interpreted as an inline document scalar (numbers, booleans, and null
become typed values).

Example:
  treectl set config.yaml 8080 server port
  treectl set -i config.yaml true server tls enabled`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadFile(args[0])
			if err != nil {
				return err
			}
			value, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			if _, err := tree.Set[string](d, value, args[2:]...); err != nil {
				return err
			}
			out := setOutput
			if setInPlace {
				out = args[0]
			}
			return writeDoc(d, out)
		},
	}
}
