package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/codec"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key...>",
		Short: "Read the value at a key path",
		Long: `The get command resolves a key path in a document and prints
the value found there. A mapping value is printed as a document; scalars
print as-is.

Example:
  treectl get config.yaml server port`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadFile(args[0])
			if err != nil {
				return err
			}
			v, err := tree.Get[string](d, args[1:]...)
			if err != nil {
				return err
			}
			if m, ok := v.(tree.Map[string]); ok {
				return writeDoc(m, "")
			}
			_, err = fmt.Fprintln(os.Stdout, v)
			return err
		},
	}
}

// parseScalar interprets a command-line value the way a document would:
// numbers, booleans, and null become typed values, everything else stays
// a string.
func parseScalar(s string) (any, error) {
	d, err := codec.Load([]byte("v: " + s))
	if err != nil {
		// Not valid as inline YAML; treat it as a plain string.
		return s, nil
	}
	v, err := tree.Get[string](d, "v")
	if err != nil {
		return nil, err
	}
	return v, nil
}
