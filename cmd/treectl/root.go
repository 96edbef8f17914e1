package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/codec"
)

var (
	// Global flags
	depthFlag  int
	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Merge, diff, and edit nested YAML/JSON documents",
	Long: `treectl operates on YAML or JSON documents as nested key/value
trees. It can deep-merge documents, compute structural diffs, and read,
set, or remove values addressed by key paths.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().
		IntVar(&depthFlag, "depth", -1, "Limit nesting depth (-1 for unbounded)")
	rootCmd.PersistentFlags().
		StringVar(&formatFlag, "format", "yaml", "Output format (yaml, json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadFile parses one document file into an ordered tree.
func loadFile(path string) (*tree.Ordered[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := codec.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// writeDoc renders a tree in the selected output format, to stdout or to
// the named file when out is non-empty.
func writeDoc(d tree.Map[string], out string) error {
	var data []byte
	var err error
	switch formatFlag {
	case "json":
		data, err = codec.DumpJSON(d)
		data = append(data, '\n')
	case "yaml", "":
		data, err = codec.Dump(d)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", formatFlag)
	}
	if err != nil {
		return err
	}
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(out, data, 0o644)
}
