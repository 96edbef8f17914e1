package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
)

var itemsSep string

func init() {
	cmd := newItemsCmd()
	cmd.Flags().StringVar(&itemsSep, "sep", ".", "Path separator for output")
	rootCmd.AddCommand(cmd)
}

func newItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "items <file>",
		Short: "List every leaf as a path/value line",
		Long: `The items command enumerates every leaf of a document depth-first
and prints one "path: value" line per leaf. With --depth, mappings at the
cutoff are printed whole as values.

Example:
  treectl items config.yaml
  treectl items config.yaml --depth 2 --sep /`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadFile(args[0])
			if err != nil {
				return err
			}
			for it := range tree.ItemsDepth[string](d, depthFlag) {
				fmt.Fprintf(os.Stdout, "%s: %v\n", strings.Join(it.Path, itemsSep), it.Value)
			}
			return nil
		},
	}
}
