package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/combine"
)

var mergeOutput string

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Write result to file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <file...>",
		Short: "Deep-merge documents left to right",
		Long: `The merge command overlays the given documents left to right:
values from later documents win, nested mappings at matching keys are
merged recursively, and keys unique to any document are preserved.

Example:
  treectl merge base.yaml override.yaml
  treectl merge --depth 1 base.yaml override.yaml extra.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([]tree.Map[string], 0, len(args))
			for _, path := range args {
				d, err := loadFile(path)
				if err != nil {
					return err
				}
				docs = append(docs, d)
			}
			return writeDoc(combine.MergeDepth(depthFlag, docs...), mergeOutput)
		},
	}
}
