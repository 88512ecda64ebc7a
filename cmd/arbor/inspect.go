package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor/internal/inspect"
	"github.com/arbor-dev/arbor/pkg/tree"
)

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the parsed tree structure of a page description",
		Long: `Parse a JSON page description and print its tree structure.

Useful for debugging malformed element mappings: nodes that would
render as empty strings are marked MALFORMED with their keys.

Examples:
  arbor inspect page.json
  cat page.json | arbor inspect`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			desc, err := readTree(path)
			if err != nil {
				return err
			}
			fmt.Print(inspect.Print(tree.FromAny(desc)))
			return nil
		},
	}
	return cmd
}
