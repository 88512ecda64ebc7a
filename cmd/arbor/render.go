package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbor-dev/arbor"
	"github.com/arbor-dev/arbor/internal/errors"
)

func renderCmd() *cobra.Command {
	var (
		scoped bool
		strict bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a page description file to HTML",
		Long: `Render a JSON page description to HTML.

Reads the tree description from the given file, or from stdin when
the file is "-" or omitted.

Examples:
  arbor render page.json
  arbor render page.json --scoped -o index.html
  cat page.json | arbor render --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(path, scoped, strict, output)
		},
	}

	cmd.Flags().BoolVar(&scoped, "scoped", false, "Enable CSS scope encapsulation")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed elements instead of skipping them")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to file instead of stdout")

	return cmd
}

func runRender(path string, scoped, strict bool, output string) error {
	desc, err := readTree(path)
	if err != nil {
		return err
	}

	opts := []arbor.Option{}
	if scoped {
		opts = append(opts, arbor.Scoped())
	}
	if strict {
		opts = append(opts, arbor.Strict())
	}

	html, err := arbor.Render(desc, opts...)
	if err != nil {
		return err
	}

	if output == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return err
	}
	success("Wrote %d bytes to %s", len(html), output)
	return nil
}

// readTree loads a JSON page description from a file or stdin.
func readTree(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.New("L001").WithPath(path).Wrap(err)
		}
	}

	var desc any
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, errors.New("V001").WithPath(path).Wrap(err)
	}
	return desc, nil
}
