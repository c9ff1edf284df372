package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gibsn/streamjson"
)

// newScanCmd fans a count-the-items pass for each given file out across
// goroutines, one parser per file. It exists to exercise, from a shell,
// the guarantee that independent Parser/Selector pipelines on separate
// goroutines don't share state.
func newScanCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "scan FILE...",
		Short: "Count items at --prefix in each file concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := make([]int, len(args))

			g, _ := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					n, err := countItems(path, prefix)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					counts[i] = n
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, path := range args {
				fmt.Fprintf(out, "%s\t%d\n", path, counts[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "item", "dotted path to count items at")

	return cmd
}

func countItems(path, prefix string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sel := streamjson.Items(f, prefix)
	n := 0
	for {
		_, err := sel.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
