package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gibsn/streamjson"
)

func newEventsCmd() *cobra.Command {
	var (
		prefix         string
		bufSize        int
		allowComments  bool
		multipleValues bool
	)

	cmd := &cobra.Command{
		Use:   "events FILE",
		Short: "Print the prefixed event stream, or items at --prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			opts := []streamjson.Option{
				streamjson.WithBufSize(bufSize),
				streamjson.WithAllowComments(allowComments),
				streamjson.WithMultipleValues(multipleValues),
			}

			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("prefix") {
				sel := streamjson.Items(f, prefix, opts...)
				for {
					v, err := sel.Next()
					if errors.Is(err, io.EOF) {
						return nil
					}
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatValue(v))
				}
			}

			pt := streamjson.Parse(f, opts...)
			for {
				ev, err := pt.Next()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", ev.Prefix, ev.Kind, formatValue(ev.Value))
			}
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "select and print materialized items at this dotted path instead of raw events")
	cmd.Flags().IntVar(&bufSize, "buf-size", 0, "lexer read buffer size in bytes (0 uses the library default)")
	cmd.Flags().BoolVar(&allowComments, "allow-comments", false, "allow // and /* */ comments between lexemes")
	cmd.Flags().BoolVar(&multipleValues, "multiple-values", false, "allow more than one top-level value")

	return cmd
}
