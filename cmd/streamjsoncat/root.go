package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "streamjsoncat",
		Short: "Stream JSON files through streamjson's event pipeline",
	}

	root.AddCommand(newEventsCmd())
	root.AddCommand(newScanCmd())

	return root
}
