package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docmine/output"
)

const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docmine version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docmine %s (artifact schema v%d)\n", version, output.SchemaVersion)
		},
	}
}
