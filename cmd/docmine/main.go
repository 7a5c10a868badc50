package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docmine",
		Short: "Extract documented callable surfaces from Javadoc declaration trees",
	}

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newMembersCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
