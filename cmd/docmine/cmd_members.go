package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docmine/doctree"
	"docmine/extractor"
)

func newMembersCmd() *cobra.Command {
	var snapshot string

	cmd := &cobra.Command{
		Use:   "members <class>",
		Short: "List the collected callable members of a class",
		Long: `List the de-duplicated, override-resolved constructors and methods of a
class as the extractor sees them, including the type each member is
inherited from. Useful for checking what a snapshot exposes before a full
extraction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMembers(snapshot, args[0])
		},
	}

	cmd.Flags().StringVarP(&snapshot, "snapshot", "s", "", "declaration-tree snapshot file")
	cmd.MarkFlagRequired("snapshot")

	return cmd
}

func runMembers(snapshot, class string) error {
	reg, err := doctree.LoadSnapshot(snapshot)
	if err != nil {
		return err
	}
	t := reg.Lookup(class)
	if t == nil {
		return fmt.Errorf("class %s not found in snapshot", class)
	}

	for _, m := range extractor.CollectMembers(reg, t) {
		kind := "method"
		if m.Constructor {
			kind = "constructor"
		}
		fmt.Printf("%-11s %s", kind, m.Key())
		if d := m.Declaring(); d != nil && d != t {
			fmt.Printf("  (from %s)", d.QualifiedName)
		}
		fmt.Println()
	}
	return nil
}
