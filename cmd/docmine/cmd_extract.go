package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"docmine/config"
	"docmine/doctree"
	"docmine/extractor"
	"docmine/output"
)

func newExtractCmd() *cobra.Command {
	var (
		configPath string
		snapshot   string
		outputDir  string
		verbosity  int
	)

	cmd := &cobra.Command{
		Use:   "extract [class...]",
		Short: "Extract documented constructors and methods from a snapshot",
		Long: `Extract the documented callable surface of one or more classes from a
declaration-tree snapshot and write one JSON artifact per class.

Classes can be given as arguments or in the config file; with neither, every
type in the snapshot is extracted. Artifacts go to the output directory, or
to stdout when none is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if snapshot != "" {
				cfg.Snapshot = snapshot
			}
			if outputDir != "" {
				cfg.Output = outputDir
			}
			if len(args) > 0 {
				cfg.Classes = args
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runExtract(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "run configuration file")
	cmd.Flags().StringVarP(&snapshot, "snapshot", "s", "", "declaration-tree snapshot file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "artifact output directory (default stdout)")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}

func runExtract(cfg *config.Config) error {
	reg, err := doctree.LoadSnapshot(cfg.Snapshot)
	if err != nil {
		return err
	}

	classes := cfg.Classes
	if len(classes) == 0 {
		classes = reg.TypeNames()
	}

	var emitter extractor.Emitter
	if cfg.Output != "" {
		emitter = output.NewWriter(cfg.Output)
	} else {
		emitter = output.NewStreamWriter(os.Stdout)
	}

	x := extractor.New(reg, reg, extractor.WithEmitter(emitter))
	for _, name := range classes {
		t := reg.Lookup(name)
		if t == nil {
			return fmt.Errorf("class %s not found in snapshot", name)
		}
		if _, err := x.Extract(t); err != nil {
			return err
		}
	}
	return nil
}
