package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/ldconf/internal/config"
	"github.com/raphi011/ldconf/internal/log"
	"github.com/raphi011/ldconf/internal/output"
)

// showResult is the JSON shape of `ldconf show --json`.
type showResult struct {
	Path     string   `json:"path"`
	Switches []string `json:"switches"`
}

func newShowCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load the configuration and print its expanded switches",
		Args:  cobra.NoArgs,
		Long: `Load the configuration file and print the switches it injects into the
compiler command line, with %%ldcbinarypath%% already expanded to the
directory containing the executable.`,
		Example: `  ldconf show           # Resolved path plus one switch per line
  ldconf show --json    # Machine-readable output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var f config.File
			if err := f.Read(locator, filename, binDir); err != nil {
				return err
			}

			log.FromContext(ctx).Verbosef("config file: %s", f.Path)

			printer := output.FromContext(ctx)
			if asJSON {
				return printer.JSON(showResult{Path: f.Path, Switches: f.Switches})
			}

			printer.Println(f.Path)
			for _, s := range f.Switches {
				printer.Println(s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")

	return cmd
}
