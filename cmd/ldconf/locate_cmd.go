package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/ldconf/internal/output"
)

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the config file the search resolves to",
		Args:  cobra.NoArgs,
		Long: `Print the path of the configuration file the compiler driver would use.

Candidate locations are probed in a fixed order; the first existing file
wins. Exits non-zero when no candidate exists, which the driver treats as
"configure via the DFLAGS environment variable instead".`,
		Example: `  ldconf locate                # Resolve the default ldc.conf
  ldconf locate -f ldc2.conf   # Resolve a different filename`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := locator.Locate(filename)
			if !ok {
				return fmt.Errorf("failed to locate the configuration file: %s", filename)
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}

	return cmd
}
