package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/ldconf/internal/output"
)

const defaultConfig = `# LDC toolchain configuration
#
# The driver searches a fixed list of locations for this file; run
# "ldconf doctor" to see them in order. %%ldcbinarypath%% expands to the
# directory containing the running executable, so switches stay valid
# when the toolchain is relocated.

[default]
switches = [
    "-I%%ldcbinarypath%%/../import",
    "-L-L%%ldcbinarypath%%/../lib",
    "-defaultlib=phobos2",
]
`

func newInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config file in the user location",
		Args:  cobra.NoArgs,
		Long: `Create a starter configuration file at ~/.ldc/<filename>, the
user-level candidate location. System-wide locations are left alone.`,
		Example: `  ldconf init           # Create ~/.ldc/ldc.conf
  ldconf init --force   # Overwrite an existing file
  ldconf init -s        # Print the starter config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				output.FromContext(cmd.Context()).Printf("%s", defaultConfig)
				return nil
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path := filepath.Join(home, ".ldc", filename)

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
				}
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
				return err
			}

			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
