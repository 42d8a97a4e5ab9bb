package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/ldconf/internal/binpath"
	"github.com/raphi011/ldconf/internal/log"
	"github.com/raphi011/ldconf/internal/output"
	"github.com/raphi011/ldconf/internal/search"
)

// DefaultFilename is the configuration file searched for when --file is
// not given.
const DefaultFilename = "ldc.conf"

var (
	// Global flags
	verbose  bool
	quiet    bool
	filename string

	// Shared state injected into commands
	locator *search.Locator
	binDir  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ldconf",
	Short: "Locate and inspect the LDC toolchain configuration",
	Long: `ldconf resolves the toolchain configuration file the way the compiler
driver does: it probes a fixed list of candidate locations, parses the
first file it finds, and expands %%ldcbinarypath%% in its switches.

Use it to answer "which config file is the compiler actually using,
and what switches does it inject?"`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags are parsed by now; attach the logger with their values.
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	binDir = binpath.Dir(os.Args[0])
	locator = search.New(binDir, search.Host())

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Printer on stdout for primary data; the logger joins the context
	// in PersistentPreRun once flags are parsed
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the resolved config path and probe details")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.PersistentFlags().StringVarP(&filename, "file", "f", DefaultFilename, "Configuration filename to search for")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newInitCmd())
}
