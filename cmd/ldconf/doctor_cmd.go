package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/ldconf/internal/doctor"
	"github.com/raphi011/ldconf/internal/output"
)

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	shadowedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Probe every candidate location and diagnose the result",
		Args:  cobra.NoArgs,
		Long: `Probe every candidate location for the configuration file and report,
per location, whether it exists, wins the search, or is shadowed by an
earlier candidate. When a file wins, it is also parsed so schema and
syntax problems surface here instead of at compile time.`,
		Example: `  ldconf doctor               # Diagnose the default ldc.conf
  ldconf doctor -f ldc2.conf  # Diagnose a different filename`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.FromContext(cmd.Context())
			colored := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

			r := doctor.Run(locator, filename, binDir)

			printer.Printf("Searching for %s\n\n", filename)
			for _, c := range r.Candidates {
				printer.Println(renderCandidate(c, colored))
			}
			printer.Println()

			switch {
			case r.Selected == "":
				printer.Println("No configuration file found; the driver falls back to DFLAGS.")
			case r.LoadErr != nil:
				msg := fmt.Sprintf("✗ %s does not load: %v", r.Selected, r.LoadErr)
				if colored {
					msg = errorStyle.Render(msg)
				}
				printer.Println(msg)
				return fmt.Errorf("configuration file is broken")
			default:
				printer.Printf("Using %s (%d switches)\n", r.Selected, len(r.Switches))
			}
			return nil
		},
	}

	return cmd
}

// renderCandidate formats one probe line for the doctor report.
func renderCandidate(c doctor.Candidate, colored bool) string {
	var mark string
	style := missingStyle

	switch c.Status {
	case doctor.StatusSelected:
		mark = "✓ used   "
		style = selectedStyle
	case doctor.StatusShadowed:
		mark = "⚠ shadowed"
		style = shadowedStyle
	default:
		mark = "· missing "
	}

	line := fmt.Sprintf("%s %s", mark, c.Path)
	if colored {
		return style.Render(line)
	}
	return line
}
