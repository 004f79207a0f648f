package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/datestamp/internal/adapters/fonts"
	"github.com/kamal-hamza/datestamp/pkg/colorspec"
	"github.com/kamal-hamza/datestamp/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your datestamp setup",
	Long: `Diagnose issues with your datestamp setup.

Checks for:
  - Configuration file existence and values
  - Font availability (configured family and built-in fallbacks)
  - Clipboard support`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.FormatTitle("🏥 datestamp Doctor"))
	fmt.Fprintln(out)

	// 1. Check Config
	checkStep(out, "Configuration File", func() error {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use, run 'datestamp config init')", configPath)
		}
		return nil
	})

	checkStep(out, "Default Color", func() error {
		if !colorspec.Valid(appConfig.Color) {
			return fmt.Errorf("%q is not a color name or #rgb/#rrggbb hex", appConfig.Color)
		}
		return nil
	})

	// 2. Check Fonts
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.FormatInfo("Checking fonts..."))

	for _, s := range fonts.DefaultStrategies(appConfig.FontFamily) {
		checkStep(out, "Font: "+s.Name(), func() error {
			face, err := s.Face(appConfig.FontSize)
			if err != nil {
				return err
			}
			return face.Close()
		})
	}

	// 3. Check Environment
	fmt.Fprintln(out)
	checkStep(out, "Clipboard", func() error {
		if clipboard.Unsupported {
			return fmt.Errorf("not supported (output paths will not be copied)")
		}
		return nil
	})
}

// checkStep runs a check function and prints the result
func checkStep(out io.Writer, name string, check func() error) {
	fmt.Fprintln(out, ui.FormatCheck(name, check()))
}
