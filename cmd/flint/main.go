package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flint/internal/diag"
	"flint/internal/translate"
	"flint/internal/version"
)

// errFindings marks runs that completed but reported findings, such as
// missing translations. main maps it to exit code 1; every other error
// exits 2.
var errFindings = errors.New("findings reported")

var rootCmd = &cobra.Command{
	Use:   "flint",
	Short: "Diagnostic catalog and rendering toolkit for JavaScript analysis",
	Long:  `Flint carries the diagnostic catalog of a JavaScript analyzer: stable codes, message templates, locale tables, and the formatters that render findings`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("locale", "", "render messages in this locale (BCP 47 or POSIX form)")
	rootCmd.PersistentFlags().String("locale-dir", "", "directory with locale *.toml tables")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}

// resolveTranslator loads the locale tables named by the persistent flags
// and picks the table for the requested locale. A missing or unmatched
// locale degrades to built-in messages rather than failing.
func resolveTranslator(cmd *cobra.Command) (diag.Translator, error) {
	locale, err := cmd.Root().PersistentFlags().GetString("locale")
	if err != nil {
		return nil, fmt.Errorf("failed to get locale flag: %w", err)
	}
	dir, err := cmd.Root().PersistentFlags().GetString("locale-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get locale-dir flag: %w", err)
	}
	if locale == "" || dir == "" {
		return nil, nil
	}

	catalog, err := translate.LoadDir(cmd.Context(), dir)
	if err != nil {
		return nil, err
	}
	table := catalog.Find(locale)
	if table == nil {
		fmt.Fprintf(os.Stderr, "flint: no table for locale %q, using built-in messages\n", locale)
		return nil, nil
	}
	return table, nil
}
