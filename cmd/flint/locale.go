package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/eventloop"
	"flint/internal/pipe"
	"flint/internal/translate"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Manage translation tables for diagnostic messages",
}

var localeCheckCmd = &cobra.Command{
	Use:   "check <dir|file.toml|->",
	Short: "Check translation coverage against the catalog",
	Long:  `Check parses locale tables and reports which catalog message templates they miss and which entries match no template anymore. "-" reads one table from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLocaleCheck,
}

var localeCompileCmd = &cobra.Command{
	Use:   "compile <dir>",
	Short: "Compile locale tables into a msgpack bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocaleCompile,
}

var localeInfoCmd = &cobra.Command{
	Use:   "bundle-info <bundle.mpk>",
	Short: "Summarize a compiled locale bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocaleInfo,
}

func init() {
	localeCheckCmd.Flags().Bool("show-missing", false, "list each missing template and stale entry")
	localeCompileCmd.Flags().StringP("output", "o", "locales.mpk", "bundle output path")
	localeCmd.AddCommand(localeCheckCmd)
	localeCmd.AddCommand(localeCompileCmd)
	localeCmd.AddCommand(localeInfoCmd)
}

func runLocaleCheck(cmd *cobra.Command, args []string) error {
	showMissing, err := cmd.Flags().GetBool("show-missing")
	if err != nil {
		return fmt.Errorf("failed to get show-missing flag: %w", err)
	}

	path := args[0]
	var tables []*translate.Table
	switch {
	case path == "-":
		data, err := readAllStdin()
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		t, err := translate.ParseTable("<stdin>", data)
		if err != nil {
			return err
		}
		tables = []*translate.Table{t}
	default:
		st, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat path: %w", err)
		}
		if st.IsDir() {
			catalog, err := translate.LoadDir(cmd.Context(), path)
			if err != nil {
				return err
			}
			tables = catalog.Tables()
		} else {
			t, err := translate.LoadTable(path)
			if err != nil {
				return err
			}
			tables = []*translate.Table{t}
		}
	}

	if len(tables) == 0 {
		fmt.Fprintln(os.Stdout, "no locale tables found")
		return nil
	}

	total := len(diag.AllTemplates())
	incomplete := false
	for _, t := range tables {
		missing := t.Missing()
		stale := t.Stale()
		fmt.Fprintf(os.Stdout, "%s: %d/%d translated", t.Locale, total-len(missing), total)
		if len(stale) > 0 {
			fmt.Fprintf(os.Stdout, ", %d stale", len(stale))
		}
		fmt.Fprintln(os.Stdout)
		if showMissing {
			for _, tmpl := range missing {
				fmt.Fprintf(os.Stdout, "  missing: %s\n", tmpl)
			}
			for _, key := range stale {
				fmt.Fprintf(os.Stdout, "  stale: %s\n", key)
			}
		}
		if len(missing) > 0 {
			incomplete = true
		}
	}

	if incomplete {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errFindings
	}
	return nil
}

func runLocaleCompile(cmd *cobra.Command, args []string) error {
	out, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	catalog, err := translate.LoadDir(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("no locale tables found in %s", args[0])
	}
	if err := translate.WriteBundle(out, catalog); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	messages := 0
	for _, t := range catalog.Tables() {
		messages += len(t.Messages)
	}
	fmt.Fprintf(os.Stdout, "wrote %d locales (%d messages) to %s\n", catalog.Len(), messages, out)
	return nil
}

func runLocaleInfo(cmd *cobra.Command, args []string) error {
	catalog, err := translate.ReadBundle(args[0])
	if err != nil {
		return err
	}

	total := len(diag.AllTemplates())
	fmt.Fprintf(os.Stdout, "%s: %d locales\n", args[0], catalog.Len())
	for _, t := range catalog.Tables() {
		translated := total - len(t.Missing())
		fmt.Fprintf(os.Stdout, "  %s: %d messages, %d/%d templates covered\n", t.Locale, len(t.Messages), translated, total)
	}
	return nil
}

// stdinDelegate collects everything the loop reads from stdin.
type stdinDelegate struct {
	stream *pipe.Handle
	data   []byte
}

func (d *stdinDelegate) ReadableStream() eventloop.Stream {
	return d.stream
}

func (d *stdinDelegate) Append(chunk []byte) {
	d.data = append(d.data, chunk...)
}

// readAllStdin pumps stdin through the event loop until EOF. Non-blocking
// mode is best effort; when the descriptor cannot be switched the loop
// runs with blocking reads instead.
func readAllStdin() ([]byte, error) {
	h := pipe.FromFile(os.Stdin)
	if err := h.SetNonBlocking(true); err == nil {
		defer func() { _ = h.SetNonBlocking(false) }()
	}
	d := &stdinDelegate{stream: h}
	if err := eventloop.New(d).Run(); err != nil {
		return nil, err
	}
	return d.data, nil
}
