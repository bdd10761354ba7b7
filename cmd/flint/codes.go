package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/ui"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List the diagnostic catalog",
	Long:  `List every diagnostic the analyzer can emit: stable code, severity, and message templates`,
	Args:  cobra.NoArgs,
	RunE:  runCodes,
}

var codesShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one diagnostic in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodesShow,
}

func init() {
	codesCmd.Flags().String("format", "text", "output format (text|json)")
	codesCmd.Flags().Bool("interactive", false, "browse the catalog in an interactive table")
	codesCmd.AddCommand(codesShowCmd)
}

func runCodes(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}

	entries := diagfmt.Entries()

	if interactive {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		program := tea.NewProgram(ui.NewCatalogBrowser(entries), tea.WithOutput(os.Stdout))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("catalog browser failed: %w", err)
		}
		return nil
	}

	switch format {
	case "text":
		return diagfmt.CatalogText(os.Stdout, entries)
	case "json":
		return diagfmt.CatalogJSON(os.Stdout, entries)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runCodesShow(cmd *cobra.Command, args []string) error {
	code := normalizeCodeArg(args[0])
	d, ok := diag.ByCode(code)
	if !ok {
		return fmt.Errorf("unknown diagnostic code %q", args[0])
	}
	printVariant(os.Stdout, d)
	return nil
}

// normalizeCodeArg accepts "E034", "e034", and bare numbers like "34".
func normalizeCodeArg(arg string) diag.Code {
	if n, err := strconv.Atoi(arg); err == nil {
		return diag.Code(fmt.Sprintf("E%03d", n))
	}
	return diag.Code(strings.ToUpper(arg))
}

func printVariant(w io.Writer, d diag.Diag) {
	t := reflect.TypeOf(d)
	fmt.Fprintf(w, "%s %s\n", d.Code(), t.Name())

	var b diag.MessageBuilder
	d.Message(&b)
	for _, p := range b.Parts() {
		fmt.Fprintf(w, "  %s: %s\n", p.Severity, p.Template)
	}

	if t.NumField() > 0 {
		fmt.Fprintln(w, "  evidence:")
		for i := range t.NumField() {
			f := t.Field(i)
			fmt.Fprintf(w, "    %s (%s)\n", f.Name, evidenceKind(f.Type))
		}
	}
}

func evidenceKind(t reflect.Type) string {
	switch t.String() {
	case "source.Span":
		return "span"
	case "source.Ident":
		return "identifier"
	case "diag.StatementKind":
		return "statement kind"
	case "uint8":
		return "character"
	}
	return t.String()
}
