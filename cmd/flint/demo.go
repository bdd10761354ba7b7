package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/diagfmt"
	"flint/internal/source"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render a built-in scenario through the full diagnostic stack",
	Long:  `Demo reports a handful of canned findings against a built-in snippet and renders them in the chosen format, through the same renderer, dedup, and formatting path real findings take`,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	demoCmd.Flags().Bool("with-notes", true, "include diagnostic notes in output")
}

const demoSource = "let abc = 1;\nlet abc = 2;\nabd = abc + \"oops;\n"

func demoFindings() []diag.Diag {
	return []diag.Diag{
		diag.RedeclarationOfVariable{
			Redeclaration:       source.Ident{Start: 17, End: 20},
			OriginalDeclaration: source.Ident{Start: 4, End: 7},
		},
		// the same finding twice; dedup keeps one
		diag.RedeclarationOfVariable{
			Redeclaration:       source.Ident{Start: 17, End: 20},
			OriginalDeclaration: source.Ident{Start: 4, End: 7},
		},
		diag.UseOfUndeclaredVariable{Name: source.Ident{Start: 26, End: 29}},
		diag.UnclosedStringLiteral{StringLiteral: source.Span{Start: 38, End: 44}},
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	tr, err := resolveTranslator(cmd)
	if err != nil {
		return err
	}

	f := source.NewFile("demo.js", []byte(demoSource))
	renderer := &diag.Renderer{Src: f.Content, Tr: tr}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(&diag.BagReporter{R: renderer, Bag: bag})

	for _, d := range demoFindings() {
		reporter.Report(d)
	}
	bag.Sort()

	color, err := useColor(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:     color,
			Context:   1,
			ShowNotes: withNotes,
		}
		return diagfmt.Pretty(os.Stdout, bag, f, opts)
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			Max:              maxDiagnostics,
			IncludeNotes:     withNotes,
		}
		return diagfmt.JSON(os.Stdout, bag, f, jsonOpts)
	case "short":
		output := diag.FormatGolden(bag.Items(), f, withNotes)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
