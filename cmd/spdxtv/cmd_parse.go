package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a document and print a summary with every diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspect, err := a.documents.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), inspect.Result.Document, inspect.Licenses)
			printDiagnostics(cmd.OutOrStdout(), inspect.Result)
			return nil
		},
	}
}

func printSummary(w io.Writer, doc *entities.Document, licenses []entities.License) {
	if doc.Version != nil {
		fmt.Fprintf(w, "SPDX version: %s\n", doc.Version)
	}
	fmt.Fprintf(w, "Document:     %s\n", doc.Name)
	fmt.Fprintf(w, "Namespace:    %s\n", doc.Namespace)
	for _, c := range doc.CreationInfo.Creators {
		fmt.Fprintf(w, "Creator:      %s\n", c)
	}
	if pkg := doc.Package; pkg != nil {
		fmt.Fprintf(w, "Package:      %s (%d files)\n", pkg.Name, len(pkg.Files))
		if pkg.VerificationCode != nil {
			fmt.Fprintf(w, "Verification: %s\n", pkg.VerificationCode)
		}
	}
	if len(doc.Snippets) > 0 {
		fmt.Fprintf(w, "Snippets:     %d\n", len(doc.Snippets))
	}
	if len(licenses) > 0 {
		fmt.Fprintln(w, "Licenses:")
		for _, l := range licenses {
			fmt.Fprintf(w, "  - %s\n", l.Identifier())
		}
	}
}

func printDiagnostics(w io.Writer, result *entities.ParseResult) {
	if !result.Error {
		fmt.Fprintln(w, "✅ No problems found")
		return
	}
	fmt.Fprintf(w, "❌ %d problem(s):\n", len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		fmt.Fprintf(w, "  [%s] %s\n", d.Kind, d.Message)
	}
}
