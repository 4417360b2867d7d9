package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	orchestrators "github.com/ochairo/spdxtv/internal/domain-orchestrators"
	"github.com/ochairo/spdxtv/internal/domain/entities"
)

func newVerifyCmd(a *app) *cobra.Command {
	var opts orchestrators.VerifyOptions
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify a document's signature and the files it describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🔍 Verifying %s\n\n", args[0])

			report, err := a.documents.Verify(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if printReport(out, report, opts.Root != "") {
				return nil
			}
			return errFailed
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", "", "directory holding the package files")
	cmd.Flags().StringVar(&opts.Signature, "signature", "", "detached signature (.asc) to check with the configured keyring")
	return cmd
}

// printReport writes the verification outcome and reports whether every check passed
func printReport(w io.Writer, report *entities.VerificationReport, filesChecked bool) bool {
	if report.SignatureChecked {
		fmt.Fprintln(w, "✅ Signature verified")
	}
	fmt.Fprintln(w, "✅ Document is valid")
	if !filesChecked {
		return true
	}

	for _, f := range report.Files {
		if f.OK() {
			continue
		}
		fmt.Fprintf(w, "❌ %s: %v\n", f.Name, f.Err)
	}
	if ok := len(report.Files) - len(report.Failed()); ok > 0 {
		fmt.Fprintf(w, "✅ %d file(s) match\n", ok)
	}
	switch {
	case report.ActualCode == nil:
		fmt.Fprintln(w, "❌ Verification code not computed: files are missing")
	case report.CodeMatches():
		fmt.Fprintf(w, "✅ Verification code %s\n", report.ActualCode.Value)
	default:
		expected := "none"
		if report.ExpectedCode != nil {
			expected = report.ExpectedCode.Value
		}
		fmt.Fprintf(w, "❌ Verification code mismatch: expected %s, got %s\n", expected, report.ActualCode.Value)
	}
	return report.Passed()
}
