package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that documents parse cleanly and are structurally valid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				result, err := a.documents.Validate(cmd.Context(), path)
				switch {
				case err == nil:
					fmt.Fprintf(out, "✅ %s\n", path)
				case errors.Is(err, entities.ErrInvalidDocument) && result != nil:
					failed++
					fmt.Fprintf(out, "❌ %s\n", path)
					printDiagnostics(out, result)
				default:
					return err
				}
			}
			if failed > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d document(s) invalid\n", failed, len(args))
				return errFailed
			}
			return nil
		},
	}
}

func newFormatCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Rewrite a document in canonical tag order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return a.documents.Format(cmd.Context(), args[0], w)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

// withOutput runs write against stdout or, when path is set, a file that is removed on failure
func withOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	//nolint:gosec // G304: output path is chosen by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	werr := write(f)
	if cerr := f.Close(); cerr != nil && werr == nil {
		werr = fmt.Errorf("failed to write %s: %w", path, cerr)
	}
	if werr != nil {
		_ = os.Remove(path)
	}
	return werr
}
