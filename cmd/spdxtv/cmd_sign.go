package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "sign <file>",
		Short: "Write an armored detached OpenPGP signature for a valid document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sigPath, err := a.documents.Sign(cmd.Context(), args[0], output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Signed %s\n   Signature: %s\n", args[0], sigPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "signature path (default: <file>.asc)")
	return cmd
}
