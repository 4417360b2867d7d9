package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

func newChecksumCmd(a *app) *cobra.Command {
	var code bool
	cmd := &cobra.Command{
		Use:   "checksum <file>...",
		Short: "Print SPDX SHA1 file checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			files := make([]*entities.File, 0, len(args))
			for _, path := range args {
				sum, err := a.checksums.Calculate(cmd.Context(), path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(out, "%s  %s\n", sum, path)
				files = append(files, &entities.File{Name: path, Checksum: sum})
			}
			if code {
				vc, err := entities.ComputeVerificationCode(files, nil)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "PackageVerificationCode: %s\n", vc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&code, "code", false, "also print the package verification code of all files")
	return cmd
}
