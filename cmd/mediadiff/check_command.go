package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mediadiff/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ffprobe and the scan root are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cfg, rootDir)

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rootDir, "root-dir", "r", "", "Directory to verify")
	return cmd
}
