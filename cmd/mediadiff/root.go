package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mediadiff/internal/config"
	"mediadiff/internal/faults"
	"mediadiff/internal/report"
	"mediadiff/internal/scan"
	"mediadiff/internal/scanctx"
)

type scanFlags struct {
	rootDir  string
	workers  int
	relative bool
	format   string
	output   string
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags scanFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "mediadiff --root-dir DIR",
		Short: "Print a diffable media report for a directory tree",
		Long: "mediadiff walks a directory, probes every file with ffprobe and prints\n" +
			"duration, bit rate and best video/audio stream per file. Reports of two\n" +
			"copies of the same collection can be compared with diff.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg, err := applyScanFlags(cmd, cfg, flags)
			if err != nil {
				return err
			}
			return runScan(cmd, ctx, runCfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.Flags().StringVarP(&flags.rootDir, "root-dir", "r", "", "Directory to scan")
	rootCmd.Flags().IntVar(&flags.workers, "workers", 0, "Concurrent probes (default: config or CPU count)")
	rootCmd.Flags().BoolVar(&flags.relative, "relative", false, "Print paths relative to the root directory")
	rootCmd.Flags().StringVar(&flags.format, "format", "text", "Output format: text or table")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write the report to a file instead of stdout")
	_ = rootCmd.MarkFlagRequired("root-dir")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// applyScanFlags layers command-line overrides on a copy of the loaded config.
func applyScanFlags(cmd *cobra.Command, cfg *config.Config, flags scanFlags) (*config.Config, error) {
	runCfg := *cfg
	if cmd.Flags().Changed("workers") {
		runCfg.Scan.Workers = flags.workers
	}
	if flags.relative {
		runCfg.Report.RelativePaths = true
	}
	switch strings.ToLower(strings.TrimSpace(flags.format)) {
	case "", "text", "table":
	default:
		return nil, faults.Wrap(faults.ErrConfiguration, "cli", "format", fmt.Sprintf("unsupported value %q (want text or table)", flags.format), nil)
	}
	if err := runCfg.Validate(); err != nil {
		return nil, err
	}
	return &runCfg, nil
}

func runScan(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, flags scanFlags) error {
	logger, err := ctx.newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	runCtx := scanctx.WithRunID(cmd.Context(), scanctx.NewRunID())
	rep, err := scan.New(cfg, logger).Run(runCtx, flags.rootDir)
	if err != nil {
		return err
	}
	if rep.Empty() {
		return nil
	}

	content := renderReport(rep, flags.format)
	if strings.TrimSpace(flags.output) != "" {
		return writeReportFile(flags.output, content)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
	return err
}

func renderReport(rep report.Report, format string) string {
	if strings.EqualFold(strings.TrimSpace(format), "table") {
		return renderReportTable(rep)
	}
	return rep.String()
}
