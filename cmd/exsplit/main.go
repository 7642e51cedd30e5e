// Package main provides the CLI entry point for exsplit-go.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exsplit-go/internal/logging"
	"github.com/ukaji3/exsplit-go/pkg/exsplit"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/models"
	"github.com/ukaji3/exsplit-go/pkg/exsplit/output"
)

type cliOptions struct {
	outDir     string
	layoutPath string
	only       []string
	stdout     string
	logLevel   string
	logFormat  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "exsplit [input.xlsx]",
		Short: "Split a position workbook into CSV files",
		Long: `exsplit-go reads the NetPosition, NerveFInal and CombineNerve sheets
of a workbook and writes netposition.csv, sampleClientmaster.csv and MTD.csv.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], o)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.layoutPath, "layout", "", "YAML layout file overriding sheet names and regions")
	rootCmd.PersistentFlags().StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&o.logFormat, "log-format", "text", "Log format: text, json")
	rootCmd.Flags().StringVarP(&o.outDir, "out-dir", "o", ".", "Directory for the CSV outputs")
	rootCmd.Flags().StringSliceVar(&o.only, "only", nil, "Write only these artifacts (netPosition, sampleClientmaster, mtd)")
	rootCmd.Flags().StringVar(&o.stdout, "stdout", "", "Print one artifact to stdout instead of writing files")

	checkCmd := &cobra.Command{
		Use:          "check [input.xlsx]",
		Short:        "Check that a workbook has the required sheets",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd, args[0], o)
		},
	}
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, o *cliOptions) error {
	logger := logging.Setup(cmd.ErrOrStderr(), o.logLevel, o.logFormat)

	for _, name := range append(slices.Clone(o.only), o.stdout) {
		if name != "" && !slices.Contains(models.ArtifactNames, name) {
			return fmt.Errorf("unknown artifact: %s (must be one of %v)", name, models.ArtifactNames)
		}
	}

	layout, err := loadLayout(o.layoutPath)
	if err != nil {
		return err
	}

	if info, err := os.Stat(inputPath); err == nil {
		logger.Info("processing workbook", "path", inputPath, "size", exsplit.FormatFileSize(info.Size()))
	}

	opts := exsplit.DefaultOptions()
	opts.Layout = layout
	opts.Logger = logger
	opts.Progress = func(stage string, percent int) {
		logger.Info("progress", "stage", stage, "percent", percent)
	}

	result, err := exsplit.ExtractFile(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if o.stdout != "" {
		a, _ := result.Artifact(o.stdout)
		_, err := io.WriteString(cmd.OutOrStdout(), a.Content)
		return err
	}

	artifacts := result.Artifacts()
	if len(o.only) > 0 {
		artifacts = slices.DeleteFunc(artifacts, func(a models.Artifact) bool {
			return !slices.Contains(o.only, a.Name)
		})
	}

	paths, err := output.WriteArtifacts(o.outDir, artifacts)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func check(cmd *cobra.Command, inputPath string, o *cliOptions) error {
	logging.Setup(cmd.ErrOrStderr(), o.logLevel, o.logFormat)

	layout, err := loadLayout(o.layoutPath)
	if err != nil {
		return err
	}

	wb, err := exsplit.Open(inputPath)
	if err != nil {
		return err
	}
	if err := exsplit.Validate(wb, layout.RequiredSheets()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: all required sheets present (%d sheets)\n", wb.Name, len(wb.SheetNames))
	return nil
}

func loadLayout(path string) (exsplit.Layout, error) {
	if path == "" {
		return exsplit.DefaultLayout(), nil
	}
	return exsplit.LoadLayout(path)
}
