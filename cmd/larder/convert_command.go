package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"larder/internal/catalog"
	"larder/internal/sheet"
)

const lockRetryInterval = 250 * time.Millisecond

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert an ingredient spreadsheet (CSV or XLSX) to JSON",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			input := args[0]
			output := defaultOutputPath(input)
			if len(args) == 2 {
				output = args[1]
			}

			if !cmd.Flags().Changed("legacy") {
				legacy = cfg.Convert.Legacy
			}

			return runConvert(cmd, ctx, input, output, legacy)
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy", false, "Write the ID-less legacy schema without a version field")

	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, input, output string, legacy bool) error {
	cfg := ctx.configValue()
	logger := ctx.loggerValue()

	// One conversion per output artifact at a time. The lock lives next to
	// the artifact so concurrent runs against different outputs stay
	// independent.
	lock := flock.New(output + ".lock")
	lockCtx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Convert.LockTimeoutSeconds)*time.Second)
	defer cancel()
	locked, err := lock.TryLockContext(lockCtx, lockRetryInterval)
	if err != nil && lockCtx.Err() == nil {
		return fmt.Errorf("lock output: %w", err)
	}
	if !locked {
		return fmt.Errorf("another conversion is writing %s; retry once it finishes", output)
	}
	defer lock.Unlock()

	current := catalog.CurrentVersion(output)
	next := current + 1
	logger.Debug("resolved document version", "output", output, "current", current, "next", next)

	rows, err := sheet.Open(input)
	if err != nil {
		return err
	}

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(input), err)
	}

	doc := catalog.Document{Version: next, Ingredients: ingredients}
	if legacy {
		doc = doc.Legacy()
	}

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	logger.Info("converted spreadsheet",
		"input", input,
		"output", output,
		"ingredients", len(ingredients),
		"version", next,
		"legacy", legacy)

	printConvertSummary(cmd, current, next, len(ingredients), output)
	return nil
}

func printConvertSummary(cmd *cobra.Command, current, next, ingredients int, output string) {
	out := cmd.OutOrStdout()
	if writerIsTerminal(out) {
		fmt.Fprintln(out, renderTable(
			[]string{"Field", "Value"},
			[][]string{
				{"Version", fmt.Sprintf("%d -> %d", current, next)},
				{"Ingredients", strconv.Itoa(ingredients)},
				{"Output", output},
			},
			[]columnAlignment{alignLeft, alignLeft},
		))
		return
	}
	fmt.Fprintf(out, "Version: %d -> %d\n", current, next)
	fmt.Fprintf(out, "Converted %d ingredients\n", ingredients)
	fmt.Fprintf(out, "Output written to: %s\n", output)
}

// defaultOutputPath mirrors the documented CLI contract: the input basename
// with a .json extension, written into the working directory.
func defaultOutputPath(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
