package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"larder/internal/seed"
)

func newSampleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sample [path]",
		Short: "Write the starter ingredient spreadsheet",
		Long: "Write the curated starter spreadsheet of essential cooking ingredients.\n" +
			"The file extension picks the format (.csv or .xlsx). Review the numbers,\n" +
			"then feed the sheet to `larder convert`.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			path := cfg.Sample.Path
			if len(args) == 1 {
				path = args[0]
			}

			if err := seed.Write(path); err != nil {
				return err
			}

			ctx.loggerValue().Info("wrote starter spreadsheet",
				"path", path,
				"ingredients", seed.Ingredients(),
				"conversions", seed.Conversions())

			printSampleSummary(cmd, path)
			return nil
		},
	}
}

func printSampleSummary(cmd *cobra.Command, path string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", path)
	fmt.Fprintf(out, "%d ingredients, %d conversions\n", seed.Ingredients(), seed.Conversions())

	breakdown := seed.Breakdown()
	if writerIsTerminal(out) {
		rows := make([][]string, 0, len(breakdown))
		for _, line := range breakdown {
			rows = append(rows, []string{line.Category, strconv.Itoa(line.Conversions)})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Category", "Conversions"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
		return
	}
	for _, line := range breakdown {
		fmt.Fprintf(out, "  - %s: %d conversions\n", line.Category, line.Conversions)
	}
}
