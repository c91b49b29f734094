// Package seed emits the starter ingredient spreadsheet that ships with the
// converter. The emitted sheet uses the exact column layout the convert
// pipeline reads back, so the round trip `larder sample` then
// `larder convert` produces a working document out of the box.
package seed

import (
	"sort"
	"strconv"

	"github.com/google/uuid"

	"larder/internal/catalog"
	"larder/internal/sheet"
)

// Review columns appended after the conversion columns. The converter
// ignores them; they exist so the numbers can be checked against published
// weight charts before the sheet is converted for production use.
var reviewColumns = []string{"Verified", "Notes"}

// CategoryCount is one line of the per-category breakdown.
type CategoryCount struct {
	Category    string
	Conversions int
}

// Header returns the column header of the emitted spreadsheet.
func Header() []string {
	return append(catalog.Columns(), reviewColumns...)
}

// Records returns the starter database as spreadsheet records matching
// Header. Every distinct ingredient name receives one freshly generated
// UUID, shared across all of its conversion rows so the converter groups
// them into a single ingredient.
func Records() [][]string {
	ids := make(map[string]string, len(entries))
	records := make([][]string, 0, len(entries))
	for _, e := range entries {
		id, ok := ids[e.name]
		if !ok {
			id = uuid.NewString()
			ids[e.name] = id
		}
		records = append(records, []string{
			id, e.name, e.category, "",
			formatAmount(e.fromAmount), e.fromUnit, e.fromSingular, e.fromPlural,
			formatAmount(e.toAmount), e.toUnit, "", "",
			"", "",
		})
	}
	return records
}

// Write stores the starter spreadsheet at path, as CSV or XLSX depending on
// the extension.
func Write(path string) error {
	return sheet.Write(path, Header(), Records())
}

// Breakdown summarizes the starter database per category, most conversions
// first, ties broken by category name.
func Breakdown() []CategoryCount {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.category]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for category, n := range counts {
		out = append(out, CategoryCount{Category: category, Conversions: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Conversions != out[j].Conversions {
			return out[i].Conversions > out[j].Conversions
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Conversions returns the total number of rows in the starter database.
func Conversions() int {
	return len(entries)
}

// Ingredients returns the number of distinct ingredients in the starter
// database.
func Ingredients() int {
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.name] = struct{}{}
	}
	return len(names)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
