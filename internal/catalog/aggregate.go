package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"larder/internal/sheet"
)

// Fatal input errors. A row that trips one of these aborts the whole run;
// the caller must fix the source spreadsheet and re-run.
var (
	ErrMissingName   = errors.New("missing ingredient name")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Conversion documents one equivalence between a from-quantity and a
// to-quantity for an ingredient.
type Conversion struct {
	FromAmount float64 `json:"fromAmount"`
	FromUnit   Unit    `json:"fromUnit"`
	ToAmount   float64 `json:"toAmount"`
	ToUnit     Unit    `json:"toUnit"`
}

// Ingredient is one entry of the output document. ID, Category, and Brand
// are omitted from the wire format when the source cells were blank.
type Ingredient struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Category    string       `json:"category,omitempty"`
	Brand       string       `json:"brand,omitempty"`
	Conversions []Conversion `json:"conversions"`
}

// Aggregate groups spreadsheet rows into ingredients, in order of first
// appearance. Every row contributes one conversion to the ingredient its
// identity resolves to. The descriptive fields of an ingredient (id, name,
// category, brand) are fixed by the first row seen for its identity; later
// rows sharing the identity add their conversion only, even when their
// descriptive cells differ. The spreadsheet owner is expected to keep those
// cells consistent per ID, and the first-row values win when they are not.
func Aggregate(rows []sheet.Row) ([]Ingredient, error) {
	index := make(map[Identity]int, len(rows))
	ingredients := make([]Ingredient, 0, len(rows))

	for _, row := range rows {
		name := row.Field(ColName)
		if name == "" {
			return nil, fmt.Errorf("row %d: %w", row.Number, ErrMissingName)
		}
		identity := ResolveIdentity(row.Field(ColID), name)

		conversion, err := conversionFromRow(row)
		if err != nil {
			return nil, err
		}

		slot, seen := index[identity]
		if !seen {
			slot = len(ingredients)
			index[identity] = slot
			ingredients = append(ingredients, Ingredient{
				ID:       row.Field(ColID),
				Name:     name,
				Category: row.Field(ColCategory),
				Brand:    row.Field(ColBrand),
			})
		}
		ingredients[slot].Conversions = append(ingredients[slot].Conversions, conversion)
	}

	return ingredients, nil
}

func conversionFromRow(row sheet.Row) (Conversion, error) {
	fromAmount, err := parseAmount(row, ColFromAmount)
	if err != nil {
		return Conversion{}, err
	}
	toAmount, err := parseAmount(row, ColToAmount)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		FromAmount: fromAmount,
		FromUnit:   Normalize(row.Field(ColFromUnit), row.Field(ColFromSingular), row.Field(ColFromPlural)),
		ToAmount:   toAmount,
		ToUnit:     Normalize(row.Field(ColToUnit), row.Field(ColToSingular), row.Field(ColToPlural)),
	}, nil
}

func parseAmount(row sheet.Row, column string) (float64, error) {
	raw := row.Field(column)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s %q: %w", row.Number, column, raw, ErrInvalidAmount)
	}
	return value, nil
}
