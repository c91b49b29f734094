package catalog_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"larder/internal/catalog"
	"larder/internal/sheet"
)

// makeRows builds sheet rows the way the readers do: the full column layout
// as header, records in spreadsheet order, numbering starting at row 2.
func makeRows(records ...[]string) []sheet.Row {
	header := catalog.Columns()
	rows := make([]sheet.Row, 0, len(records))
	for i, record := range records {
		rows = append(rows, sheet.NewRow(i+2, header, record))
	}
	return rows
}

func TestAggregateFirstRowWinsDescriptiveFields(t *testing.T) {
	rows := makeRows(
		[]string{"A1", "Flour", "Baking", "", "1", "cup", "", "", "120", "gram", "", ""},
		[]string{"A1", "Flour(renamed)", "Pantry", "Acme", "1", "tablespoon", "", "", "8", "gram", "", ""},
	)

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(ingredients) != 1 {
		t.Fatalf("expected 1 ingredient, got %d", len(ingredients))
	}

	flour := ingredients[0]
	if flour.Name != "Flour" {
		t.Fatalf("expected first row's name to win, got %q", flour.Name)
	}
	if flour.Category != "Baking" || flour.Brand != "" {
		t.Fatalf("later rows must not touch descriptive fields: %+v", flour)
	}
	if len(flour.Conversions) != 2 {
		t.Fatalf("expected 2 conversions, got %d", len(flour.Conversions))
	}
	if flour.Conversions[0].FromUnit != catalog.Simple("cup") {
		t.Fatalf("unexpected first conversion unit: %v", flour.Conversions[0].FromUnit)
	}
	if flour.Conversions[1].FromUnit != catalog.Simple("tablespoon") {
		t.Fatalf("conversions must keep row order: %v", flour.Conversions[1].FromUnit)
	}
}

func TestAggregateCountUnits(t *testing.T) {
	rows := makeRows(
		[]string{"", "Eggs", "", "", "1", "", "egg", "eggs", "50", "gram", "", ""},
	)

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	conv := ingredients[0].Conversions[0]
	if conv.FromUnit != catalog.Count("egg", "eggs") {
		t.Fatalf("expected count from-unit, got %v", conv.FromUnit)
	}
	if conv.ToUnit != catalog.Simple("gram") {
		t.Fatalf("expected simple to-unit, got %v", conv.ToUnit)
	}
	if conv.FromAmount != 1 || conv.ToAmount != 50 {
		t.Fatalf("unexpected amounts: %+v", conv)
	}
}

func TestAggregateOrderFollowsFirstAppearance(t *testing.T) {
	rows := makeRows(
		[]string{"", "Zucchini", "", "", "1", "cup", "", "", "124", "gram", "", ""},
		[]string{"", "Apple", "", "", "1", "cup", "", "", "125", "gram", "", ""},
		[]string{"", "Zucchini", "", "", "1", "tablespoon", "", "", "8", "gram", "", ""},
	)

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(ingredients))
	}
	if ingredients[0].Name != "Zucchini" || ingredients[1].Name != "Apple" {
		t.Fatalf("order must follow first appearance, got %q then %q", ingredients[0].Name, ingredients[1].Name)
	}
	if len(ingredients[0].Conversions) != 2 {
		t.Fatalf("expected interleaved rows to merge, got %d conversions", len(ingredients[0].Conversions))
	}
}

func TestAggregateIDAndNameIdentitiesStayDistinct(t *testing.T) {
	rows := makeRows(
		[]string{"Flour", "Flour", "", "", "1", "cup", "", "", "120", "gram", "", ""},
		[]string{"", "Flour", "", "", "1", "tablespoon", "", "", "8", "gram", "", ""},
	)

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(ingredients) != 2 {
		t.Fatalf("an ID key and a name key with the same value must not merge, got %d ingredients", len(ingredients))
	}
}

func TestAggregateMissingNameIsFatal(t *testing.T) {
	rows := makeRows(
		[]string{"", "Flour", "", "", "1", "cup", "", "", "120", "gram", "", ""},
		[]string{"", "   ", "", "", "1", "cup", "", "", "200", "gram", "", ""},
	)

	_, err := catalog.Aggregate(rows)
	if !errors.Is(err, catalog.ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("error should name the offending row: %v", err)
	}
}

func TestAggregateBadAmountIsFatal(t *testing.T) {
	rows := makeRows(
		[]string{"", "Flour", "", "", "one", "cup", "", "", "120", "gram", "", ""},
	)

	_, err := catalog.Aggregate(rows)
	if !errors.Is(err, catalog.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if !strings.Contains(err.Error(), "From Amount") {
		t.Fatalf("error should name the offending column: %v", err)
	}
}

func TestAggregateBlankOptionalFieldsAreOmitted(t *testing.T) {
	rows := makeRows(
		[]string{"", "Flour", "", "", "1", "cup", "", "", "120", "gram", "", ""},
	)

	ingredients, err := catalog.Aggregate(rows)
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	data, err := json.Marshal(ingredients[0])
	if err != nil {
		t.Fatalf("marshal ingredient: %v", err)
	}
	for _, field := range []string{`"id"`, `"category"`, `"brand"`} {
		if strings.Contains(string(data), field) {
			t.Fatalf("blank %s must be omitted, got %s", field, data)
		}
	}
}
