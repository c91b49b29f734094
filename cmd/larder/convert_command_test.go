package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"larder/internal/catalog"
)

var testHeader = strings.Join(catalog.Columns(), ",")

func TestConvertCommandWritesVersionedDocument(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	input := writeTestCSV(t, dir,
		testHeader,
		"A1,Flour,Baking,,1,cup,,,120,gram,,",
		"A1,Flour,Baking,,1,tablespoon,,,8,gram,,",
		",Eggs,,,1,,egg,eggs,50,gram,,",
	)
	output := filepath.Join(dir, "ingredients.json")

	out, err := runCLI(t, "convert", input, output)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Converted 2 ingredients")
	requireContains(t, out, output)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc catalog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if doc.Version != 1 {
		t.Fatalf("first conversion should stamp version 1, got %d", doc.Version)
	}
	if len(doc.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(doc.Ingredients))
	}
	if doc.Ingredients[0].Name != "Flour" || len(doc.Ingredients[0].Conversions) != 2 {
		t.Fatalf("unexpected first ingredient: %+v", doc.Ingredients[0])
	}
	if doc.Ingredients[1].Conversions[0].FromUnit != catalog.Count("egg", "eggs") {
		t.Fatalf("count unit lost in pipeline: %+v", doc.Ingredients[1].Conversions[0])
	}

	// Second run against the same artifact bumps the version.
	if _, err := runCLI(t, "convert", input, output); err != nil {
		t.Fatalf("second convert: %v", err)
	}
	data, err = os.ReadFile(output)
	if err != nil {
		t.Fatalf("re-read output: %v", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse second output: %v", err)
	}
	if doc.Version != 2 {
		t.Fatalf("second conversion should stamp version 2, got %d", doc.Version)
	}
}

func TestConvertCommandDefaultOutputPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	input := writeTestCSV(t, dir,
		testHeader,
		",Flour,,,1,cup,,,120,gram,,",
	)

	if _, err := runCLI(t, "convert", input); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ingredients.json")); err != nil {
		t.Fatalf("expected default output next to the working directory: %v", err)
	}
}

func TestConvertCommandLegacySchema(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	input := writeTestCSV(t, dir,
		testHeader,
		"A1,Flour,,,1,cup,,,120,gram,,",
	)
	output := filepath.Join(dir, "legacy.json")

	if _, err := runCLI(t, "convert", "--legacy", input, output); err != nil {
		t.Fatalf("convert --legacy: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), `"version"`) || strings.Contains(string(data), `"id"`) {
		t.Fatalf("legacy output must omit version and ids:\n%s", data)
	}
}

func TestConvertCommandRejectsBadAmount(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	input := writeTestCSV(t, dir,
		testHeader,
		",Flour,,,one,cup,,,120,gram,,",
	)
	output := filepath.Join(dir, "out.json")

	_, err := runCLI(t, "convert", input, output)
	if err == nil {
		t.Fatal("expected conversion to fail on a non-numeric amount")
	}
	requireContains(t, err.Error(), "From Amount")

	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Fatal("failed conversions must not write a partial document")
	}
}
