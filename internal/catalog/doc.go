// Package catalog builds the versioned ingredient document consumed by the
// IngredientConverter app. It groups spreadsheet rows into ingredients,
// normalizes unit spellings (including irregular count nouns such as
// egg/eggs), and resolves the next document version from the previously
// written artifact.
package catalog
