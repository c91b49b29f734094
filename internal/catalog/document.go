package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the complete output artifact. Version is stamped by the
// version resolver and omitted entirely in the legacy schema.
type Document struct {
	Version     int          `json:"version,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Legacy returns the document in the ID-less schema consumed by older app
// builds: no top-level version and no per-ingredient IDs.
func (d Document) Legacy() Document {
	out := Document{Ingredients: make([]Ingredient, len(d.Ingredients))}
	copy(out.Ingredients, d.Ingredients)
	for i := range out.Ingredients {
		out.Ingredients[i].ID = ""
	}
	return out
}

// Encode writes the document as pretty-printed JSON with two-space indent,
// the format the ingredient app loads.
func (d Document) Encode(w io.Writer) error {
	if d.Ingredients == nil {
		d.Ingredients = []Ingredient{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}
