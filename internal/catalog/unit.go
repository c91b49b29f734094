package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unit is either a simple lowercase unit name ("gram", "cup") or an
// irregular count noun with distinct singular and plural forms ("egg",
// "eggs"). The zero value is a simple blank unit.
type Unit struct {
	Name     string
	Singular string
	Plural   string
}

// Simple returns a plain named unit.
func Simple(name string) Unit {
	return Unit{Name: name}
}

// Count returns a countable unit with the given singular and plural forms.
func Count(singular, plural string) Unit {
	return Unit{Singular: singular, Plural: plural}
}

// Normalize converts the raw unit cells of one row into a Unit. The unit is
// countable only when both the singular and plural cells are non-blank;
// otherwise the plain unit name is trimmed and lowercased, with a blank cell
// yielding a blank simple unit.
func Normalize(rawUnit, rawSingular, rawPlural string) Unit {
	singular := strings.TrimSpace(rawSingular)
	plural := strings.TrimSpace(rawPlural)
	if singular != "" && plural != "" {
		return Count(singular, plural)
	}
	return Simple(strings.ToLower(strings.TrimSpace(rawUnit)))
}

// IsCount reports whether the unit is an irregular count noun.
func (u Unit) IsCount() bool {
	return u.Singular != "" && u.Plural != ""
}

// String renders the unit for logs and error messages.
func (u Unit) String() string {
	if u.IsCount() {
		return u.Singular + "/" + u.Plural
	}
	return u.Name
}

type countForms struct {
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

type countUnit struct {
	Count countForms `json:"count"`
}

// MarshalJSON writes a simple unit as a bare string and a count unit as
// {"count": {"singular": ..., "plural": ...}}.
func (u Unit) MarshalJSON() ([]byte, error) {
	if u.IsCount() {
		return json.Marshal(countUnit{Count: countForms{Singular: u.Singular, Plural: u.Plural}})
	}
	return json.Marshal(u.Name)
}

// UnmarshalJSON accepts both wire shapes produced by MarshalJSON.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*u = Simple(name)
		return nil
	}
	var count countUnit
	if err := json.Unmarshal(data, &count); err != nil {
		return fmt.Errorf("unit: expected string or count object: %w", err)
	}
	*u = Count(count.Count.Singular, count.Count.Plural)
	return nil
}
