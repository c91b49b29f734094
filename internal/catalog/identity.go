package catalog

import "strings"

type identityKind uint8

const (
	identityByName identityKind = iota
	identityByID
)

// Identity is the grouping key that decides which rows belong to the same
// logical ingredient: the row's ID when one is provided, its name otherwise.
// The two variants never collide, so an ingredient identified as ByID("X")
// stays distinct from one identified as ByName("X"). Identity is comparable
// and is used directly as a map key.
type Identity struct {
	kind  identityKind
	value string
}

// ByID identifies an ingredient by its stable spreadsheet ID.
func ByID(id string) Identity {
	return Identity{kind: identityByID, value: id}
}

// ByName identifies an ingredient by name, the fallback for rows without an
// ID cell.
func ByName(name string) Identity {
	return Identity{kind: identityByName, value: name}
}

// ResolveIdentity computes the identity of a row from its raw ID and Name
// cells. A non-blank ID wins; otherwise the trimmed name is used.
func ResolveIdentity(rawID, rawName string) Identity {
	if id := strings.TrimSpace(rawID); id != "" {
		return ByID(id)
	}
	return ByName(strings.TrimSpace(rawName))
}

// String renders the identity for logs and error messages.
func (i Identity) String() string {
	if i.kind == identityByID {
		return "id:" + i.value
	}
	return "name:" + i.value
}
