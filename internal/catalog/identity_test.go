package catalog_test

import (
	"testing"

	"larder/internal/catalog"
)

func TestResolveIdentity(t *testing.T) {
	if got := catalog.ResolveIdentity("A1", "Flour"); got != catalog.ByID("A1") {
		t.Fatalf("expected ID identity, got %v", got)
	}
	if got := catalog.ResolveIdentity("  A1  ", "Flour"); got != catalog.ByID("A1") {
		t.Fatalf("expected trimmed ID identity, got %v", got)
	}
	if got := catalog.ResolveIdentity("", " Flour "); got != catalog.ByName("Flour") {
		t.Fatalf("expected name fallback, got %v", got)
	}
	if got := catalog.ResolveIdentity("   ", "Flour"); got != catalog.ByName("Flour") {
		t.Fatalf("expected blank ID to fall back to name, got %v", got)
	}
}

func TestIdentityVariantsNeverCollide(t *testing.T) {
	if catalog.ByID("Flour") == catalog.ByName("Flour") {
		t.Fatal("ID and name identities with the same value must stay distinct")
	}
}
