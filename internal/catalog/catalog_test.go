package catalog

import (
	"errors"
	"testing"

	"GridPulse/internal/domain/models"
)

func TestAllSortedByName(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	defs := c.All()
	if len(defs) != 5 {
		t.Fatalf("expected 5 markets, got %d", len(defs))
	}
	// Case-insensitive name order, not code order.
	want := []string{"CAISO", "ERCOT", "NEISO", "MISO", "PJM"}
	for i, code := range want {
		if defs[i].Code != code {
			t.Fatalf("position %d: expected %s, got %s", i, code, defs[i].Code)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	a := c.All()
	a[0].Code = "MUTATED"
	b := c.All()
	if b[0].Code == "MUTATED" {
		t.Fatalf("All must return a fresh copy")
	}
}

func TestLookupNormalizesInput(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	def, err := c.Lookup("  caiso ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if def.Code != "CAISO" {
		t.Fatalf("expected CAISO, got %s", def.Code)
	}
	if def.Location == nil {
		t.Fatalf("expected resolved location")
	}
}

func TestLookupUnknownCode(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	_, err = c.Lookup("XYZ")
	var nf *models.MarketNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected MarketNotFoundError, got %v", err)
	}
	if nf.Code != "XYZ" {
		t.Fatalf("expected original input in error, got %s", nf.Code)
	}
	if err.Error() != "unknown market code: XYZ" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestOrdinalsFollowDeclarationOrder(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	want := map[string]int{"CAISO": 0, "ERCOT": 1, "MISO": 2, "NEISO": 3, "PJM": 4}
	for code, ordinal := range want {
		def, err := c.Lookup(code)
		if err != nil {
			t.Fatalf("lookup %s: %v", code, err)
		}
		if def.Ordinal != ordinal {
			t.Fatalf("%s: expected ordinal %d, got %d", code, ordinal, def.Ordinal)
		}
	}
}
