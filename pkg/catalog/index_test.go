package catalog

import (
	"testing"

	"ai-shopassist-be/pkg/store"
)

func testProducts() []store.Product {
	return []store.Product{
		{SKU: "CH-001", Title: "Artiss Office Chair Ergonomic Computer Desk Chair Black", Category: "Chairs", Tags: []string{"Color_Black"}, Price: 189, InventoryQuantity: 4, Available: true},
		{SKU: "DK-001", Title: "Standing Desk Frame Dual Motor", Category: "Desks", Description: "Electric height adjustable desk frame", Price: 420, InventoryQuantity: 2, Available: true},
		{SKU: "SF-001", Title: "Lounge Sofa 3 Seater Fabric Grey", Category: "Sofas", Tags: []string{"Color_Grey"}, Price: 899, InventoryQuantity: 0, Available: false},
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Office Chair", []string{"office", "chair"}},
		{"desk-frame, black!", []string{"desk", "frame", "black"}},
		{"the and for", nil},
		{"a an to", nil},
	}

	for _, c := range cases {
		got := Tokenize(c.in)
		if len(got) != len(c.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestIndexNotReadyBeforeRebuild(t *testing.T) {
	ix := NewIndex()
	if ix.Ready() {
		t.Fatal("expected index to be not ready before first rebuild")
	}
	if got := ix.CandidateIDs([]string{"chair"}, ModeUnion); got != nil {
		t.Fatalf("expected nil candidates before rebuild, got %v", got)
	}
}

func TestRebuildEmptySetIsValid(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(nil)

	if !ix.Ready() {
		t.Fatal("index should be ready after rebuilding with an empty set")
	}
	if ix.Size() != 0 {
		t.Fatalf("expected size 0, got %d", ix.Size())
	}
	if got := ix.Candidates(Tokenize("office chair")); len(got) != 0 {
		t.Fatalf("expected zero candidates, got %d", len(got))
	}
}

func TestCandidateIDsModes(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testProducts())

	union := ix.CandidateIDs([]string{"desk", "sofa"}, ModeUnion)
	if len(union) != 3 {
		// "desk" appears in CH-001's title and DK-001, "sofa" in SF-001
		t.Fatalf("union: expected 3 ids, got %v", union)
	}

	intersect := ix.CandidateIDs([]string{"office", "chair"}, ModeIntersect)
	if len(intersect) != 1 || intersect[0] != "CH-001" {
		t.Fatalf("intersect: expected [CH-001], got %v", intersect)
	}
}

func TestCandidatesTitleOutranksDescription(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild([]store.Product{
		{SKU: "A", Title: "Walnut Bookshelf", Category: "Shelves", Price: 120},
		{SKU: "B", Title: "Desk Lamp", Description: "pairs well with a bookshelf", Category: "Lighting", Price: 40},
	})

	cands := ix.Candidates(Tokenize("bookshelf"))
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}

	var scoreA, scoreB float64
	for _, c := range cands {
		switch c.Product.SKU {
		case "A":
			scoreA = c.Score
		case "B":
			scoreB = c.Score
		}
	}
	if scoreA <= scoreB {
		t.Fatalf("title match should outscore description match: A=%f B=%f", scoreA, scoreB)
	}
}

func TestRebuildSwapReplacesWholeIndex(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testProducts())
	ix.Rebuild([]store.Product{
		{SKU: "TB-001", Title: "Dining Table Oak", Category: "Tables", Price: 350, InventoryQuantity: 1, Available: true},
	})

	if ix.Size() != 1 {
		t.Fatalf("expected size 1 after swap, got %d", ix.Size())
	}
	if _, ok := ix.Product("CH-001"); ok {
		t.Fatal("old generation product should be gone after rebuild")
	}
	if _, ok := ix.Product("TB-001"); !ok {
		t.Fatal("new generation product should resolve")
	}
}

func TestEveryIndexedIDResolves(t *testing.T) {
	ix := NewIndex()
	ix.Rebuild(testProducts())

	for _, id := range ix.CandidateIDs([]string{"chair", "desk", "sofa"}, ModeUnion) {
		if _, ok := ix.Product(id); !ok {
			t.Errorf("indexed id %s does not resolve to a product", id)
		}
	}
}
