package retrieval

import (
	"testing"

	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/store"
)

func newTestSearcher(products []store.Product) *Searcher {
	ix := catalog.NewIndex()
	ix.Rebuild(products)
	return NewSearcher(ix)
}

func chairCatalog() []store.Product {
	return []store.Product{
		{SKU: "CH-100", Title: "Artiss Office Chair Ergonomic Computer Desk Chair Black", Category: "Chairs", Tags: []string{"Color_Black"}, Price: 189, InventoryQuantity: 8, Available: true},
		{SKU: "CH-101", Title: "Gaming Chair Racing Style White", Category: "Chairs", Tags: []string{"Color_White"}, Price: 249, InventoryQuantity: 3, Available: true},
		{SKU: "CH-102", Title: "Vintage Dining Chair Oak", Category: "Chairs", Description: "solid oak wood frame", Tags: []string{"Material_Wood"}, Price: 129, InventoryQuantity: 5, Available: true},
		{SKU: "DK-200", Title: "Corner Office Desk Walnut", Category: "Desks", Price: 320, InventoryQuantity: 2, Available: true},
		{SKU: "CH-103", Title: "Executive Office Chair Leather", Category: "Chairs", Tags: []string{"Color_Black", "Material_Leather"}, Price: 399, InventoryQuantity: 0, Available: false},
	}
}

func TestSearchCatalogNotReady(t *testing.T) {
	s := NewSearcher(catalog.NewIndex())
	res := s.Search("office chair", Filters{}, 5)
	if res.Tag != CatalogNotReady {
		t.Fatalf("expected CatalogNotReady, got tag %d", res.Tag)
	}
}

func TestSearchEmptyCatalogReturnsNoResults(t *testing.T) {
	s := newTestSearcher(nil)
	res := s.Search("anything at all", Filters{}, 5)
	if res.Tag != Found {
		t.Fatalf("expected Found, got tag %d", res.Tag)
	}
	if len(res.Products) != 0 {
		t.Fatalf("expected zero products, got %d", len(res.Products))
	}
}

func TestSearchOfficeChairRanksArtissTop5(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("office chair", Filters{}, 5)
	if res.Tag != Found {
		t.Fatalf("expected Found, got tag %d", res.Tag)
	}

	for _, p := range res.Products {
		if p.SKU == "CH-100" {
			return
		}
	}
	t.Fatalf("Artiss office chair missing from top-5: %+v", res.Products)
}

func TestSearchTitleVerbatimReturnsProduct(t *testing.T) {
	products := chairCatalog()
	s := newTestSearcher(products)

	for _, p := range products {
		if !p.InStock() {
			continue
		}
		res := s.Search(p.Title, Filters{}, 5)
		if res.Tag != Found {
			t.Fatalf("%s: expected Found, got tag %d", p.SKU, res.Tag)
		}
		hit := false
		for _, got := range res.Products {
			if got.SKU == p.SKU {
				hit = true
				break
			}
		}
		if !hit {
			t.Errorf("searching own title %q did not return %s", p.Title, p.SKU)
		}
	}
}

func TestSearchExcludesOutOfStockByDefault(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("office chair", Filters{}, 10)
	for _, p := range res.Products {
		if p.SKU == "CH-103" {
			t.Fatal("out-of-stock product returned without IncludeOutOfStock")
		}
	}

	res = s.Search("office chair", Filters{IncludeOutOfStock: true}, 10)
	hit := false
	for _, p := range res.Products {
		if p.SKU == "CH-103" {
			hit = true
		}
	}
	if !hit {
		t.Fatal("IncludeOutOfStock did not surface the out-of-stock product")
	}
}

func TestSearchNoColorMatchOffersAlternatives(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("office chair", Filters{Color: "red"}, 5)
	if res.Tag != NoAttributeMatch {
		t.Fatalf("expected NoAttributeMatch, got tag %d", res.Tag)
	}
	if res.Attribute != "color" || res.Requested != "red" {
		t.Fatalf("unexpected attribute report: %s=%s", res.Attribute, res.Requested)
	}
	if len(res.AvailableValues) == 0 {
		t.Fatal("expected the colors that do exist to be listed")
	}
	for _, v := range res.AvailableValues {
		if v == "red" {
			t.Fatal("requested color must not appear in available values")
		}
	}
}

func TestSearchPriceCapFromQueryText(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("chair under $200", Filters{}, 10)
	if res.Tag != Found {
		t.Fatalf("expected Found, got tag %d", res.Tag)
	}
	if len(res.Products) == 0 {
		t.Fatal("expected results under the price cap")
	}
	for _, p := range res.Products {
		if p.Price > 200 {
			t.Errorf("%s priced %.2f exceeds the detected cap", p.SKU, p.Price)
		}
	}
}

func TestSearchCategoryBrowseWithEmptyQuery(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("", Filters{Category: "chairs"}, 10)
	if res.Tag != Found {
		t.Fatalf("expected Found, got tag %d", res.Tag)
	}
	if len(res.Products) == 0 {
		t.Fatal("category browse returned nothing")
	}
	for _, p := range res.Products {
		if p.Category != "Chairs" {
			t.Errorf("browse leaked product from category %s", p.Category)
		}
	}
}

func TestSearchDeterministicTieBreakByPrice(t *testing.T) {
	products := []store.Product{
		{SKU: "B", Title: "Bar Stool", Category: "Stools", Price: 80, InventoryQuantity: 1, Available: true},
		{SKU: "A", Title: "Bar Stool", Category: "Stools", Price: 60, InventoryQuantity: 1, Available: true},
	}
	s := newTestSearcher(products)

	for i := 0; i < 5; i++ {
		res := s.Search("bar stool", Filters{}, 5)
		if len(res.Products) != 2 {
			t.Fatalf("expected 2 results, got %d", len(res.Products))
		}
		if res.Products[0].SKU != "A" {
			t.Fatalf("equal-score results must order by ascending price, got %s first", res.Products[0].SKU)
		}
	}
}

func TestSearchExcludeNegatedMaterial(t *testing.T) {
	s := newTestSearcher(chairCatalog())
	res := s.Search("chair", Filters{Excludes: map[string]string{"material": "wood"}}, 10)
	if res.Tag != Found {
		t.Fatalf("expected Found, got tag %d", res.Tag)
	}
	for _, p := range res.Products {
		if p.SKU == "CH-102" {
			t.Fatal("negated material still present in results")
		}
	}
}
