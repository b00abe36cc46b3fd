package intent

import "testing"

func TestDetectRoutesCommonMessages(t *testing.T) {
	d := NewDetector()

	cases := []struct {
		message string
		want    Type
	}{
		{"hi", Greeting},
		{"heyyy", Greeting},
		{"good morning", Greeting},
		{"show me office chairs", ProductSearch},
		{"do you have any standing desks", ProductSearch},
		{"what are the dimensions", ProductSpecQA},
		{"tell me more about that one", ProductSpecQA},
		{"add this to my cart", CartAdd},
		{"remove it from the cart", CartRemove},
		{"what's in my cart", CartShow},
		{"can i return this if it doesn't fit", ReturnPolicy},
		{"how long does delivery take", ShippingInfo},
		{"do you accept afterpay", PaymentOptions},
		{"how long am i covered", WarrantyInfo},
		{"how do i contact customer service", ContactInfo},
		{"what time do you open", StoreHours},
		{"where is your warehouse", StoreLocation},
		{"what can you help me with", GeneralHelp},
		{"banana", OutOfScope},
	}

	for _, c := range cases {
		if got := d.Detect(c.message); got != c.want {
			t.Errorf("Detect(%q) = %s, want %s", c.message, got, c.want)
		}
	}
}

func TestDetectComparisonBeatsContextReference(t *testing.T) {
	d := NewDetector()

	cases := []string{
		"compare the first one and the second one",
		"what is the difference between them",
		"which one is cheaper",
		"CH-100 vs CH-101",
	}
	for _, message := range cases {
		if got := d.Detect(message); got != Comparison {
			t.Errorf("Detect(%q) = %s, want %s", message, got, Comparison)
		}
	}
}

func TestDetectMaterialVariants(t *testing.T) {
	d := NewDetector()

	if got := d.Detect("i want something not wooden"); got != ProductSearch {
		t.Fatalf("got %s", got)
	}
	if got := d.Detect("something metallic would be nice"); got != ProductSearch {
		t.Fatalf("got %s", got)
	}
}

func TestIsRefinement(t *testing.T) {
	d := NewDetector()

	refinements := []string{"in black", "under $300", "wooden instead", "cheaper please", "something smaller"}
	for _, m := range refinements {
		if !d.IsRefinement(m) {
			t.Errorf("IsRefinement(%q) = false, want true", m)
		}
	}

	fresh := []string{
		"show me desks",          // new product word
		"hello there my friend",  // no attribute cue
		"i am looking for a completely different black product now", // too long to be a follow-up
	}
	for _, m := range fresh {
		if d.IsRefinement(m) {
			t.Errorf("IsRefinement(%q) = true, want false", m)
		}
	}
}

func TestDetectContextReferenceBeatsSearchPatterns(t *testing.T) {
	d := NewDetector()

	// "black" alone would match product search; the reference to a shown
	// product must win.
	if got := d.Detect("is that one black"); got != ProductSpecQA {
		t.Fatalf("got %s", got)
	}
}

func TestExtractEntitiesProductSearch(t *testing.T) {
	d := NewDetector()

	e := d.ExtractEntities("show me a modern black leather chair for the office under $300", ProductSearch)

	want := map[string]string{
		"category":  "chair",
		"color":     "black",
		"material":  "leather",
		"style":     "modern",
		"room_type": "office",
		"price_max": "300",
	}
	for k, v := range want {
		if e[k] != v {
			t.Errorf("entity %s = %q, want %q", k, e[k], v)
		}
	}
}

func TestExtractEntitiesSpecQAReferences(t *testing.T) {
	d := NewDetector()

	e := d.ExtractEntities("how wide is the second one", ProductSpecQA)
	if e["product_reference"] != "2" || e["reference_type"] != "index" {
		t.Fatalf("got %v", e)
	}

	e = d.ExtractEntities("what is CH-100 made of", ProductSpecQA)
	if e["product_reference"] != "CH-100" || e["reference_type"] != "sku" {
		t.Fatalf("got %v", e)
	}
}

func TestExtractEntitiesCartAddQuantity(t *testing.T) {
	d := NewDetector()

	e := d.ExtractEntities("i want 3 of the first one", CartAdd)
	if e["quantity"] != "3" {
		t.Fatalf("got quantity %q", e["quantity"])
	}
	if e["product_reference"] != "3" && e["product_reference"] != "1" {
		t.Fatalf("got reference %q", e["product_reference"])
	}

	e = d.ExtractEntities("add that to cart", CartAdd)
	if e["quantity"] != "1" {
		t.Fatalf("default quantity should be 1, got %q", e["quantity"])
	}
}

func TestMergeClarificationResponse(t *testing.T) {
	d := NewDetector()

	cases := []struct {
		partial map[string]string
		reply   string
		want    string
	}{
		{map[string]string{"category": "chair"}, "for office", "chair for office"},
		{map[string]string{"category": "desk"}, "wooden", "desk wood"},
		{map[string]string{"category": "sofa"}, "red", "sofa red"},
		{map[string]string{"category": "bed"}, "for kids", "bed for kids"},
		{map[string]string{"category": "table"}, "under 500", "table under $500"},
		{map[string]string{"category": "locker"}, "office", "locker for office"},
		{map[string]string{"category": "shelf"}, "bedroom", "shelf for bedroom"},
		{map[string]string{"category": "stool"}, "metal", "stool metal"},
		{map[string]string{"category": "chair"}, "living room", "chair for living_room"},
		{map[string]string{"category": "cabinet"}, "for storage", "cabinet for storage"},
		{map[string]string{"category": "locker"}, "for gym", "locker for gym"},
	}

	for _, c := range cases {
		merged := d.MergeClarificationResponse(c.partial, c.reply, "category_only")
		if merged["query"] != c.want {
			t.Errorf("merge %v + %q = %q, want %q", c.partial, c.reply, merged["query"], c.want)
		}
		if merged["category"] != c.partial["category"] {
			t.Errorf("category must survive the merge, got %v", merged)
		}
	}
}

func TestMergeClarificationWithoutCategory(t *testing.T) {
	d := NewDetector()

	merged := d.MergeClarificationResponse(nil, "black", "attribute_only")
	if merged["query"] != "black" {
		t.Fatalf("got %q", merged["query"])
	}
	if merged["color"] != "black" {
		t.Fatalf("reply should be slotted as color, got %v", merged)
	}
}
