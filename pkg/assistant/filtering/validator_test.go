package filtering

import (
	"math"
	"strings"
	"testing"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValidateClearProductQueryPasses(t *testing.T) {
	v := NewValidator(0)
	res := v.ValidateFilterCount(nil, "mma gloves")

	if !res.Valid {
		t.Fatalf("clear product query rejected: %+v", res)
	}
	// "mma" is a category keyword and "gloves" a product type keyword.
	if res.Weight < 2.0 {
		t.Fatalf("expected weight >= 2.0, got %v", res.Weight)
	}
}

func TestValidateVagueQueryNeedsMoreFilters(t *testing.T) {
	v := NewValidator(0)
	res := v.ValidateFilterCount(nil, "something nice")

	if res.Valid {
		t.Fatalf("vague query passed with weight %v", res.Weight)
	}
	if res.Message == "" || !strings.Contains(res.Message, "anything specific") {
		t.Fatalf("expected a clarification suggestion, got %q", res.Message)
	}
}

func TestValidateEntitiesContributeWeight(t *testing.T) {
	v := NewValidator(0)
	res := v.ValidateFilterCount(map[string]string{"color": "black", "room_type": "office"}, "")

	if !res.Valid {
		t.Fatalf("color+room should pass: %+v", res)
	}
	if !closeTo(res.Weight, 1.8) {
		t.Fatalf("expected weight 1.8, got %v", res.Weight)
	}
}

func TestValidateSubjectiveTermsAreCapped(t *testing.T) {
	v := NewValidator(0)
	res := v.ValidateFilterCount(nil, "cozy comfortable sturdy elegant stylish")

	// Five subjective terms, capped at three.
	if !closeTo(res.Weight, 0.9) {
		t.Fatalf("expected capped weight 0.9, got %v", res.Weight)
	}
	if res.Valid {
		t.Fatal("subjective terms alone must not pass validation")
	}
}

func TestValidateConfigurableMinimum(t *testing.T) {
	v := NewValidator(2.5)
	res := v.ValidateFilterCount(nil, "office chair")
	if res.Valid {
		t.Fatalf("weight %v should not pass a 2.5 minimum", res.Weight)
	}
}

func TestDetectContradictionsPriceConflict(t *testing.T) {
	v := NewValidator(0)
	c, ok := v.DetectContradictions(nil, "a cheap luxury sofa")
	if !ok {
		t.Fatal("expected cheap/luxury contradiction")
	}
	if c.Term1 != "cheap" || c.Term2 != "luxury" {
		t.Fatalf("unexpected pair %s/%s", c.Term1, c.Term2)
	}
	if !strings.Contains(c.Message, "Affordable") {
		t.Fatalf("expected price clarification options, got %q", c.Message)
	}
}

func TestDetectContradictionsSpansQueryAndEntities(t *testing.T) {
	v := NewValidator(0)
	_, ok := v.DetectContradictions(map[string]string{"style": "vintage"}, "a modern desk")
	if !ok {
		t.Fatal("expected modern/vintage contradiction across query and entities")
	}
}

func TestDetectContradictionsNoneOnCleanQuery(t *testing.T) {
	v := NewValidator(0)
	if _, ok := v.DetectContradictions(nil, "black office chair"); ok {
		t.Fatal("clean query flagged as contradictory")
	}
}

func TestIsBypassPhrase(t *testing.T) {
	v := NewValidator(0)

	cases := []struct {
		message string
		want    bool
	}{
		{"just show me whatever you have", true},
		{"surprise me", true},
		{"ok", true},
		{"Sure", true},
		{"a black desk", false},
	}
	for _, c := range cases {
		if got := v.IsBypassPhrase(c.message); got != c.want {
			t.Errorf("IsBypassPhrase(%q) = %v, want %v", c.message, got, c.want)
		}
	}
}

func TestFilterSummary(t *testing.T) {
	v := NewValidator(0)

	got := v.FilterSummary(map[string]string{
		"category":  "chairs",
		"color":     "black",
		"room_type": "office",
		"price_max": "300",
	})
	want := "chairs, black color, for office, under $300"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if v.FilterSummary(nil) != "no specific filters" {
		t.Fatal("empty entities should say no specific filters")
	}
}
