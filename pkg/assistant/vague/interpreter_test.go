package vague

import (
	"testing"

	"ai-shopassist-be/pkg/assistant/taxonomy"
)

func newTestInterpreter() *Interpreter {
	return NewInterpreter(taxonomy.NewMatcher(), 0)
}

func TestAnalyzeSymptomBackPain(t *testing.T) {
	a := newTestInterpreter().Analyze("my back is killing me")

	if !a.IsVague || a.Category != CategorySymptomProblem {
		t.Fatalf("got vague=%v category=%s", a.IsVague, a.Category)
	}
	if a.SuggestedQuery != "ergonomic office chair lumbar support" {
		t.Fatalf("unexpected query %q", a.SuggestedQuery)
	}
	if a.SuggestedFilters["category"] != "chairs" {
		t.Fatalf("unexpected filters %v", a.SuggestedFilters)
	}
	if a.SuggestedTool != ToolSearchProducts {
		t.Fatalf("unexpected tool %q", a.SuggestedTool)
	}
	if a.Confidence < 0.5 || a.Confidence > 0.95 {
		t.Fatalf("confidence out of range: %v", a.Confidence)
	}
}

func TestAnalyzeTaxonomyPhraseWinsOutright(t *testing.T) {
	a := newTestInterpreter().Analyze("I just got a puppy")

	if !a.IsVague || a.Category != CategoryLifestyleContext {
		t.Fatalf("got vague=%v category=%s", a.IsVague, a.Category)
	}
	if a.Confidence != 0.85 {
		t.Fatalf("taxonomy hits carry fixed confidence, got %v", a.Confidence)
	}
	if len(a.SuggestedCategories) == 0 || a.SuggestedCategories[0] != "Dog Supplies" {
		t.Fatalf("unexpected categories %v", a.SuggestedCategories)
	}
}

func TestAnalyzeSlangSetsStyleFilters(t *testing.T) {
	a := newTestInterpreter().Analyze("looking for something boujee")

	if a.Category != CategorySubjectiveSlang {
		t.Fatalf("got category %s", a.Category)
	}
	if a.SuggestedFilters["material"] != "leather" {
		t.Fatalf("unexpected filters %v", a.SuggestedFilters)
	}
}

func TestAnalyzeNegationProducesExcludes(t *testing.T) {
	a := newTestInterpreter().Analyze("a desk but not wood")

	if a.Category != CategoryNegationComplexity {
		t.Fatalf("got category %s", a.Category)
	}
	if a.Excludes["material"] != "wood" {
		t.Fatalf("expected wood excluded, got %v", a.Excludes)
	}
	if a.SuggestedFilters["material"] != "metal" {
		t.Fatalf("unexpected filters %v", a.SuggestedFilters)
	}
	if a.SuggestedQuery != "metal glass plastic" {
		t.Fatalf("unexpected query %q", a.SuggestedQuery)
	}
}

func TestAnalyzeFamilySizeExtraction(t *testing.T) {
	a := newTestInterpreter().Analyze("something for a family of 8")

	if a.Category != CategorySpatialConstraint {
		t.Fatalf("got category %s", a.Category)
	}
	if a.SuggestedQuery != "large dining table 8 seater" {
		t.Fatalf("unexpected query %q", a.SuggestedQuery)
	}
	if a.SuggestedFilters["size"] != "large" {
		t.Fatalf("unexpected filters %v", a.SuggestedFilters)
	}
}

func TestAnalyzeBundleRequest(t *testing.T) {
	a := newTestInterpreter().Analyze("desk and chair under $500")

	if !a.IsBundle || a.SuggestedTool != ToolBuildBundle {
		t.Fatalf("got bundle=%v tool=%q", a.IsBundle, a.SuggestedTool)
	}
	if a.SuggestedQuery != "desk and chair under $500" {
		t.Fatalf("bundle must keep the raw request, got %q", a.SuggestedQuery)
	}
}

func TestAnalyzeReturnSentimentRoutesToPolicy(t *testing.T) {
	a := newTestInterpreter().Analyze("I want to return this chair")

	if a.Category != CategorySentimentAction {
		t.Fatalf("got category %s", a.Category)
	}
	if a.SuggestedTool != ToolPolicyInfo || a.ToolArgs["policy_type"] != "returns" {
		t.Fatalf("got tool=%q args=%v", a.SuggestedTool, a.ToolArgs)
	}
	if !a.ClarificationNeeded {
		t.Fatal("returns flow should ask before acting")
	}
}

func TestAnalyzeClearProductQuery(t *testing.T) {
	a := newTestInterpreter().Analyze("office chair")

	if a.IsVague || a.Category != CategoryClear {
		t.Fatalf("got vague=%v category=%s", a.IsVague, a.Category)
	}
	if a.Confidence != 1.0 {
		t.Fatalf("clear queries are fully confident, got %v", a.Confidence)
	}
	if a.SuggestedQuery != "office chair" {
		t.Fatalf("unexpected query %q", a.SuggestedQuery)
	}
}

func TestAnalyzeUnknownQueryAsksForClarification(t *testing.T) {
	a := newTestInterpreter().Analyze("hmm")

	if !a.IsVague || !a.ClarificationNeeded {
		t.Fatalf("got vague=%v clarification=%v", a.IsVague, a.ClarificationNeeded)
	}
	if a.Confidence != 0.3 {
		t.Fatalf("unexpected confidence %v", a.Confidence)
	}
	if a.SuggestedTool != ToolNone {
		t.Fatalf("unexpected tool %q", a.SuggestedTool)
	}
}

func TestAnalyzeHighThresholdFallsBackToClearWord(t *testing.T) {
	in := NewInterpreter(taxonomy.NewMatcher(), 0.99)
	a := in.Analyze("boujee chair")

	if a.IsVague || a.Category != CategoryClear {
		t.Fatalf("below-threshold match with a product word must stay literal, got %+v", a)
	}
}
