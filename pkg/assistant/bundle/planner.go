// PURPOSE: Budget-constrained product selection across bundle item templates

package bundle

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ai-shopassist-be/pkg/retrieval"
	"ai-shopassist-be/pkg/store"
)

const candidateLimit = 10

// PlannedItem is one selected product line of a plan.
type PlannedItem struct {
	ItemType  string
	Product   store.Product
	Quantity  int
	UnitPrice float64
	LineTotal float64
}

// Plan is the planner's result. UnmetItemTypes non-empty means the plan
// is partially or fully infeasible; it is never an error.
type Plan struct {
	Items            []PlannedItem
	RequestedItems   []ItemTemplate
	UnmetItemTypes   []string
	Budget           float64
	TotalCost        float64
	MinTotalEstimate float64
	BudgetShortfall  float64
	RemainingBudget  float64
	Feasible         bool
	UsedFallback     bool
}

// Planner selects one product per bundle item under a total budget.
type Planner struct {
	searcher *retrieval.Searcher
}

func NewPlanner(searcher *retrieval.Searcher) *Planner {
	return &Planner{searcher: searcher}
}

// Plan runs the allocation. Candidate searches run concurrently; selection
// follows template declaration order so identical catalog and request
// always produce the same plan.
func (p *Planner) Plan(ctx context.Context, req Request) Plan {
	plan := Plan{
		RequestedItems: req.Items,
		Budget:         req.Budget,
		Feasible:       true,
	}
	if len(req.Items) == 0 {
		return plan
	}

	totalQty := 0
	for _, it := range req.Items {
		totalQty += it.Quantity
	}
	perUnitBudget := 0.0
	if req.Budget > 0 && totalQty > 0 {
		perUnitBudget = req.Budget / float64(totalQty)
	}

	candidates := make([][]store.Product, len(req.Items))
	fallbacks := make([]bool, len(req.Items))

	var wg sync.WaitGroup
	for i := range req.Items {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			candidates[i], fallbacks[i] = p.findCandidates(req, req.Items[i], perUnitBudget)
		}(i)
	}
	wg.Wait()

	for _, fb := range fallbacks {
		if fb {
			plan.UsedFallback = true
		}
	}
	for i, it := range req.Items {
		if len(candidates[i]) > 0 {
			plan.MinTotalEstimate += candidates[i][0].Price * float64(it.Quantity)
		}
	}

	chosen := make([]int, len(req.Items))
	for i := range chosen {
		chosen[i] = -1
	}

	// Required items in declaration order, cheapest candidate that keeps
	// the running total within budget.
	running := 0.0
	selectPass := func(required bool) {
		for i, it := range req.Items {
			if it.Required != required || chosen[i] != -1 {
				continue
			}
			if len(candidates[i]) == 0 {
				plan.UnmetItemTypes = append(plan.UnmetItemTypes, it.ItemType)
				continue
			}
			line := candidates[i][0].Price * float64(it.Quantity)
			if req.Budget > 0 && running+line > req.Budget {
				plan.UnmetItemTypes = append(plan.UnmetItemTypes, it.ItemType)
				continue
			}
			chosen[i] = 0
			running += line
		}
	}
	selectPass(true)
	selectPass(false)

	// Spend leftover budget on upgrades, biggest affordable step first.
	if req.Budget > 0 {
		for {
			bestIdx := -1
			bestDelta := 0.0
			for i, it := range req.Items {
				ci := chosen[i]
				if ci < 0 || ci+1 >= len(candidates[i]) {
					continue
				}
				delta := (candidates[i][ci+1].Price - candidates[i][ci].Price) * float64(it.Quantity)
				if running+delta > req.Budget {
					continue
				}
				if bestIdx == -1 || delta > bestDelta {
					bestIdx = i
					bestDelta = delta
				}
			}
			if bestIdx == -1 {
				break
			}
			chosen[bestIdx]++
			running += bestDelta
		}
	}

	for i, it := range req.Items {
		if chosen[i] < 0 {
			continue
		}
		product := candidates[i][chosen[i]]
		line := product.Price * float64(it.Quantity)
		plan.Items = append(plan.Items, PlannedItem{
			ItemType:  it.ItemType,
			Product:   product,
			Quantity:  it.Quantity,
			UnitPrice: product.Price,
			LineTotal: line,
		})
		plan.TotalCost += line
	}

	if req.Budget > 0 {
		plan.RemainingBudget = req.Budget - plan.TotalCost
		if plan.TotalCost > req.Budget {
			plan.Feasible = false
			plan.BudgetShortfall = plan.TotalCost - req.Budget
		}
	}
	if len(plan.UnmetItemTypes) > 0 {
		plan.Feasible = false
	}
	return plan
}

// findCandidates tries the template's search terms in order and returns
// the first non-empty result set sorted by ascending price. When the
// per-unit price cap empties every term, the search retries uncapped.
func (p *Planner) findCandidates(req Request, tpl ItemTemplate, perUnitBudget float64) ([]store.Product, bool) {
	baseFilters := retrieval.Filters{
		Color:      req.Color,
		Material:   req.Material,
		RoomType:   req.RoomType,
		Categories: req.AllowedCategories,
	}

	search := func(filters retrieval.Filters) []store.Product {
		for _, term := range tpl.SearchTerms {
			query := term
			if req.RoomType != "" {
				query = req.RoomType + " " + query
			}
			if req.Descriptor != "" && (tpl.ItemType == "table" || tpl.ItemType == "desk") {
				query = req.Descriptor + " " + tpl.ItemType
			}
			res := p.searcher.Search(query, filters, candidateLimit)
			if res.Tag == retrieval.Found && len(res.Products) > 0 {
				return res.Products
			}
		}
		return nil
	}

	filters := baseFilters
	if perUnitBudget > 0 {
		filters.PriceMax = perUnitBudget
	}
	results := search(filters)

	fallback := false
	if len(results) == 0 && perUnitBudget > 0 {
		fallback = true
		results = search(baseFilters)
	}

	sorted := append([]store.Product(nil), results...)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Price != sorted[b].Price {
			return sorted[a].Price < sorted[b].Price
		}
		return strings.Compare(sorted[a].SKU, sorted[b].SKU) < 0
	})
	return sorted, fallback && len(sorted) > 0
}
