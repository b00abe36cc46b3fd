package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/assistant/bundle"
	"ai-shopassist-be/pkg/assistant/filtering"
	"ai-shopassist-be/pkg/assistant/intent"
	"ai-shopassist-be/pkg/assistant/reference"
	"ai-shopassist-be/pkg/assistant/taxonomy"
	"ai-shopassist-be/pkg/assistant/vague"
	"ai-shopassist-be/pkg/events"
	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/retrieval"
	"ai-shopassist-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IAssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
}

// AssistantOptions are the tunables the conversation loop honors.
type AssistantOptions struct {
	MaxShownProducts int
	SearchLimit      int
}

type assistantService struct {
	sessions    contract.SessionRepository
	snapshots   contract.SessionSnapshotRepository // nil when Redis is disabled
	searcher    *retrieval.Searcher
	detector    *intent.Detector
	interpreter *vague.Interpreter
	validator   *filtering.Validator
	resolver    *reference.Resolver
	planner     *bundle.Planner
	matcher     *taxonomy.Matcher
	llm         llm.LLMProvider // nil means template replies only
	publisher   IPublisherService
	logger      logger.ILogger
	opts        AssistantOptions
}

func NewAssistantService(
	sessions contract.SessionRepository,
	snapshots contract.SessionSnapshotRepository,
	searcher *retrieval.Searcher,
	detector *intent.Detector,
	interpreter *vague.Interpreter,
	validator *filtering.Validator,
	resolver *reference.Resolver,
	planner *bundle.Planner,
	matcher *taxonomy.Matcher,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	log logger.ILogger,
	opts AssistantOptions,
) IAssistantService {
	if opts.MaxShownProducts <= 0 {
		opts.MaxShownProducts = 10
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 5
	}
	return &assistantService{
		sessions:    sessions,
		snapshots:   snapshots,
		searcher:    searcher,
		detector:    detector,
		interpreter: interpreter,
		validator:   validator,
		resolver:    resolver,
		planner:     planner,
		matcher:     matcher,
		llm:         llmProvider,
		publisher:   publisher,
		logger:      log,
		opts:        opts,
	}
}

func (s *assistantService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "message is empty")
	}

	session := s.loadSession(ctx, req.SessionId, req.UserId)
	s.sessions.AppendMessage(session.ID, store.RoleUser, message)

	res := s.handleTurn(ctx, session, message)
	res.SessionId = session.ID

	s.sessions.AppendMessage(session.ID, store.RoleAssistant, res.Message)
	s.snapshot(ctx, session.ID)

	if s.publisher != nil {
		event := events.NewConversationTurnEvent(session.ID, res.Intent, len(res.Products))
		if err := s.publisher.PublishEvent(ctx, event); err != nil {
			s.logger.Warn("assistant", "Failed to publish turn event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return res, nil
}

// loadSession prefers the in-memory store, falls back to the snapshot so
// a restart does not drop an active conversation.
func (s *assistantService) loadSession(ctx context.Context, sessionId, userId string) *store.Session {
	if sessionId != "" {
		if session, ok := s.sessions.Get(sessionId); ok {
			return session
		}
		if s.snapshots != nil {
			if restored, err := s.snapshots.Load(ctx, sessionId); err == nil && restored != nil {
				s.sessions.Save(restored)
				return restored
			}
		}
	}
	return s.sessions.GetOrCreate(sessionId, userId)
}

func (s *assistantService) snapshot(ctx context.Context, sessionId string) {
	if s.snapshots == nil {
		return
	}
	session, ok := s.sessions.Get(sessionId)
	if !ok {
		return
	}
	if err := s.snapshots.Save(ctx, session); err != nil {
		s.logger.Warn("assistant", "Session snapshot failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
}

func (s *assistantService) handleTurn(ctx context.Context, session *store.Session, message string) *dto.ChatResponse {
	if session.PendingClarification != nil {
		return s.handleClarificationReply(ctx, session, message)
	}

	// Intent is routed on the raw message; ordinal references are
	// rewritten to product tokens before entity extraction.
	intentType := s.detector.Detect(message)
	resolved, _ := s.resolver.Resolve(session, message)

	if session.LastQuery != "" && s.detector.IsRefinement(message) {
		switch intentType {
		case intent.ProductSearch, intent.GeneralHelp, intent.OutOfScope:
			return s.handleRefinement(ctx, session, resolved)
		}
	}

	entities := s.detector.ExtractEntities(resolved, intentType)

	s.logger.Debug("assistant", "Turn routed", map[string]interface{}{
		"session_id": session.ID,
		"intent":     string(intentType),
	})

	switch intentType {
	case intent.Greeting:
		return &dto.ChatResponse{
			Intent: string(intentType),
			Message: s.phrase(ctx,
				"Hi! I can help you find furniture and gear, compare options, and put together bundles on a budget. What are you looking for?"),
		}
	case intent.ProductSearch:
		return s.handleSearch(ctx, session, resolved, entities)
	case intent.Comparison:
		return s.handleCompare(session, resolved)
	case intent.ProductSpecQA:
		return s.handleSpecQA(session, resolved, entities)
	case intent.CartAdd:
		return s.handleCartAdd(session, resolved, entities)
	case intent.CartRemove:
		return s.handleCartRemove(session, resolved, entities)
	case intent.CartShow:
		return s.handleCartShow(session)
	case intent.ReturnPolicy, intent.ShippingInfo, intent.PaymentOptions,
		intent.WarrantyInfo, intent.ContactInfo, intent.StoreHours, intent.StoreLocation:
		return s.policyReply(ctx, intentType)
	case intent.GeneralHelp:
		return &dto.ChatResponse{
			Intent: string(intentType),
			Message: s.phrase(ctx,
				"I can search the catalog for you, answer questions about specific products, build bundles under a budget, and explain our shipping and return policies. Try something like \"black office chair under $300\"."),
		}
	default:
		return &dto.ChatResponse{
			Intent: string(intent.OutOfScope),
			Message: s.phrase(ctx,
				"I'm only able to help with our products, orders and store policies. Is there something from the catalog I can find for you?"),
		}
	}
}

func (s *assistantService) handleClarificationReply(ctx context.Context, session *store.Session, message string) *dto.ChatResponse {
	pc := session.PendingClarification
	merged := s.detector.MergeClarificationResponse(pc.PartialEntities, message, pc.VagueType)
	s.sessions.ClearPendingClarification(session.ID)
	session.PendingClarification = nil

	return s.search(ctx, session, merged["query"], merged, nil, nil)
}

func (s *assistantService) handleSearch(ctx context.Context, session *store.Session, resolved string, entities map[string]string) *dto.ChatResponse {
	analysis := s.interpreter.Analyze(resolved)

	if analysis.SuggestedTool == vague.ToolPolicyInfo {
		return s.policyReplyByType(ctx, analysis.ToolArgs["policy_type"])
	}
	if analysis.IsBundle || analysis.SuggestedTool == vague.ToolBuildBundle {
		return s.handleBundle(ctx, session, resolved)
	}

	if analysis.ClarificationNeeded {
		s.sessions.SetPendingClarification(session.ID, &store.PendingClarification{
			VagueType:       string(analysis.Category),
			PartialEntities: entities,
			Question:        analysis.ClarificationMessage,
		})
		return &dto.ChatResponse{
			Intent:               string(intent.ProductSearch),
			Message:              analysis.ClarificationMessage,
			ClarificationNeeded:  true,
			ClarificationMessage: analysis.ClarificationMessage,
		}
	}

	query := resolved
	if q := entities["query"]; q != "" {
		query = q
	}
	if analysis.IsVague && analysis.SuggestedQuery != "" {
		query = analysis.SuggestedQuery
		// A negated attribute value must not survive as a positive
		// filter; the rule's replacement takes the slot instead.
		for k, v := range analysis.Excludes {
			if entities[k] == v {
				delete(entities, k)
			}
		}
		for k, v := range analysis.SuggestedFilters {
			if entities[k] == "" {
				entities[k] = v
			}
		}
	}

	if !s.validator.IsBypassPhrase(resolved) {
		if contradiction, found := s.validator.DetectContradictions(entities, resolved); found {
			return &dto.ChatResponse{
				Intent:               string(intent.ProductSearch),
				Message:              contradiction.Message,
				ClarificationNeeded:  true,
				ClarificationMessage: contradiction.Message,
			}
		}

		validation := s.validator.ValidateFilterCount(entities, resolved)
		if !validation.Valid {
			s.sessions.SetPendingClarification(session.ID, &store.PendingClarification{
				VagueType:       "insufficient_filters",
				PartialEntities: entities,
				Question:        validation.Message,
			})
			return &dto.ChatResponse{
				Intent:               string(intent.ProductSearch),
				Message:              validation.Message,
				ClarificationNeeded:  true,
				ClarificationMessage: validation.Message,
			}
		}
	}

	return s.search(ctx, session, query, entities, analysis.SuggestedCategories, analysis.Excludes)
}

func (s *assistantService) search(ctx context.Context, session *store.Session, query string, entities map[string]string, categories []string, excludes map[string]string) *dto.ChatResponse {
	filters := retrieval.Filters{
		Category:   entities["category"],
		Categories: categories,
		Color:      entities["color"],
		Material:   entities["material"],
		Style:      entities["style"],
		RoomType:   entities["room_type"],
		Excludes:   excludes,
	}
	if pm := entities["price_max"]; pm != "" {
		if v, err := strconv.ParseFloat(strings.TrimPrefix(pm, "$"), 64); err == nil {
			filters.PriceMax = v
		}
	}
	filters = retrieval.DetectFilters(query, filters)

	result := s.searcher.Search(query, filters, s.opts.SearchLimit)

	res := &dto.ChatResponse{Intent: string(intent.ProductSearch)}

	switch result.Tag {
	case retrieval.CatalogNotReady:
		res.Message = "The catalog is still being prepared. Please try again in a moment."
		return res
	case retrieval.NoAttributeMatch:
		res.Message = fmt.Sprintf(
			"I couldn't find any with %s '%s'. Available %s options: %s. Would one of those work?",
			result.Attribute, result.Requested, result.Attribute,
			strings.Join(result.AvailableValues, ", "))
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	if len(result.Products) == 0 {
		res.Message = fmt.Sprintf("I couldn't find anything matching \"%s\". Could you try different words or loosen a filter?", query)
		return res
	}

	shown := result.Products
	if len(shown) > s.opts.MaxShownProducts {
		shown = shown[:s.opts.MaxShownProducts]
	}

	s.sessions.UpdateShownProducts(session.ID, shown)
	s.sessions.MergeFilters(session.ID, searchableFilters(entities))
	s.sessions.SetLastQuery(session.ID, query)

	summary := s.validator.FilterSummary(entities)
	if summary == "no specific filters" {
		summary = fmt.Sprintf("\"%s\"", query)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's what I found for %s:\n", summary))
	for i, p := range shown {
		b.WriteString(fmt.Sprintf("%d. %s - $%.2f (%s)\n", i+1, p.Title, p.Price, p.SKU))
	}
	b.WriteString("Want details on any of these, or should I narrow it down?")

	res.Message = b.String()
	res.Products = productDTOs(shown)
	return res
}

// handleRefinement folds an attribute-only follow-up into the previous
// search: the last query plus the new words, with the session's
// accumulated filters backfilling any slot the message doesn't set.
func (s *assistantService) handleRefinement(ctx context.Context, session *store.Session, resolved string) *dto.ChatResponse {
	composed := strings.TrimSpace(session.LastQuery + " " + resolved)
	entities := s.detector.ExtractEntities(composed, intent.ProductSearch)
	for k, v := range session.AccumulatedFilters {
		if entities[k] == "" {
			entities[k] = v
		}
	}
	entities["query"] = composed

	s.logger.Debug("assistant", "Refining previous search", map[string]interface{}{
		"session_id": session.ID,
		"query":      composed,
	})

	res := s.search(ctx, session, composed, entities, nil, nil)
	res.Intent = string(intent.Refinement)
	return res
}

// handleCompare lines up the referenced products side by side. Needs at
// least two; with exactly two products on screen, "compare them" works
// without numbers.
func (s *assistantService) handleCompare(session *store.Session, resolved string) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: string(intent.Comparison)}

	products := make([]store.Product, 0, 2)
	seen := map[string]bool{}
	for _, id := range s.resolver.Identifiers(resolved) {
		if p, ok := findBySKUOrID(session.LastShownProducts, id); ok && !seen[p.SKU] {
			products = append(products, p)
			seen[p.SKU] = true
		}
	}
	if len(products) < 2 && len(session.LastShownProducts) == 2 {
		products = session.LastShownProducts
	}
	if len(products) < 2 {
		res.Message = "Which two should I compare? Tell me the option numbers or SKUs, e.g. \"compare 1 and 2\"."
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	var b strings.Builder
	b.WriteString("Here's how they compare:\n")
	cheapest := products[0]
	for i, p := range products {
		stock := "in stock"
		if !p.InStock() {
			stock = "out of stock"
		}
		b.WriteString(fmt.Sprintf("%d. %s (%s) - $%.2f, %s, %s, %s\n",
			i+1, p.Title, p.SKU, p.Price, p.Category, materialSummary(p), stock))
		if p.Price < cheapest.Price {
			cheapest = p
		}
	}
	if cheapest.Price < products[0].Price || cheapest.Price < products[len(products)-1].Price {
		b.WriteString(fmt.Sprintf("%s is the cheaper option at $%.2f.", cheapest.Title, cheapest.Price))
	}

	res.Message = strings.TrimSpace(b.String())
	res.Products = productDTOs(products)
	return res
}

func (s *assistantService) handleSpecQA(session *store.Session, resolved string, entities map[string]string) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: string(intent.ProductSpecQA)}

	product, ok := s.referencedProduct(session, resolved, entities)
	if !ok {
		res.Message = "Which product do you mean? I can answer once you point me at one, e.g. \"the second one\" or a SKU like CH-100."
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	question := strings.ToLower(entities["question"])
	if question == "" {
		question = strings.ToLower(resolved)
	}

	switch {
	case strings.Contains(question, "price") || strings.Contains(question, "cost") || strings.Contains(question, "much"):
		res.Message = fmt.Sprintf("%s is $%.2f %s.", product.Title, product.Price, product.Currency)
	case strings.Contains(question, "stock") || strings.Contains(question, "available") || strings.Contains(question, "availability"):
		if product.InStock() {
			res.Message = fmt.Sprintf("Yes, %s is in stock (%d available).", product.Title, product.InventoryQuantity)
		} else {
			res.Message = fmt.Sprintf("Sorry, %s is currently out of stock.", product.Title)
		}
	case strings.Contains(question, "material") || strings.Contains(question, "made"):
		res.Message = fmt.Sprintf("%s: %s", product.Title, materialSummary(product))
	default:
		desc := product.Description
		if desc == "" {
			desc = "no further details on file"
		}
		res.Message = fmt.Sprintf("%s (%s, $%.2f): %s", product.Title, product.SKU, product.Price, desc)
	}

	res.Products = productDTOs([]store.Product{product})
	return res
}

func (s *assistantService) handleCartAdd(session *store.Session, resolved string, entities map[string]string) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: string(intent.CartAdd)}

	product, ok := s.referencedProduct(session, resolved, entities)
	if !ok {
		res.Message = "Which one would you like to add? Tell me the option number or SKU."
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	quantity := 1
	if q, err := strconv.Atoi(entities["quantity"]); err == nil && q > 0 {
		quantity = q
	}

	s.sessions.AddCartLine(session.ID, store.CartLine{
		SKU:       product.SKU,
		Title:     product.Title,
		Quantity:  quantity,
		UnitPrice: product.Price,
	})

	res.Message = fmt.Sprintf("Added %d x %s ($%.2f each) to your cart.", quantity, product.Title, product.Price)
	res.Products = productDTOs([]store.Product{product})
	return res
}

func (s *assistantService) handleCartRemove(session *store.Session, resolved string, entities map[string]string) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: string(intent.CartRemove)}

	product, ok := s.referencedProduct(session, resolved, entities)
	if !ok {
		// Fall back to matching cart titles against the message.
		lower := strings.ToLower(resolved)
		for _, line := range session.Cart {
			if strings.Contains(lower, strings.ToLower(line.Title)) || strings.Contains(lower, strings.ToLower(line.SKU)) {
				s.sessions.RemoveCartLine(session.ID, line.SKU)
				res.Message = fmt.Sprintf("Removed %s from your cart.", line.Title)
				return res
			}
		}
		res.Message = "I couldn't tell which item to remove. Tell me the SKU or the option number."
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	s.sessions.RemoveCartLine(session.ID, product.SKU)
	res.Message = fmt.Sprintf("Removed %s from your cart.", product.Title)
	return res
}

func (s *assistantService) handleCartShow(session *store.Session) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: string(intent.CartShow)}

	current, ok := s.sessions.Get(session.ID)
	if !ok || len(current.Cart) == 0 {
		res.Message = "Your cart is empty. Want me to find something for you?"
		return res
	}

	var b strings.Builder
	b.WriteString("Here's your cart:\n")
	for i, line := range current.Cart {
		b.WriteString(fmt.Sprintf("%d. %s x%d - $%.2f\n", i+1, line.Title, line.Quantity, line.UnitPrice*float64(line.Quantity)))
	}
	b.WriteString(fmt.Sprintf("Total: $%.2f", current.CartTotal()))
	res.Message = b.String()
	return res
}

func (s *assistantService) handleBundle(ctx context.Context, session *store.Session, resolved string) *dto.ChatResponse {
	res := &dto.ChatResponse{Intent: "bundle_request"}

	req := bundle.ParseRequest(resolved, s.matcher)
	if len(req.Items) == 0 {
		res.Message = "I can put a bundle together. What items do you need, and what's the total budget?"
		res.ClarificationNeeded = true
		res.ClarificationMessage = res.Message
		return res
	}

	plan := s.planner.Plan(ctx, req)
	planDTO := bundlePlanDTO(plan)
	res.BundlePlan = &planDTO

	shown := make([]store.Product, 0, len(plan.Items))
	for _, item := range plan.Items {
		shown = append(shown, item.Product)
	}
	if len(shown) > 0 {
		s.sessions.UpdateShownProducts(session.ID, shown)
	}
	res.Products = productDTOs(shown)

	var b strings.Builder
	if plan.Feasible {
		if plan.Budget > 0 {
			b.WriteString(fmt.Sprintf("Here's a bundle for $%.2f (budget $%.2f):\n", plan.TotalCost, plan.Budget))
		} else {
			b.WriteString(fmt.Sprintf("Here's a bundle for $%.2f:\n", plan.TotalCost))
		}
	} else {
		b.WriteString("I couldn't fit everything, but here's the closest I got:\n")
	}
	for i, item := range plan.Items {
		b.WriteString(fmt.Sprintf("%d. %s x%d - $%.2f (%s)\n", i+1, item.Product.Title, item.Quantity, item.LineTotal, item.Product.SKU))
	}
	if len(plan.UnmetItemTypes) > 0 {
		b.WriteString(fmt.Sprintf("I couldn't find or fit: %s.", strings.Join(plan.UnmetItemTypes, ", ")))
		if plan.MinTotalEstimate > plan.Budget && plan.Budget > 0 {
			b.WriteString(fmt.Sprintf(" The cheapest full set would be about $%.2f.", plan.MinTotalEstimate))
		}
	} else if plan.Budget > 0 {
		b.WriteString(fmt.Sprintf("That leaves $%.2f of your budget.", plan.RemainingBudget))
	}

	res.Message = strings.TrimSpace(b.String())
	return res
}

// referencedProduct finds the product a message points at: resolved
// [product:SKU] tokens first, then an explicit SKU entity, then the
// ordinal index into the last shown list.
func (s *assistantService) referencedProduct(session *store.Session, resolved string, entities map[string]string) (store.Product, bool) {
	for _, id := range s.resolver.Identifiers(resolved) {
		if p, ok := findBySKUOrID(session.LastShownProducts, id); ok {
			return p, true
		}
	}

	ref := entities["product_reference"]
	switch entities["reference_type"] {
	case "sku":
		if p, ok := findBySKUOrID(session.LastShownProducts, ref); ok {
			return p, true
		}
		if p, ok := s.searcher.Product(ref); ok {
			return p, true
		}
		// SKU not in the shown list; ask the index.
		result := s.searcher.Search(ref, retrieval.Filters{}, 1)
		if result.Tag == retrieval.Found && len(result.Products) > 0 && strings.EqualFold(result.Products[0].SKU, ref) {
			return result.Products[0], true
		}
	case "index":
		if idx, err := strconv.Atoi(ref); err == nil {
			if idx == -1 {
				idx = len(session.LastShownProducts)
			}
			if idx >= 1 && idx <= len(session.LastShownProducts) {
				return session.LastShownProducts[idx-1], true
			}
		}
	}

	if len(session.LastShownProducts) == 1 {
		return session.LastShownProducts[0], true
	}
	return store.Product{}, false
}

func (s *assistantService) policyReply(ctx context.Context, intentType intent.Type) *dto.ChatResponse {
	return &dto.ChatResponse{
		Intent:  string(intentType),
		Message: s.phrase(ctx, policyResponses[intentType]),
	}
}

func (s *assistantService) policyReplyByType(ctx context.Context, policyType string) *dto.ChatResponse {
	intentType := intent.ReturnPolicy
	switch policyType {
	case "shipping":
		intentType = intent.ShippingInfo
	case "warranty":
		intentType = intent.WarrantyInfo
	case "payment":
		intentType = intent.PaymentOptions
	}
	return s.policyReply(ctx, intentType)
}

// phrase optionally lets the model reword a template reply. The template
// is always the fallback; the model never decides control flow.
func (s *assistantService) phrase(ctx context.Context, template string) string {
	if s.llm == nil {
		return template
	}
	prompt := "Reword the following shop assistant reply in a friendly, concise tone. Keep every fact, number and product code exactly as given. Reply with the reworded text only.\n\n" + template
	out, err := s.llm.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil || strings.TrimSpace(out) == "" {
		return template
	}
	return strings.TrimSpace(out)
}

func (s *assistantService) GetSession(ctx context.Context, sessionId string) (*dto.GetSessionResponse, error) {
	session, ok := s.sessions.Get(sessionId)
	if !ok && s.snapshots != nil {
		restored, err := s.snapshots.Load(ctx, sessionId)
		if err == nil && restored != nil {
			session = restored
			ok = true
		}
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	history := make([]dto.ChatMessageDTO, 0, len(session.MessageHistory))
	for _, m := range session.MessageHistory {
		history = append(history, dto.ChatMessageDTO{
			Role:      m.Role,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}

	return &dto.GetSessionResponse{
		Id:                 session.ID,
		UserId:             session.UserID,
		CreatedAt:          session.CreatedAt,
		LastActiveAt:       session.LastActiveAt,
		History:            history,
		AccumulatedFilters: session.AccumulatedFilters,
		LastShownProducts:  productDTOs(session.LastShownProducts),
	}, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, sessionId string) error {
	s.sessions.Delete(sessionId)
	if s.snapshots != nil {
		if err := s.snapshots.Delete(ctx, sessionId); err != nil {
			s.logger.Warn("assistant", "Snapshot delete failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}
	return nil
}

var policyResponses = map[intent.Type]string{
	intent.ReturnPolicy:   "You can return most items within 30 days of delivery for a full refund, as long as they're unused and in the original packaging. Clearance items are final sale.",
	intent.ShippingInfo:   "Standard shipping takes 3-7 business days and is free on orders over $100. Express options are available at checkout, and large furniture ships with a scheduled delivery window.",
	intent.PaymentOptions: "We accept Visa, Mastercard, American Express, PayPal, and Afterpay. Payment is charged when your order ships.",
	intent.WarrantyInfo:   "All furniture comes with a 2-year manufacturer warranty covering defects in materials and workmanship. Electronics carry a 12-month warranty.",
	intent.ContactInfo:    "You can reach our support team at support@example.com or 1-800-555-0199, Monday to Friday.",
	intent.StoreHours:     "Our showroom is open Monday to Saturday 9am-6pm and Sunday 10am-4pm.",
	intent.StoreLocation:  "Our showroom is at 42 Harbour Street, with parking on site. Online orders ship nationwide.",
}

func findBySKUOrID(products []store.Product, id string) (store.Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.SKU, id) || p.ID == id {
			return p, true
		}
	}
	return store.Product{}, false
}

// searchableFilters drops bookkeeping keys before merging into the
// session's accumulated filters.
func searchableFilters(entities map[string]string) map[string]string {
	out := make(map[string]string, len(entities))
	for k, v := range entities {
		switch k {
		case "query", "vague_type", "question", "index", "quantity", "sku", "postcode":
			continue
		}
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func productDTOs(products []store.Product) []dto.ProductDTO {
	if len(products) == 0 {
		return nil
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductDTO{
			Id:                p.ID,
			Sku:               p.SKU,
			Title:             p.Title,
			Category:          p.Category,
			Price:             p.Price,
			Currency:          p.Currency,
			InventoryQuantity: p.InventoryQuantity,
			Available:         p.Available,
		})
	}
	return out
}

func bundlePlanDTO(plan bundle.Plan) dto.BundlePlanDTO {
	items := make([]dto.BundleItemDTO, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, dto.BundleItemDTO{
			ItemType:  item.ItemType,
			Product:   productDTOs([]store.Product{item.Product})[0],
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return dto.BundlePlanDTO{
		Items:           items,
		UnmetItemTypes:  plan.UnmetItemTypes,
		Budget:          plan.Budget,
		TotalCost:       plan.TotalCost,
		RemainingBudget: plan.RemainingBudget,
		BudgetShortfall: plan.BudgetShortfall,
		Feasible:        plan.Feasible,
	}
}

func materialSummary(p store.Product) string {
	materials := make([]string, 0)
	for _, tag := range p.Tags {
		lower := strings.ToLower(tag)
		if strings.HasPrefix(lower, "material_") {
			materials = append(materials, strings.TrimPrefix(lower, "material_"))
		}
	}
	if len(materials) > 0 {
		return "made of " + strings.Join(materials, ", ")
	}
	if p.Description != "" {
		return p.Description
	}
	return "material details aren't listed for this one"
}
