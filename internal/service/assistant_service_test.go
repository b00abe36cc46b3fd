package service

import (
	"context"
	"testing"
	"time"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/repository/memory"
	"ai-shopassist-be/pkg/assistant/bundle"
	"ai-shopassist-be/pkg/assistant/filtering"
	"ai-shopassist-be/pkg/assistant/intent"
	"ai-shopassist-be/pkg/assistant/reference"
	"ai-shopassist-be/pkg/assistant/taxonomy"
	"ai-shopassist-be/pkg/assistant/vague"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/retrieval"
	"ai-shopassist-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func testCatalog() []store.Product {
	return []store.Product{
		{
			ID: "p1", SKU: "CH-100", Title: "Ergonomic Office Chair Black",
			Description: "Mesh back office chair with lumbar support",
			Category:    "Chairs", Tags: []string{"Color_Black", "Material_Mesh"},
			Price: 249, Currency: "USD", InventoryQuantity: 8, Available: true,
		},
		{
			ID: "p2", SKU: "CH-101", Title: "Fabric Lounge Chair Grey",
			Category: "Chairs", Tags: []string{"Color_Grey", "Material_Fabric"},
			Price: 320, Currency: "USD", InventoryQuantity: 3, Available: true,
		},
		{
			ID: "p3", SKU: "DK-200", Title: "Standing Desk Walnut",
			Category: "Desks", Tags: []string{"Material_Wood"},
			Price: 199, Currency: "USD", InventoryQuantity: 5, Available: true,
		},
	}
}

func newTestAssistant(products []store.Product) IAssistantService {
	ix := catalog.NewIndex()
	ix.Rebuild(products)
	searcher := retrieval.NewSearcher(ix)
	matcher := taxonomy.NewMatcher()

	return NewAssistantService(
		memory.NewSessionRepository(time.Minute),
		nil,
		searcher,
		intent.NewDetector(),
		vague.NewInterpreter(matcher, 0),
		filtering.NewValidator(0),
		reference.NewResolver(),
		bundle.NewPlanner(searcher),
		matcher,
		nil,
		nil,
		nopLogger{},
		AssistantOptions{},
	)
}

func TestChatGreeting(t *testing.T) {
	svc := newTestAssistant(testCatalog())

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.Greeting), res.Intent)
	assert.NotEmpty(t, res.Message)
	assert.NotEmpty(t, res.SessionId)
}

func TestChatSearchThenSpecQA(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "show me black office chairs under $300"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ProductSearch), res.Intent)
	assert.False(t, res.ClarificationNeeded)
	if assert.Len(t, res.Products, 1) {
		assert.Equal(t, "CH-100", res.Products[0].Sku)
	}

	followUp, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "how much is the first one",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ProductSpecQA), followUp.Intent)
	assert.Contains(t, followUp.Message, "249")
	assert.Contains(t, followUp.Message, "Ergonomic Office Chair Black")
}

func TestChatCartFlow(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "show me black office chairs under $300"})
	assert.NoError(t, err)
	assert.Len(t, res.Products, 1)

	added, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "add this to my cart",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.CartAdd), added.Intent)
	assert.Contains(t, added.Message, "Ergonomic Office Chair Black")

	shown, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "show my cart",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.CartShow), shown.Intent)
	assert.Contains(t, shown.Message, "Ergonomic Office Chair Black")
	assert.Contains(t, shown.Message, "249")
}

func TestChatClarificationRoundTrip(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "show me something nice"})
	assert.NoError(t, err)
	assert.True(t, res.ClarificationNeeded)
	assert.Empty(t, res.Products)

	reply, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "black office chair",
	})
	assert.NoError(t, err)
	assert.False(t, reply.ClarificationNeeded)
	if assert.NotEmpty(t, reply.Products) {
		assert.Equal(t, "CH-100", reply.Products[0].Sku)
	}
}

func TestChatNegatedMaterialIsExcluded(t *testing.T) {
	svc := newTestAssistant([]store.Product{
		{
			ID: "p1", SKU: "CH-300", Title: "Solid Wood Dining Chair",
			Category: "Chairs", Tags: []string{"Material_Wood"},
			Price: 180, Currency: "USD", InventoryQuantity: 4, Available: true,
		},
		{
			ID: "p2", SKU: "CH-301", Title: "Metal Frame Cafe Chair",
			Category: "Chairs", Tags: []string{"Material_Metal"},
			Price: 150, Currency: "USD", InventoryQuantity: 6, Available: true,
		},
	})

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "i need a chair that is not wood"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ProductSearch), res.Intent)
	assert.False(t, res.ClarificationNeeded)
	if assert.Len(t, res.Products, 1) {
		assert.Equal(t, "CH-301", res.Products[0].Sku)
	}
}

func TestChatWoodenVariantReachesSearch(t *testing.T) {
	svc := newTestAssistant([]store.Product{
		{
			ID: "p1", SKU: "CH-300", Title: "Solid Wood Dining Chair",
			Category: "Chairs", Tags: []string{"Material_Wood"},
			Price: 180, Currency: "USD", InventoryQuantity: 4, Available: true,
		},
		{
			ID: "p2", SKU: "CH-301", Title: "Metal Frame Cafe Chair",
			Category: "Chairs", Tags: []string{"Material_Metal"},
			Price: 150, Currency: "USD", InventoryQuantity: 6, Available: true,
		},
	})

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "something not wooden please"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ProductSearch), res.Intent)
	for _, p := range res.Products {
		assert.NotEqual(t, "CH-300", p.Sku)
	}
}

func TestChatFollowUpRefinesPreviousSearch(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "show me chairs"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ProductSearch), res.Intent)
	assert.Len(t, res.Products, 2)

	followUp, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "in black",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.Refinement), followUp.Intent)
	assert.False(t, followUp.ClarificationNeeded)
	if assert.Len(t, followUp.Products, 1) {
		assert.Equal(t, "CH-100", followUp.Products[0].Sku)
	}
}

func TestChatComparesShownProducts(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "show me chairs"})
	assert.NoError(t, err)
	assert.Len(t, res.Products, 2)

	compared, err := svc.Chat(ctx, &dto.ChatRequest{
		SessionId: res.SessionId,
		Message:   "compare the first one and the second one",
	})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.Comparison), compared.Intent)
	assert.Len(t, compared.Products, 2)
	assert.Contains(t, compared.Message, "Ergonomic Office Chair Black")
	assert.Contains(t, compared.Message, "Fabric Lounge Chair Grey")
	assert.Contains(t, compared.Message, "cheaper")
}

func TestChatContradictionIsQuestioned(t *testing.T) {
	svc := newTestAssistant(testCatalog())

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "show me a cheap luxury chair"})
	assert.NoError(t, err)
	assert.True(t, res.ClarificationNeeded)
	assert.Contains(t, res.Message, "Affordable")
	assert.Empty(t, res.Products)
}

func TestChatBundleRequest(t *testing.T) {
	svc := newTestAssistant(testCatalog())

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "i need a desk and chair under $500"})
	assert.NoError(t, err)
	if assert.NotNil(t, res.BundlePlan) {
		assert.True(t, res.BundlePlan.Feasible)
		assert.Equal(t, 448.0, res.BundlePlan.TotalCost)
		assert.Len(t, res.BundlePlan.Items, 2)
	}
}

func TestChatPolicyQuestion(t *testing.T) {
	svc := newTestAssistant(testCatalog())

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "what is your return policy"})
	assert.NoError(t, err)
	assert.Equal(t, string(intent.ReturnPolicy), res.Intent)
	assert.Contains(t, res.Message, "30 days")
}

func TestGetAndDeleteSession(t *testing.T) {
	svc := newTestAssistant(testCatalog())
	ctx := context.Background()

	res, err := svc.Chat(ctx, &dto.ChatRequest{Message: "hello", UserId: "u-1"})
	assert.NoError(t, err)

	session, err := svc.GetSession(ctx, res.SessionId)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", session.UserId)
	assert.Len(t, session.History, 2)
	assert.Equal(t, store.RoleUser, session.History[0].Role)

	assert.NoError(t, svc.DeleteSession(ctx, res.SessionId))
	_, err = svc.GetSession(ctx, res.SessionId)
	assert.Error(t, err)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	svc := newTestAssistant(testCatalog())

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "   "})
	assert.Error(t, err)
}
