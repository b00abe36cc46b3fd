package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-shopassist-be/internal/controller"
	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/pkg/serverutils"
	"ai-shopassist-be/internal/repository/memory"
	"ai-shopassist-be/internal/service"
	"ai-shopassist-be/pkg/assistant/bundle"
	"ai-shopassist-be/pkg/assistant/filtering"
	"ai-shopassist-be/pkg/assistant/intent"
	"ai-shopassist-be/pkg/assistant/reference"
	"ai-shopassist-be/pkg/assistant/taxonomy"
	"ai-shopassist-be/pkg/assistant/vague"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/retrieval"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// Fake gorm-backed repositories so the full HTTP stack runs without postgres.

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	r.products = products
	return nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) FindBySku(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Sku == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *fakeProductRepo) CountCategories(ctx context.Context) (int64, error) {
	seen := map[string]bool{}
	for _, p := range r.products {
		seen[p.Category] = true
	}
	return int64(len(seen)), nil
}

type fakeSyncRunRepo struct {
	runs []*entity.SyncRun
}

func (r *fakeSyncRunRepo) Create(ctx context.Context, run *entity.SyncRun) error {
	r.runs = append(r.runs, run)
	return nil
}

func (r *fakeSyncRunRepo) Update(ctx context.Context, run *entity.SyncRun) error {
	return nil
}

func (r *fakeSyncRunRepo) FindLatestCompleted(ctx context.Context) (*entity.SyncRun, error) {
	for i := len(r.runs) - 1; i >= 0; i-- {
		if r.runs[i].Status == "completed" {
			return r.runs[i], nil
		}
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := nopLogger{}
	index := catalog.NewIndex()
	searcher := retrieval.NewSearcher(index)
	matcher := taxonomy.NewMatcher()

	catalogService := service.NewCatalogService(
		&fakeProductRepo{}, &fakeSyncRunRepo{}, index, nil, log,
	)

	assistantService := service.NewAssistantService(
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
		log,
		service.AssistantOptions{},
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	controller.NewHealthController(index).RegisterRoutes(api)
	controller.NewCatalogController(catalogService).RegisterRoutes(api)
	controller.NewAssistantController(assistantService).RegisterRoutes(api)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*serverutils.BaseResponse[json.RawMessage], int) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return &parsed, resp.StatusCode
}

func getJSON(t *testing.T, app *fiber.App, path string) (*serverutils.BaseResponse[json.RawMessage], int) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)

	var parsed serverutils.BaseResponse[json.RawMessage]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return &parsed, resp.StatusCode
}

func TestSyncThenChatOverHTTP(t *testing.T) {
	app := newTestApp(t)

	// 1. Upload a catalog
	syncReq := dto.SyncCatalogRequest{
		Source: "upload",
		Products: []dto.ProductPayload{
			{
				Id: "p-1001", Sku: "CH-100", Title: "Ergonomic Office Chair Black",
				Description: "Mesh-backed office chair with lumbar support",
				Category:    "Chairs", Tags: []string{"Color_Black", "Material_Mesh", "Room_Office"},
				Price: 249, Currency: "USD", InventoryQuantity: 10, Available: true,
			},
			{
				Id: "p-2001", Sku: "DK-200", Title: "Standing Desk Walnut",
				Description: "Height-adjustable standing desk",
				Category:    "Desks", Tags: []string{"Material_Wood", "Room_Office"},
				Price: 199, Currency: "USD", InventoryQuantity: 5, Available: true,
			},
		},
	}

	body, code := postJSON(t, app, "/api/catalog/v1/sync", syncReq)
	require.Equal(t, fiber.StatusOK, code)
	require.True(t, body.Success)

	var syncRes dto.SyncCatalogResponse
	require.NoError(t, json.Unmarshal(body.Data, &syncRes))
	require.Equal(t, "completed", syncRes.Status)
	require.Equal(t, 2, syncRes.ProductCount)

	// 2. Health reflects the warmed index
	health, code := getJSON(t, app, "/api/health/v1")
	require.Equal(t, fiber.StatusOK, code)

	var healthRes map[string]interface{}
	require.NoError(t, json.Unmarshal(health.Data, &healthRes))
	require.Equal(t, true, healthRes["catalog_ready"])
	require.Equal(t, float64(2), healthRes["product_count"])

	// 3. A filtered search over the chat endpoint
	chat, code := postJSON(t, app, "/api/assistant/v1/chat", dto.ChatRequest{
		Message: "show me black office chairs under $300",
	})
	require.Equal(t, fiber.StatusOK, code)

	var chatRes dto.ChatResponse
	require.NoError(t, json.Unmarshal(chat.Data, &chatRes))
	require.NotEmpty(t, chatRes.SessionId)
	require.Len(t, chatRes.Products, 1)
	require.Equal(t, "CH-100", chatRes.Products[0].Sku)

	// 4. The session endpoint returns the turn just taken
	sess, code := getJSON(t, app, "/api/assistant/v1/session/"+chatRes.SessionId)
	require.Equal(t, fiber.StatusOK, code)

	var sessRes dto.GetSessionResponse
	require.NoError(t, json.Unmarshal(sess.Data, &sessRes))
	require.Len(t, sessRes.History, 2)
	require.Contains(t, strings.ToLower(sessRes.History[0].Text), "black office chairs")
}

func TestChatValidationErrorsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	body, code := postJSON(t, app, "/api/assistant/v1/chat", dto.ChatRequest{Message: ""})
	require.Equal(t, fiber.StatusBadRequest, code)
	require.False(t, body.Success)
	require.NotEmpty(t, body.Message)
}

func TestUnknownSessionIsNotFound(t *testing.T) {
	app := newTestApp(t)

	body, code := getJSON(t, app, "/api/assistant/v1/session/nope")
	require.Equal(t, fiber.StatusNotFound, code)
	require.False(t, body.Success)
}
