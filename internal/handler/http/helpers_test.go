// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/internal/service"
	"github.com/etorres/go-api-scaffold/internal/utils"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockItemService implements service.ItemService for unit tests.
type mockItemService struct {
	listItemsFn      func(ctx context.Context, query service.ItemListQuery) ([]models.Item, int, error)
	getItemFn        func(ctx context.Context, itemID uuid.UUID) (models.Item, error)
	createItemFn     func(ctx context.Context, ownerID uuid.UUID, create models.ItemCreate) (models.Item, error)
	updateItemFn     func(ctx context.Context, itemID uuid.UUID, update models.ItemUpdate) (models.Item, error)
	deleteItemFn     func(ctx context.Context, itemID uuid.UUID) error
	softDeleteItemFn func(ctx context.Context, itemID uuid.UUID) (models.Item, error)
}

func (m *mockItemService) ListItems(ctx context.Context, query service.ItemListQuery) ([]models.Item, int, error) {
	return m.listItemsFn(ctx, query)
}

func (m *mockItemService) GetItem(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	return m.getItemFn(ctx, itemID)
}

func (m *mockItemService) CreateItem(ctx context.Context, ownerID uuid.UUID, create models.ItemCreate) (models.Item, error) {
	return m.createItemFn(ctx, ownerID, create)
}

func (m *mockItemService) UpdateItem(ctx context.Context, itemID uuid.UUID, update models.ItemUpdate) (models.Item, error) {
	return m.updateItemFn(ctx, itemID, update)
}

func (m *mockItemService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return m.deleteItemFn(ctx, itemID)
}

func (m *mockItemService) SoftDeleteItem(ctx context.Context, itemID uuid.UUID) (models.Item, error) {
	return m.softDeleteItemFn(ctx, itemID)
}

// mockEventService implements service.EventService for unit tests.
type mockEventService struct {
	publishMessageFn func(ctx context.Context, message models.KafkaMessage) error
}

func (m *mockEventService) PublishMessage(ctx context.Context, message models.KafkaMessage) error {
	return m.publishMessageFn(ctx, message)
}

// mockTaskService implements service.TaskService for unit tests.
type mockTaskService struct {
	enqueueTaskFn   func(ctx context.Context, request models.TaskRequest) (models.Task, error)
	getTaskResultFn func(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error)
}

func (m *mockTaskService) EnqueueTask(ctx context.Context, request models.TaskRequest) (models.Task, error) {
	return m.enqueueTaskFn(ctx, request)
}

func (m *mockTaskService) GetTaskResult(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error) {
	return m.getTaskResultFn(ctx, taskID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler wired with the given mocks. Nil mocks are
// allowed for services the test never touches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, "test-version", logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeJSON unmarshals a response body into out.
func decodeJSON(t *testing.T, body []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, out))
}

// requestWithUser attaches an authenticated user ID to the request context,
// mimicking what the auth middleware does.
func requestWithUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}
