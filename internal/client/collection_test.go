package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/backoffice-labs/store-admin/internal/client"
	"github.com/backoffice-labs/store-admin/internal/config"
	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   []byte
}

// newTestStore spins up a server that records every request and
// answers with the given status and JSON body.
func newTestStore(t *testing.T, status int, responseBody string) (*client.Store, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		query := map[string]string{}
		for key := range r.URL.Query() {
			query[key] = r.URL.Query().Get(key)
		}

		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  query,
			Header: r.Header.Clone(),
			Body:   body,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	cfg := &config.API{BaseURL: server.URL, Timeout: 5 * time.Second}

	return client.NewStore(client.New(cfg, nil)), &requests
}

func TestCollectionList(t *testing.T) {
	ctx := context.Background()

	t.Run("Page And Size Passed Through Unmodified", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK,
			`{"content":[{"id":1,"name":"Audio"}],"totalElements":21,"totalPages":3,"number":2,"size":10}`)

		// Act
		page, err := store.Categories.List(ctx, models.PageRequest{Page: 2, Size: 10, Sort: "createdAt,desc"})

		// Assert
		require.NoError(t, err)
		require.Len(t, *requests, 1)
		req := (*requests)[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/categories", req.Path)
		assert.Equal(t, "2", req.Query["page"])
		assert.Equal(t, "10", req.Query["size"])
		assert.Equal(t, "createdAt,desc", req.Query["sort"])
		assert.Equal(t, int64(21), page.TotalElements)
		assert.Equal(t, 2, page.Number)
		assert.Len(t, page.Content, 1)
	})

	t.Run("Out Of Range Page Passed Through", func(t *testing.T) {
		// The server answers out-of-range pages with empty content; the
		// client never clamps the index itself.

		// Arrange
		store, requests := newTestStore(t, http.StatusOK,
			`{"content":[],"totalElements":3,"totalPages":1,"number":9,"size":5}`)

		// Act
		page, err := store.Categories.List(ctx, models.PageRequest{Page: 9, Size: 5})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "9", (*requests)[0].Query["page"])
		assert.Empty(t, page.Content)
	})

	t.Run("Sort Omitted When Empty", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"content":[]}`)

		// Act
		_, err := store.Categories.List(ctx, models.PageRequest{Page: 0, Size: 10})

		// Assert
		require.NoError(t, err)
		_, present := (*requests)[0].Query["sort"]
		assert.False(t, present)
	})
}

func TestCollectionWrites(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Posts JSON Body", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusCreated, `{"id":5,"name":"Audio"}`)

		// Act
		category, err := store.Categories.Create(ctx, models.CategoryPayload{Name: "Audio"})

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/categories", req.Path)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"name":"Audio"}`, string(req.Body))
		assert.Equal(t, int64(5), category.ID)
	})

	t.Run("Get Targets Item Path", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"id":5,"name":"Audio"}`)

		// Act
		category, err := store.Categories.Get(ctx, 5)

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/categories/5", req.Path)
		assert.Equal(t, "Audio", category.Name)
	})

	t.Run("Patch Targets Item Path", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"id":5,"name":"Video"}`)

		// Act
		_, err := store.Categories.Patch(ctx, 5, models.CategoryPayload{Name: "Video"})

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/categories/5", req.Path)
	})

	t.Run("Delete Targets Item Path", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusNoContent, ``)

		// Act
		err := store.Categories.Delete(ctx, 5)

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/categories/5", req.Path)
	})

	t.Run("Request Carries Correlation ID", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"content":[]}`)

		// Act
		_, err := store.Categories.List(ctx, models.PageRequest{Page: 0, Size: 10})

		// Assert
		require.NoError(t, err)
		assert.NotEmpty(t, (*requests)[0].Header.Get("X-Request-ID"))
	})
}

func TestCollectionErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Non-2xx Becomes APIError With Payload", func(t *testing.T) {
		// Arrange
		store, _ := newTestStore(t, http.StatusUnprocessableEntity,
			`{"message":"Validation failed","details":["name must not be blank"]}`)

		// Act
		_, err := store.Categories.Create(ctx, models.CategoryPayload{})

		// Assert
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "name must not be blank", apiErr.Message())
	})

	t.Run("Unreachable Server Becomes Transport APIError", func(t *testing.T) {
		// Arrange
		cfg := &config.API{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}
		store := client.NewStore(client.New(cfg, nil))

		// Act
		_, err := store.Categories.List(ctx, models.PageRequest{Page: 0, Size: 10})

		// Assert
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Zero(t, apiErr.StatusCode)
		assert.Error(t, apiErr.TransportErr)
	})

	t.Run("Garbage Error Body Keeps Status", func(t *testing.T) {
		// Arrange
		store, _ := newTestStore(t, http.StatusBadGateway, `<html>bad gateway</html>`)

		// Act
		_, err := store.Categories.List(ctx, models.PageRequest{Page: 0, Size: 10})

		// Assert
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, client.FallbackMessage, apiErr.Message())
	})
}

func TestEntityJSONShape(t *testing.T) {
	// The API speaks camelCase; a drift here breaks every page at once.

	// Arrange
	payload := models.OrderWritePayload{
		CustomerID: 3,
		Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
	}

	// Act
	data, err := json.Marshal(payload)

	// Assert
	require.NoError(t, err)
	assert.JSONEq(t, `{"customerId":3,"items":[{"productId":5,"quantity":2}]}`, string(data))
}
