package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/backoffice-labs/store-admin/internal/models"
)

// Collection is the generic client for one paginated resource path.
// Page indexes are zero-based and passed through to the server
// unmodified.
type Collection[T any] struct {
	client *Client
	path   string
}

func NewCollection[T any](client *Client, resource string) *Collection[T] {
	return &Collection[T]{
		client: client,
		path:   "/" + resource,
	}
}

func (c *Collection[T]) List(ctx context.Context, req models.PageRequest) (*models.Page[T], error) {

	query := url.Values{}
	query.Set("page", strconv.Itoa(req.Page))
	query.Set("size", strconv.Itoa(req.Size))

	if req.Sort != "" {
		query.Set("sort", req.Sort)
	}

	var page models.Page[T]

	if err := c.client.do(ctx, http.MethodGet, c.path, query, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {

	var entity T

	if err := c.client.do(ctx, http.MethodGet, c.itemPath(id), nil, nil, &entity); err != nil {
		return nil, err
	}

	return &entity, nil
}

func (c *Collection[T]) Create(ctx context.Context, payload any) (*T, error) {

	var entity T

	if err := c.client.do(ctx, http.MethodPost, c.path, nil, payload, &entity); err != nil {
		return nil, err
	}

	return &entity, nil
}

// Patch sends a partial update with the changed fields.
func (c *Collection[T]) Patch(ctx context.Context, id int64, payload any) (*T, error) {

	var entity T

	if err := c.client.do(ctx, http.MethodPatch, c.itemPath(id), nil, payload, &entity); err != nil {
		return nil, err
	}

	return &entity, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, c.itemPath(id), nil, nil, nil)
}

func (c *Collection[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.path, id)
}
