package service

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/go-playground/validator/v10"
)

// EntityService is the shared list/save/delete logic behind the
// category, product and customer pages. P is the write payload type.
//
// Unlike orders, these entities are never diffed: saving an unchanged
// draft in edit mode still issues a PATCH with the full payload.
type EntityService[T, P any] struct {
	api      CollectionAPI[T]
	validate *validator.Validate
}

func NewEntityService[T, P any](api CollectionAPI[T]) *EntityService[T, P] {
	return &EntityService[T, P]{api: api, validate: validator.New()}
}

// List fetches one page sorted by creation time descending.
func (s *EntityService[T, P]) List(ctx context.Context, page, size int) (*models.Page[T], error) {

	result, err := s.api.List(ctx, models.PageRequest{Page: page, Size: size, Sort: SortCreatedDesc})
	if err != nil {
		return nil, remoteError(err)
	}

	return result, nil
}

// Save routes to create or update depending on whether an entity is
// being edited. Validation failures never reach the network.
func (s *EntityService[T, P]) Save(ctx context.Context, editingID *int64, payload P) (*T, error) {

	if err := validateStruct(s.validate, payload); err != nil {
		return nil, err
	}

	var (
		entity *T
		err    error
	)

	if editingID == nil {
		entity, err = s.api.Create(ctx, payload)
	} else {
		entity, err = s.api.Patch(ctx, *editingID, payload)
	}

	if err != nil {
		return nil, remoteError(err)
	}

	return entity, nil
}

func (s *EntityService[T, P]) Delete(ctx context.Context, id int64) error {
	return remoteError(s.api.Delete(ctx, id))
}

// Concrete instantiations, one per back-office page.
type (
	CategoryService = EntityService[models.Category, models.CategoryPayload]
	ProductService  = EntityService[models.Product, models.ProductPayload]
	CustomerService = EntityService[models.Customer, models.CustomerPayload]
)

func NewCategoryService(api CollectionAPI[models.Category]) *CategoryService {
	return NewEntityService[models.Category, models.CategoryPayload](api)
}

func NewProductService(api CollectionAPI[models.Product]) *ProductService {
	return NewEntityService[models.Product, models.ProductPayload](api)
}

func NewCustomerService(api CollectionAPI[models.Customer]) *CustomerService {
	return NewEntityService[models.Customer, models.CustomerPayload](api)
}
