package service

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
	"golang.org/x/sync/errgroup"
)

// Option page sizes: selection controls load one large page instead of
// paginating.
const (
	categoryOptionsSize = 100
	customerOptionsSize = 100
	productOptionsSize  = 200
)

// LookupService loads the selection data the forms need: categories
// for the product form, customers and products for the order form, and
// the per-customer order counts.
type LookupService struct {
	categories CollectionAPI[models.Category]
	customers  CustomerAPI
	products   CollectionAPI[models.Product]
}

func NewLookupService(categories CollectionAPI[models.Category], customers CustomerAPI, products CollectionAPI[models.Product]) *LookupService {
	return &LookupService{categories: categories, customers: customers, products: products}
}

// CategoryOptions loads the category selection for the product form.
func (s *LookupService) CategoryOptions(ctx context.Context) ([]models.Category, error) {

	page, err := s.categories.List(ctx, models.PageRequest{Page: 0, Size: categoryOptionsSize, Sort: SortNameAsc})
	if err != nil {
		return nil, remoteError(err)
	}

	return page.Content, nil
}

// OrderFormOptions loads customers and products concurrently. The two
// fetches succeed or fail as one logical operation; the order form is
// unusable with only half the options.
func (s *LookupService) OrderFormOptions(ctx context.Context) ([]models.Customer, []models.Product, error) {

	var (
		customers []models.Customer
		products  []models.Product
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.customers.List(ctx, models.PageRequest{Page: 0, Size: customerOptionsSize, Sort: SortNameAsc})
		if err != nil {
			return err
		}

		customers = page.Content

		return nil
	})

	g.Go(func() error {
		page, err := s.products.List(ctx, models.PageRequest{Page: 0, Size: productOptionsSize, Sort: SortNameAsc})
		if err != nil {
			return err
		}

		products = page.Content

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, remoteError(err)
	}

	return customers, products, nil
}

// OrderCounts fetches the open/total aggregate for the selected
// customer. No selection clears the display without a call, and a
// fetch failure clears it silently; the count is advisory and must
// never block the form.
func (s *LookupService) OrderCounts(ctx context.Context, customerID int64) *models.CustomerOrderCount {

	if customerID == 0 {
		return nil
	}

	count, err := s.customers.OrderCounts(ctx, customerID)
	if err != nil {
		return nil
	}

	return count
}
