package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/backoffice-labs/store-admin/internal/errors"
	"github.com/backoffice-labs/store-admin/internal/models"
	service "github.com/backoffice-labs/store-admin/internal/services"
	"github.com/backoffice-labs/store-admin/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func existingOrder() *models.Order {
	return &models.Order{
		ID:         42,
		CustomerID: 1,
		Status:     models.OrderStatusCreated,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Keyboard", Quantity: 3, UnitPrice: 49.90},
		},
	}
}

func TestSaveCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - One POST With Exact Payload", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)

		want := models.OrderWritePayload{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
		}
		mockAPI.On("Create", mock.Anything, want).Return(&models.Order{ID: 7}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, nil, service.OrderDraft{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeCreated, outcome)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure - No Customer Selected", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)

		// Act
		outcome, err := orderService.Save(ctx, nil, service.OrderDraft{
			Items: []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockAPI.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - Unselected Product Never Reaches Network", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)

		// Act
		outcome, err := orderService.Save(ctx, nil, service.OrderDraft{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 0, Quantity: 2}},
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		mockAPI.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - Zero Quantity Never Reaches Network", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)

		// Act
		outcome, err := orderService.Save(ctx, nil, service.OrderDraft{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 0}},
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		mockAPI.AssertNotCalled(t, "Create")
	})

	t.Run("Failure - Empty Items Never Reaches Network", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)

		// Act
		outcome, err := orderService.Save(ctx, nil, service.OrderDraft{CustomerID: 3})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		mockAPI.AssertNotCalled(t, "Create")
	})
}

func TestSaveReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("No Changes - Zero Calls", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: original.CustomerID,
			Status:     original.Status,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeNoChanges, outcome)
		mockAPI.AssertNotCalled(t, "UpdateStatus")
		mockAPI.AssertNotCalled(t, "Replace")
	})

	t.Run("Status Only - Single Status Call", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		mockAPI.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusPaid).
			Return(&models.Order{ID: 42, Status: models.OrderStatusPaid}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: original.CustomerID,
			Status:     models.OrderStatusPaid,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeStatusUpdated, outcome)
		mockAPI.AssertNotCalled(t, "Replace")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Items Only - Single Replace Without Status", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		want := models.OrderWritePayload{
			CustomerID: 1,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 5}},
		}
		mockAPI.On("Replace", mock.Anything, int64(42), want).Return(&models.Order{ID: 42}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 1,
			Status:     original.Status,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 5}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeReplaced, outcome)
		mockAPI.AssertNotCalled(t, "UpdateStatus")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Customer Only - Single Replace", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		want := models.OrderWritePayload{
			CustomerID: 9,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		}
		mockAPI.On("Replace", mock.Anything, int64(42), want).Return(&models.Order{ID: 42}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     original.Status,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeReplaced, outcome)
		mockAPI.AssertNotCalled(t, "UpdateStatus")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Status And Items - Status First Then Replace", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		statusCall := mockAPI.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusPending).
			Return(&models.Order{ID: 42, Status: models.OrderStatusPending}, nil).Once()
		mockAPI.On("Replace", mock.Anything, int64(42), mock.AnythingOfType("models.OrderWritePayload")).
			Return(&models.Order{ID: 42}, nil).Once().NotBefore(statusCall)

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     models.OrderStatusPending,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeStatusAndReplace, outcome)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Reorder Of Identical Items Counts As Change", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()
		original.Items = []models.OrderItem{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
		}

		want := models.OrderWritePayload{
			CustomerID: 1,
			Items: []models.OrderItemPayload{
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 3},
			},
		}
		mockAPI.On("Replace", mock.Anything, int64(42), want).Return(&models.Order{ID: 42}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 1,
			Status:     original.Status,
			Items: []models.OrderItemPayload{
				{ProductID: 2, Quantity: 1},
				{ProductID: 1, Quantity: 3},
			},
		})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, service.OutcomeReplaced, outcome)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure - Status Call Fails Before Replace", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		mockAPI.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusCanceled).
			Return(nil, errors.New("invalid transition")).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     models.OrderStatusCanceled,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		var partial *service.PartialSaveError
		assert.False(t, errors.As(err, &partial))
		mockAPI.AssertNotCalled(t, "Replace")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure - Replace Fails After Status Applied", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()
		replaceErr := errors.New("product out of catalog")

		mockAPI.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusPaid).
			Return(&models.Order{ID: 42, Status: models.OrderStatusPaid}, nil).Once()
		mockAPI.On("Replace", mock.Anything, int64(42), mock.AnythingOfType("models.OrderWritePayload")).
			Return(nil, replaceErr).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     models.OrderStatusPaid,
			Items:      []models.OrderItemPayload{{ProductID: 1, Quantity: 3}},
		})

		// Assert
		assert.Equal(t, service.OutcomeStatusUpdated, outcome)
		var partial *service.PartialSaveError
		assert.True(t, errors.As(err, &partial))
		assert.ErrorIs(t, err, replaceErr)
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Items After Status Applied", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		mockAPI.On("UpdateStatus", mock.Anything, int64(42), models.OrderStatusPaid).
			Return(&models.Order{ID: 42, Status: models.OrderStatusPaid}, nil).Once()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     models.OrderStatusPaid,
			Items:      []models.OrderItemPayload{{ProductID: 0, Quantity: 3}},
		})

		// Assert
		assert.Equal(t, service.OutcomeStatusUpdated, outcome)
		var partial *service.PartialSaveError
		assert.True(t, errors.As(err, &partial))
		mockAPI.AssertNotCalled(t, "Replace")
		mockAPI.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Items Without Status Change", func(t *testing.T) {
		// Arrange
		mockAPI := new(mocks.OrderAPI)
		orderService := service.NewOrderService(mockAPI)
		original := existingOrder()

		// Act
		outcome, err := orderService.Save(ctx, original, service.OrderDraft{
			CustomerID: 9,
			Status:     original.Status,
			Items:      []models.OrderItemPayload{},
		})

		// Assert
		assert.Error(t, err)
		assert.Equal(t, service.OutcomeNone, outcome)
		var partial *service.PartialSaveError
		assert.False(t, errors.As(err, &partial))
		mockAPI.AssertNotCalled(t, "UpdateStatus")
		mockAPI.AssertNotCalled(t, "Replace")
	})
}

func TestOrderList(t *testing.T) {
	// Arrange
	mockAPI := new(mocks.OrderAPI)
	orderService := service.NewOrderService(mockAPI)
	ctx := context.Background()

	mockAPI.On("List", mock.Anything, models.PageRequest{Page: 2, Size: 20, Sort: service.SortCreatedDesc}).
		Return(&models.Page[models.Order]{TotalElements: 61, TotalPages: 4, Number: 2}, nil).Once()

	// Act
	page, err := orderService.List(ctx, 2, 20)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(61), page.TotalElements)
	mockAPI.AssertExpectations(t)
}
