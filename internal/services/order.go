package service

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/errors"
	"github.com/backoffice-labs/store-admin/internal/models"
)

// SaveOutcome reports what an order save actually did. The no-change
// outcome is distinct from both success and failure: the UI shows a
// neutral notice and keeps the form open.
type SaveOutcome int

const (
	OutcomeNone SaveOutcome = iota
	OutcomeNoChanges
	OutcomeCreated
	OutcomeStatusUpdated
	OutcomeReplaced
	OutcomeStatusAndReplace
)

// OrderDraft is the edited form state for one order. CustomerID zero
// means no customer selected.
type OrderDraft struct {
	CustomerID int64
	Status     models.OrderStatus
	Items      []models.OrderItemPayload
}

// PartialSaveError reports a failure that happened after the status
// update already succeeded. The two calls are independent and
// non-transactional: the order keeps its new status and stale
// structure until a later save corrects it. Callers must surface both
// facts, not collapse them into one error.
type PartialSaveError struct {
	Err error
}

func (e *PartialSaveError) Error() string {
	return e.Err.Error()
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}

// OrderService reconciles an edited order draft against the order as
// last loaded and issues the minimal set of calls, in order: status
// first through the narrow transition-validated endpoint, then one
// structural replace for customer/items.
type OrderService struct {
	api OrderAPI
}

func NewOrderService(api OrderAPI) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) List(ctx context.Context, page, size int) (*models.Page[models.Order], error) {

	result, err := s.api.List(ctx, models.PageRequest{Page: page, Size: size, Sort: SortCreatedDesc})
	if err != nil {
		return nil, remoteError(err)
	}

	return result, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return remoteError(s.api.Delete(ctx, id))
}

// Save decides which backend calls an edited draft needs. In create
// mode (original nil) that is exactly one POST; in edit mode it is the
// reconciliation described on SaveOutcome. Validation runs before any
// network call.
func (s *OrderService) Save(ctx context.Context, original *models.Order, draft OrderDraft) (SaveOutcome, error) {

	if draft.CustomerID == 0 {
		return OutcomeNone, errors.ValidationError("Select a customer")
	}

	if original == nil {
		return s.create(ctx, draft)
	}

	return s.reconcile(ctx, original, draft)
}

func (s *OrderService) create(ctx context.Context, draft OrderDraft) (SaveOutcome, error) {

	if !hasValidItems(draft.Items) {
		return OutcomeNone, errors.ValidationError("Add at least one valid item")
	}

	// Status is never sent on create; the server assigns it.
	payload := models.OrderWritePayload{
		CustomerID: draft.CustomerID,
		Items:      draft.Items,
	}

	if _, err := s.api.Create(ctx, payload); err != nil {
		return OutcomeNone, remoteError(err)
	}

	return OutcomeCreated, nil
}

func (s *OrderService) reconcile(ctx context.Context, original *models.Order, draft OrderDraft) (SaveOutcome, error) {

	statusChanged := draft.Status != original.Status
	customerChanged := draft.CustomerID != original.CustomerID
	itemsChanged := !itemsEqual(normalizeItems(original.Items), draft.Items)

	if !statusChanged && !customerChanged && !itemsChanged {
		return OutcomeNoChanges, nil
	}

	// Status goes through its dedicated endpoint so the server-side
	// transition rules stay in force; the replace payload never
	// carries status.
	statusApplied := false

	if statusChanged {
		if _, err := s.api.UpdateStatus(ctx, original.ID, draft.Status); err != nil {
			return OutcomeNone, remoteError(err)
		}

		statusApplied = true
	}

	if customerChanged || itemsChanged {

		if !hasValidItems(draft.Items) {
			return s.structuralFailure(statusApplied, errors.ValidationError("Add at least one valid item"))
		}

		payload := models.OrderWritePayload{
			CustomerID: draft.CustomerID,
			Items:      draft.Items,
		}

		if _, err := s.api.Replace(ctx, original.ID, payload); err != nil {
			return s.structuralFailure(statusApplied, remoteError(err))
		}

		if statusApplied {
			return OutcomeStatusAndReplace, nil
		}

		return OutcomeReplaced, nil
	}

	return OutcomeStatusUpdated, nil
}

// structuralFailure keeps an already-applied status update visible when
// the structural half fails. There is no rollback.
func (s *OrderService) structuralFailure(statusApplied bool, err error) (SaveOutcome, error) {

	if statusApplied {
		return OutcomeStatusUpdated, &PartialSaveError{Err: err}
	}

	return OutcomeNone, err
}

// hasValidItems reports whether the list can be sent: non-empty and no
// entry with an unselected product or non-positive quantity.
func hasValidItems(items []models.OrderItemPayload) bool {

	if len(items) == 0 {
		return false
	}

	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return false
		}
	}

	return true
}

// normalizeItems projects loaded order items to the write shape so the
// two sides compare on (productId, quantity) only.
func normalizeItems(items []models.OrderItem) []models.OrderItemPayload {

	normalized := make([]models.OrderItemPayload, 0, len(items))

	for _, item := range items {
		normalized = append(normalized, models.OrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return normalized
}

// itemsEqual compares the sequences exactly, including order and
// length. A reorder of identical items counts as a change; product has
// not asked for that to be relaxed.
func itemsEqual(a, b []models.OrderItemPayload) bool {

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
