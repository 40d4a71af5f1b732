package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Govind-619/Storefront/metrics"
	"github.com/Govind-619/Storefront/models"
	"github.com/Govind-619/Storefront/repository"
	"github.com/Govind-619/Storefront/utils"
)

// mutator runs guarded order mutations through the store's atomic update
// and translates domain and store errors into AppErrors.
type mutator struct {
	store   repository.OrderStore
	metrics *metrics.Registry
	now     func() time.Time
}

func (m *mutator) apply(ctx context.Context, operation, orderID string, fn repository.MutateFunc) (*models.Order, error) {
	order, err := m.store.Update(ctx, orderID, fn)
	if err != nil {
		mapped := mapOrderError(err)
		m.metrics.Transition(operation, string(utils.KindOf(mapped)))
		if utils.KindOf(mapped) == utils.KindInternal {
			utils.LogError("%s failed for order %s: %v", operation, orderID, err)
		} else {
			utils.LogDebug("%s rejected for order %s: %v", operation, orderID, err)
		}
		return nil, mapped
	}
	m.metrics.Transition(operation, "ok")
	return order, nil
}

func mapOrderError(err error) error {
	switch {
	case err == nil:
		return nil
	case utils.IsAppError(err):
		return err
	case errors.Is(err, repository.ErrOrderNotFound):
		return utils.NotFoundError("Order not found", err)
	case errors.Is(err, repository.ErrDuplicatePayment):
		return utils.ConflictError("Payment already recorded for another order", err)
	case errors.Is(err, models.ErrReturnAlreadyRequested):
		return utils.ConflictError("Return request already exists for this order", err)
	case errors.Is(err, models.ErrInvalidRefundStatus):
		return utils.InvalidRequestError("Invalid refund status", err)
	case errors.Is(err, models.ErrNoPendingReturn):
		return utils.InvalidStateError("No pending return request", err)
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.InvalidStateError(transitionMessage(err), err)
	default:
		return utils.InternalError("Order store failure", err)
	}
}

func ownedBy(principal string, fn repository.MutateFunc) repository.MutateFunc {
	return func(order *models.Order) error {
		if !order.IsOwnedBy(principal) {
			return utils.ForbiddenError("Not authorized")
		}
		return fn(order)
	}
}

// transitionMessage strips the sentinel prefix so the caller sees the reason only
func transitionMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), models.ErrInvalidTransition.Error()+": ")
	if msg == "" || msg == err.Error() {
		return "Invalid order status transition"
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
