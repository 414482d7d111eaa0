package usecase

import (
	"context"

	"vendora/internal/domain/entity"
)

// NotificationDispatcher decouples order, product and inventory flows from
// the dual-store notification pipeline. One recipient's dispatch failure
// never aborts a caller's fan-out loop.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, input DispatchInput) (*entity.Notification, error)
}
