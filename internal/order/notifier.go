package order

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"bagbot/internal/domain"
)

// Notifier receives confirmed orders. Implementations must tolerate being
// called outside any request deadline; failures never reach the user.
type Notifier interface {
	OrderConfirmed(ctx context.Context, order domain.Order) error
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OrderConfirmed(_ context.Context, order domain.Order) error {
	n.logger.Info("order confirmed",
		zap.String("orderId", order.OrderID),
		zap.String("userId", order.UserID),
		zap.Float64("totalPrice", order.TotalPrice),
	)
	return nil
}

// Notifiers fans a confirmation out to every registered sink.
type Notifiers []Notifier

func (ns Notifiers) OrderConfirmed(ctx context.Context, order domain.Order) error {
	var errs []error
	for _, n := range ns {
		if err := n.OrderConfirmed(ctx, order); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
