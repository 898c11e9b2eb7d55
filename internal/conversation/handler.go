package conversation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bagbot/internal/catalog"
	"bagbot/internal/domain"
	apperrors "bagbot/internal/errors"
	"bagbot/internal/order"
)

const apologyText = "抱歉，系統發生錯誤，請稍後再試。"

// Handler routes inbound events and produces exactly one reply per event.
// User-input problems are answered in-band; only internal failures are
// reported as errors, and even those still come with an apology reply so
// the transport always has something to send.
type Handler struct {
	store  *order.Store
	cat    *catalog.Catalog
	logger *zap.Logger
	now    func() time.Time
	routes []commandRoute
}

func NewHandler(store *order.Store, cat *catalog.Catalog, logger *zap.Logger) *Handler {
	h := &Handler{
		store:  store,
		cat:    cat,
		logger: logger,
		now:    time.Now,
	}
	h.routes = h.commandRoutes()
	return h
}

func (h *Handler) Handle(ctx context.Context, ev Event) (reply Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic while handling event",
				zap.String("userId", ev.UserID),
				zap.Any("panic", r),
			)
			reply = textReply(apologyText)
			err = apperrors.NewInternalError("event handler panicked", fmt.Errorf("%v", r))
		}
	}()

	switch ev.Kind {
	case KindText:
		reply, err = h.handleText(ctx, ev)
	case KindPostback:
		reply, err = h.handlePostback(ctx, ev)
	default:
		return textReply(apologyText), apperrors.NewInternalError(
			fmt.Sprintf("unsupported event kind %q", ev.Kind), nil)
	}

	if err != nil {
		h.logger.Error("handling event failed",
			zap.String("userId", ev.UserID),
			zap.String("kind", string(ev.Kind)),
			zap.Error(err),
		)
		return textReply(apologyText), err
	}
	return reply, nil
}

// handleText gives step-specific parsing priority over command keywords:
// while the user is inside company_info, quantity_input or custom_input,
// free text is data for that step, not a command.
func (h *Handler) handleText(ctx context.Context, ev Event) (Reply, error) {
	if o, ok := h.store.Get(ev.UserID); ok {
		switch o.Step {
		case domain.StepCompanyInfo:
			return h.handleCompanyInfoInput(ev)
		case domain.StepQuantityInput:
			return h.handleQuantityInput(ev, o)
		case domain.StepCustomInput:
			return h.handleCustomInput(ev)
		}
	}

	for _, route := range h.routes {
		if route.match(ev.Text) {
			return route.handle(ctx, ev)
		}
	}
	return textReply(greetingText), nil
}
