package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"bagbot/internal/domain"
)

// Store owns the mapping from LINE user ID to that user's single active
// order. All access goes through the store; callers receive copies, so two
// concurrent merges can interleave (last write wins) but never produce a
// partially written record.
type Store struct {
	mu      sync.RWMutex
	orders  map[string]*domain.Order
	counter int

	now      func() time.Time
	notifier Notifier
	logger   *zap.Logger
}

func NewStore(notifier Notifier, logger *zap.Logger) *Store {
	return &Store{
		orders:   make(map[string]*domain.Order),
		counter:  1000,
		now:      time.Now,
		notifier: notifier,
		logger:   logger,
	}
}

// generateOrderNumber produces PB<YYYYMMDD><counter>. The counter is
// process-local and resets on restart, so numbers are only unique within
// one process lifetime.
func (s *Store) generateOrderNumber() string {
	id := fmt.Sprintf("PB%s%04d", s.now().Format("20060102"), s.counter)
	s.counter++
	return id
}

// Create allocates a fresh draft order for the user, discarding any prior
// order tracked under the same key.
func (s *Store) Create(userID string) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	o := &domain.Order{
		OrderID:   s.generateOrderNumber(),
		UserID:    userID,
		Status:    domain.StatusDraft,
		Step:      domain.StepCompanyInfo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.orders[userID] = o

	s.logger.Info("order created",
		zap.String("orderId", o.OrderID),
		zap.String("userId", userID),
	)
	return *o
}

func (s *Store) Get(userID string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}
	return *o, true
}

// MergeCompanyInfo shallow-merges the provided fields and advances the step
// per the transition table. Empty fields leave existing values in place.
func (s *Store) MergeCompanyInfo(userID string, info domain.CompanyInfo) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}

	if info.Name != "" {
		o.CompanyInfo.Name = info.Name
	}
	if info.Contact != "" {
		o.CompanyInfo.Contact = info.Contact
	}
	if info.Phone != "" {
		o.CompanyInfo.Phone = info.Phone
	}
	if info.Invoice != "" {
		o.CompanyInfo.Invoice = info.Invoice
	}

	s.advance(o, InputCompanyInfo)
	s.touch(o)
	return *o, true
}

// MergeProductSelection shallow-merges non-zero fields of the patch. It does
// not advance the step by itself; the handler drives the selection sub-flow
// through Advance. The placeholder total price is recomputed on every merge.
func (s *Store) MergeProductSelection(userID string, patch domain.ProductSelection) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}

	sel := &o.ProductSelection
	if patch.Size != "" {
		sel.Size, sel.SizeName = patch.Size, patch.SizeName
	}
	if patch.Thickness != "" {
		sel.Thickness, sel.ThicknessName = patch.Thickness, patch.ThicknessName
	}
	if patch.Material != "" {
		sel.Material, sel.MaterialName = patch.Material, patch.MaterialName
	}
	if patch.Color != "" {
		sel.Color, sel.ColorName = patch.Color, patch.ColorName
	}
	if patch.Quantity > 0 {
		sel.Quantity = patch.Quantity
	}

	o.TotalPrice = CalculateTotalPrice(*sel)
	s.touch(o)
	return *o, true
}

// Advance applies the transition table for the given input against the
// order's current step.
func (s *Store) Advance(userID string, input Input) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}

	s.advance(o, input)
	s.touch(o)
	return *o, true
}

// SetCustomRequirements stores the text verbatim and moves on to the
// delivery-date step.
func (s *Store) SetCustomRequirements(userID, text string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}

	o.CustomRequirements = text
	s.advance(o, InputCustomText)
	s.touch(o)
	return *o, true
}

func (s *Store) SetDeliveryDate(userID, date string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[userID]
	if !ok {
		return domain.Order{}, false
	}

	o.DeliveryDate = date
	s.advance(o, InputDateSelected)
	s.touch(o)
	return *o, true
}

// Confirm marks the order confirmed, stamps ConfirmedAt and notifies the
// configured sinks exactly once. Notification failures are logged and never
// surfaced to the caller.
func (s *Store) Confirm(ctx context.Context, userID string) (domain.Order, bool) {
	s.mu.Lock()
	o, ok := s.orders[userID]
	if !ok {
		s.mu.Unlock()
		return domain.Order{}, false
	}

	now := s.now()
	o.Status = domain.StatusConfirmed
	o.ConfirmedAt = &now
	s.advance(o, InputConfirmed)
	s.touch(o)
	confirmed := *o
	s.mu.Unlock()

	if s.notifier != nil {
		if err := s.notifier.OrderConfirmed(ctx, confirmed); err != nil {
			s.logger.Error("order confirmation notification failed",
				zap.String("orderId", confirmed.OrderID),
				zap.Error(err),
			)
		}
	}
	return confirmed, true
}

// Delete discards the user's order, if any.
func (s *Store) Delete(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[userID]; !ok {
		return false
	}
	delete(s.orders, userID)
	return true
}

// All returns every tracked order. Linear scan, administrative use only.
func (s *Store) All() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out
}

func (s *Store) ByStatus(status domain.Status) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out
}

// advance moves the step per the transition table. Steps only ever move
// forward; a stale input against a later step is ignored.
func (s *Store) advance(o *domain.Order, input Input) {
	next, ok := NextStep(o.Step, input)
	if !ok {
		return
	}
	if o.Step.Before(next) {
		o.Step = next
	}
}

// touch keeps UpdatedAt monotonically non-decreasing.
func (s *Store) touch(o *domain.Order) {
	if now := s.now(); now.After(o.UpdatedAt) {
		o.UpdatedAt = now
	}
}
