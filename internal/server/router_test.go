package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"bagbot/internal/catalog"
	"bagbot/internal/conversation"
	"bagbot/internal/line"
	"bagbot/internal/order"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	store := order.NewStore(order.NewLogNotifier(logger), logger)
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	handler := conversation.NewHandler(store, cat, logger)
	sender, err := line.NewSender("test-token", logger)
	if err != nil {
		t.Fatalf("creating sender: %v", err)
	}
	webhook := line.NewWebhook("test-secret", handler, sender, logger)

	return NewRouter(webhook, logger)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "塑膠袋訂購") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestRouter_WebhookRejectsBadSignature(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"destination":"x","events":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/webhook", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Line-Signature", "bogus")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
