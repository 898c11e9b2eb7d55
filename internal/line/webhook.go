package line

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"bagbot/internal/conversation"
)

// Replier delivers one outbound reply addressed by reply token.
type Replier interface {
	Reply(replyToken string, reply conversation.Reply) error
}

// Webhook receives LINE platform callbacks, verifies the channel signature
// and fans the batch out to the conversation handler. Events are processed
// concurrently; a failure in one does not stop the others, but any failure
// turns the batch acknowledgement into a 500 so the platform redelivers.
type Webhook struct {
	channelSecret string
	handler       *conversation.Handler
	sender        Replier
	logger        *zap.Logger
}

func NewWebhook(channelSecret string, handler *conversation.Handler, sender Replier, logger *zap.Logger) *Webhook {
	return &Webhook{
		channelSecret: channelSecret,
		handler:       handler,
		sender:        sender,
		logger:        logger,
	}
}

func (wh *Webhook) Handle(w http.ResponseWriter, r *http.Request) {
	logger := wh.logger.With(zap.String("traceId", uuid.New().String()))

	cb, err := webhook.ParseRequest(wh.channelSecret, r)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			logger.Warn("webhook signature verification failed", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		logger.Error("parsing webhook request failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	var g errgroup.Group
	for _, raw := range cb.Events {
		ev, ok := normalizeEvent(raw)
		if !ok {
			continue
		}
		g.Go(func() error {
			reply, handleErr := wh.handler.Handle(ctx, ev)
			if sendErr := wh.sender.Reply(ev.ReplyToken, reply); sendErr != nil {
				logger.Error("delivering reply failed",
					zap.String("userId", ev.UserID),
					zap.Error(sendErr))
			}
			return handleErr
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("processing webhook events failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
