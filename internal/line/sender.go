package line

import (
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"go.uber.org/zap"

	"bagbot/internal/conversation"
)

// Sender delivers one reply per inbound event through the Messaging API.
// Delivery is fire-and-forget from the flow's perspective: failures are the
// caller's to log, never to retry.
type Sender struct {
	api    *messaging_api.MessagingApiAPI
	logger *zap.Logger
}

func NewSender(channelToken string, logger *zap.Logger) (*Sender, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelToken)
	if err != nil {
		return nil, fmt.Errorf("creating messaging API client: %w", err)
	}
	return &Sender{api: api, logger: logger}, nil
}

func (s *Sender) Reply(replyToken string, reply conversation.Reply) error {
	message, err := toMessage(reply)
	if err != nil {
		return err
	}

	_, err = s.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages:   []messaging_api.MessageInterface{message},
	})
	if err != nil {
		return fmt.Errorf("sending reply: %w", err)
	}
	return nil
}

func toMessage(reply conversation.Reply) (messaging_api.MessageInterface, error) {
	if reply.Card != nil {
		contents, err := flexContainer(*reply.Card)
		if err != nil {
			return nil, err
		}
		return messaging_api.FlexMessage{
			AltText:  reply.Card.AltText,
			Contents: contents,
		}, nil
	}
	return messaging_api.TextMessage{Text: reply.Text}, nil
}
