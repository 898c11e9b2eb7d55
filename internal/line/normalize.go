package line

import (
	"net/url"
	"strings"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"bagbot/internal/conversation"
)

// normalizeEvent maps a raw platform event onto the conversation model.
// Events without a user identity or without text/postback content are
// dropped (stickers, images, join notifications and the like).
func normalizeEvent(raw webhook.EventInterface) (conversation.Event, bool) {
	switch e := raw.(type) {
	case webhook.MessageEvent:
		msg, ok := e.Message.(webhook.TextMessageContent)
		if !ok {
			return conversation.Event{}, false
		}
		userID, ok := sourceUserID(e.Source)
		if !ok {
			return conversation.Event{}, false
		}
		return conversation.Event{
			Kind:       conversation.KindText,
			UserID:     userID,
			ReplyToken: e.ReplyToken,
			Text:       strings.TrimSpace(msg.Text),
		}, true

	case webhook.PostbackEvent:
		userID, ok := sourceUserID(e.Source)
		if !ok || e.Postback == nil {
			return conversation.Event{}, false
		}
		data, err := url.ParseQuery(e.Postback.Data)
		if err != nil {
			// malformed payload falls through as an unknown action
			data = url.Values{}
		}
		return conversation.Event{
			Kind:       conversation.KindPostback,
			UserID:     userID,
			ReplyToken: e.ReplyToken,
			Data:       data,
		}, true
	}

	return conversation.Event{}, false
}

func sourceUserID(src webhook.SourceInterface) (string, bool) {
	switch s := src.(type) {
	case webhook.UserSource:
		return s.UserId, s.UserId != ""
	case webhook.GroupSource:
		return s.UserId, s.UserId != ""
	case webhook.RoomSource:
		return s.UserId, s.UserId != ""
	}
	return "", false
}
