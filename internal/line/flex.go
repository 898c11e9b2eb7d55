package line

import (
	"encoding/json"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"bagbot/internal/conversation"
)

// buildBubble lowers the platform-neutral card onto the Flex bubble layout:
// header title, body text blocks and separators, footer postback buttons.
func buildBubble(card conversation.Card) map[string]any {
	bubble := map[string]any{"type": "bubble"}

	if card.Title != "" {
		bubble["header"] = map[string]any{
			"type":   "box",
			"layout": "vertical",
			"contents": []any{map[string]any{
				"type":   "text",
				"text":   card.Title,
				"weight": "bold",
				"size":   "lg",
				"color":  "#1DB446",
			}},
			"paddingAll": "lg",
		}
	}

	if len(card.Lines) > 0 {
		contents := make([]any, 0, len(card.Lines))
		for _, line := range card.Lines {
			if line.Separator {
				contents = append(contents, map[string]any{
					"type":   "separator",
					"margin": "md",
				})
				continue
			}
			text := map[string]any{
				"type":   "text",
				"text":   line.Text,
				"wrap":   true,
				"margin": "md",
			}
			if line.Muted {
				text["size"] = "sm"
				text["color"] = "#666666"
			}
			contents = append(contents, text)
		}
		bubble["body"] = map[string]any{
			"type":     "box",
			"layout":   "vertical",
			"contents": contents,
		}
	}

	if len(card.Buttons) > 0 {
		contents := make([]any, 0, len(card.Buttons))
		for _, btn := range card.Buttons {
			style := "secondary"
			if btn.Primary {
				style = "primary"
			}
			contents = append(contents, map[string]any{
				"type":   "button",
				"style":  style,
				"height": "sm",
				"action": map[string]any{
					"type":  "postback",
					"label": btn.Label,
					"data":  btn.Data(),
				},
			})
		}
		bubble["footer"] = map[string]any{
			"type":     "box",
			"layout":   "vertical",
			"spacing":  "sm",
			"contents": contents,
		}
	}

	return bubble
}

func flexContainer(card conversation.Card) (messaging_api.FlexContainerInterface, error) {
	data, err := json.Marshal(buildBubble(card))
	if err != nil {
		return nil, fmt.Errorf("encoding flex bubble: %w", err)
	}

	container, err := messaging_api.UnmarshalFlexContainer(data)
	if err != nil {
		return nil, fmt.Errorf("decoding flex container: %w", err)
	}
	return container, nil
}
