package line

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagbot/internal/conversation"
)

func TestBuildBubble(t *testing.T) {
	card := conversation.Card{
		AltText: "測試卡片",
		Title:   "🛍️ 測試",
		Lines: []conversation.CardLine{
			{Text: "第一行"},
			{Separator: true},
			{Text: "補充說明", Muted: true},
		},
		Buttons: []conversation.Button{
			{Label: "確認", Action: "confirm_order", Primary: true},
			{Label: "取消", Action: "cancel_order"},
		},
	}

	bubble := buildBubble(card)

	assert.Equal(t, "bubble", bubble["type"])

	header, ok := bubble["header"].(map[string]any)
	require.True(t, ok, "header missing")
	headerText := header["contents"].([]any)[0].(map[string]any)
	assert.Equal(t, "🛍️ 測試", headerText["text"])

	body, ok := bubble["body"].(map[string]any)
	require.True(t, ok, "body missing")
	contents := body["contents"].([]any)
	require.Len(t, contents, 3)
	assert.Equal(t, "第一行", contents[0].(map[string]any)["text"])
	assert.Equal(t, "separator", contents[1].(map[string]any)["type"])
	muted := contents[2].(map[string]any)
	assert.Equal(t, "#666666", muted["color"])

	footer, ok := bubble["footer"].(map[string]any)
	require.True(t, ok, "footer missing")
	buttons := footer["contents"].([]any)
	require.Len(t, buttons, 2)

	primary := buttons[0].(map[string]any)
	assert.Equal(t, "primary", primary["style"])
	action := primary["action"].(map[string]any)
	assert.Equal(t, "postback", action["type"])
	assert.Equal(t, "確認", action["label"])
	assert.Equal(t, "action=confirm_order", action["data"])

	assert.Equal(t, "secondary", buttons[1].(map[string]any)["style"])
}

func TestBuildBubble_TextOnlyCardHasNoFooter(t *testing.T) {
	bubble := buildBubble(conversation.Card{
		Title: "標題",
		Lines: []conversation.CardLine{{Text: "內容"}},
	})

	assert.NotContains(t, bubble, "footer")
	assert.Contains(t, bubble, "body")
}

func TestFlexContainer_RoundTrip(t *testing.T) {
	card := conversation.Card{
		AltText: "訂單確認",
		Title:   "📋 訂單確認",
		Lines:   []conversation.CardLine{{Text: "請確認以下訂單資訊"}},
		Buttons: []conversation.Button{
			{Label: "確認訂單", Action: "confirm_order", Primary: true},
		},
	}

	container, err := flexContainer(card)
	require.NoError(t, err)
	require.NotNil(t, container)
}
