package conversation

import (
	"context"
	"strings"
)

const greetingText = "👋 歡迎來到塑膠袋訂購系統！\n\n" +
	"請輸入以下指令：\n" +
	"• 「開始訂購」- 開始新的訂購流程\n" +
	"• 「查看訂單」- 查看現有訂單狀態\n" +
	"• 「說明」- 查看使用說明"

const helpText = `📖 使用說明

🔸 開始訂購流程：
1️⃣ 填寫公司基本資料
2️⃣ 選擇產品規格（尺寸、厚度、材質、顏色）
3️⃣ 選擇出貨日期（7天後開始）
4️⃣ 確認訂單資訊

🔸 可用指令：
• 「開始訂購」- 開始新訂單
• 「查看訂單」- 查看目前訂單狀態
• 「說明」- 顯示此說明

🔸 注意事項：
• 出貨日期最快為下單後7天
• 所有規格選擇完成後才能進入下一步
• 如有特殊需求請在客製化選項中說明

如有任何問題，歡迎隨時聯絡我們！`

type commandRoute struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, ev Event) (Reply, error)
}

// commandRoutes is the ordered (predicate, handler) list evaluated for free
// text outside any data-entry step. First match wins; a message hitting
// multiple keyword classes resolves to the earliest route.
func (h *Handler) commandRoutes() []commandRoute {
	return []commandRoute{
		{
			name:   "start",
			match:  matchAny([]string{"開始", "訂購"}, "start"),
			handle: h.showMainMenu,
		},
		{
			name:   "view",
			match:  matchAny([]string{"查看", "訂單", "狀態"}, ""),
			handle: h.showOrderStatus,
		},
		{
			name:  "help",
			match: matchAny([]string{"幫助", "說明"}, "help"),
			handle: func(context.Context, Event) (Reply, error) {
				return textReply(helpText), nil
			},
		},
	}
}

// matchAny reports whether the lowercased text contains any of the keywords
// or equals the exact alias.
func matchAny(keywords []string, exact string) func(string) bool {
	return func(text string) bool {
		lower := strings.ToLower(strings.TrimSpace(text))
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return exact != "" && lower == exact
	}
}

func (h *Handler) showMainMenu(_ context.Context, _ Event) (Reply, error) {
	return cardReply(mainMenuCard()), nil
}

func (h *Handler) showOrderStatus(_ context.Context, ev Event) (Reply, error) {
	o, ok := h.store.Get(ev.UserID)
	if !ok {
		return textReply(noOrderText), nil
	}
	return textReply(FormatOrderSummary(o)), nil
}
