package conversation

import (
	"fmt"
	"net/url"
	"time"

	"bagbot/internal/catalog"
	"bagbot/internal/domain"
	"bagbot/internal/order"
)

// maxDateButtons caps how many of the computed delivery dates become
// buttons: a bubble footer gets crowded past four. The full enumeration is
// still computed for future carousel use.
const maxDateButtons = 4

func mainMenuCard() Card {
	return Card{
		AltText: "塑膠袋訂購系統",
		Title:   "🛍️ 塑膠袋訂購系統",
		Lines: []CardLine{
			{Text: "歡迎使用我們的訂購系統！"},
			{Text: "請選擇您要進行的操作：", Muted: true},
		},
		Buttons: []Button{
			{Label: "🆕 開始新訂單", Action: actionStartOrder, Primary: true},
			{Label: "📋 查看現有訂單", Action: actionViewOrder},
			{Label: "❓ 使用說明", Action: actionShowHelp},
		},
	}
}

func productIntroCard() Card {
	return Card{
		AltText: "選擇產品規格",
		Title:   "步驟 2/4：產品規格選擇",
		Lines: []CardLine{
			{Text: "請依序選擇產品規格："},
			{Separator: true},
			{Text: "📏 尺寸 → 📐 厚度 → 🧪 材質 → 🎨 顏色", Muted: true},
		},
		Buttons: []Button{
			{Label: "📏 選擇尺寸", Action: actionSelectSize, Primary: true},
		},
	}
}

// optionCard renders one selection stage: every catalog option becomes a
// button, with unit-price deltas listed in the body.
func optionCard(title, action string, options []catalog.Option) Card {
	card := Card{
		AltText: title,
		Title:   title,
		Lines:   []CardLine{{Text: "請選擇其中一項："}},
	}
	for _, opt := range options {
		line := opt.Name
		if opt.Price > 0 {
			line += fmt.Sprintf("（+%.2f元/個）", opt.Price)
		}
		card.Lines = append(card.Lines, CardLine{Text: line + " " + opt.Description, Muted: true})
		card.Buttons = append(card.Buttons, Button{
			Label:  opt.Name,
			Action: action,
			Params: url.Values{"value": {opt.ID}},
		})
	}
	return card
}

func customPromptCard(cat *catalog.Catalog) Card {
	return Card{
		AltText: "客製化需求",
		Title:   "是否有客製化需求？",
		Lines: []CardLine{
			{Text: customOptionsHint(cat), Muted: true},
		},
		Buttons: []Button{
			{Label: "有客製化需求", Action: actionHasCustom, Primary: true},
			{Label: "沒有，直接下一步", Action: actionNoCustom},
		},
	}
}

func customOptionsHint(cat *catalog.Catalog) string {
	hint := "例如："
	for i, opt := range cat.CustomOptions {
		if i > 0 {
			hint += "、"
		}
		hint += opt.Name
	}
	return hint
}

func deliveryDateCard(now time.Time, settings catalog.DeliverySettings) Card {
	dates := order.AvailableDeliveryDates(now, settings)

	card := Card{
		AltText: "選擇出貨日期",
		Title:   "步驟 3/4：選擇出貨日期",
		Lines: []CardLine{
			{Text: "請選擇預計出貨日期："},
			{Text: fmt.Sprintf("⚠️ 最快出貨時間為下單後%d天", settings.MinimumDays), Muted: true},
		},
	}
	for _, d := range dates[:maxDateButtons] {
		card.Buttons = append(card.Buttons, Button{
			Label:  "🗓️ " + d.Display,
			Action: actionSelectDate,
			Params: url.Values{"date": {d.Date}},
		})
	}
	return card
}

func confirmationCard(o domain.Order) Card {
	return Card{
		AltText: "確認訂單",
		Title:   "步驟 4/4：確認訂單",
		Lines: []CardLine{
			{Text: "請確認以下訂單內容："},
			{Separator: true},
			{Text: FormatOrderSummary(o), Muted: true},
		},
		Buttons: []Button{
			{Label: "✅ 確認訂單", Action: actionConfirmOrder, Primary: true},
			{Label: "❌ 取消訂單", Action: actionCancelOrder},
		},
	}
}
