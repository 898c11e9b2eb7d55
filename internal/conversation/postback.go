package conversation

import (
	"context"
	"strings"

	"bagbot/internal/catalog"
	"bagbot/internal/domain"
	"bagbot/internal/order"
)

const (
	notImplementedText = "功能開發中，敬請期待！"

	orderCancelledText = "🗑️ 訂單已取消。\n如需重新訂購，請輸入「開始訂購」。"
)

// Postback actions. Buttons carry these in their encoded data payload.
const (
	actionStartOrder   = "start_order"
	actionViewOrder    = "view_order"
	actionShowHelp     = "show_help"
	actionSelectSize   = "select_size"
	actionOptSize      = "opt_size"
	actionOptThickness = "opt_thickness"
	actionOptMaterial  = "opt_material"
	actionOptColor     = "opt_color"
	actionHasCustom    = "has_custom"
	actionNoCustom     = "no_custom"
	actionSelectDate   = "select_date"
	actionConfirmOrder = "confirm_order"
	actionCancelOrder  = "cancel_order"
)

func (h *Handler) handlePostback(ctx context.Context, ev Event) (Reply, error) {
	switch ev.Data.Get("action") {
	case actionStartOrder:
		return h.startOrder(ev)
	case actionViewOrder:
		return h.showOrderStatus(ctx, ev)
	case actionShowHelp:
		return textReply(helpText), nil
	case actionSelectSize:
		return cardReply(optionCard("📏 選擇尺寸", actionOptSize, h.cat.Sizes)), nil
	case actionOptSize:
		return h.chooseSize(ev)
	case actionOptThickness:
		return h.chooseThickness(ev)
	case actionOptMaterial:
		return h.chooseMaterial(ev)
	case actionOptColor:
		return h.chooseColor(ev)
	case actionHasCustom:
		return textReply(customRequirementsPrompt(h.cat)), nil
	case actionNoCustom:
		return h.skipCustomRequirements(ev)
	case actionSelectDate:
		return h.selectDate(ev)
	case actionConfirmOrder:
		return h.confirmOrder(ctx, ev)
	case actionCancelOrder:
		return h.cancelOrder(ev)
	default:
		return textReply(notImplementedText), nil
	}
}

func (h *Handler) startOrder(ev Event) (Reply, error) {
	h.store.Create(ev.UserID)
	return textReply(companyInfoPromptText), nil
}

// The selection sub-flow chains one option card into the next: size,
// thickness, material, color. Choosing the color completes the selection
// and moves the order to quantity input.

func (h *Handler) chooseSize(ev Event) (Reply, error) {
	opt, ok := h.cat.SizeByID(ev.Data.Get("value"))
	if !ok {
		return cardReply(optionCard("📏 選擇尺寸", actionOptSize, h.cat.Sizes)), nil
	}
	if _, ok := h.store.MergeProductSelection(ev.UserID, domain.ProductSelection{
		Size: opt.ID, SizeName: opt.Name,
	}); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(optionCard("📐 選擇厚度", actionOptThickness, h.cat.Thicknesses)), nil
}

func (h *Handler) chooseThickness(ev Event) (Reply, error) {
	opt, ok := h.cat.ThicknessByID(ev.Data.Get("value"))
	if !ok {
		return cardReply(optionCard("📐 選擇厚度", actionOptThickness, h.cat.Thicknesses)), nil
	}
	if _, ok := h.store.MergeProductSelection(ev.UserID, domain.ProductSelection{
		Thickness: opt.ID, ThicknessName: opt.Name,
	}); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(optionCard("🧪 選擇材質", actionOptMaterial, h.cat.Materials)), nil
}

func (h *Handler) chooseMaterial(ev Event) (Reply, error) {
	opt, ok := h.cat.MaterialByID(ev.Data.Get("value"))
	if !ok {
		return cardReply(optionCard("🧪 選擇材質", actionOptMaterial, h.cat.Materials)), nil
	}
	if _, ok := h.store.MergeProductSelection(ev.UserID, domain.ProductSelection{
		Material: opt.ID, MaterialName: opt.Name,
	}); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(optionCard("🎨 選擇顏色", actionOptColor, h.cat.Colors)), nil
}

func (h *Handler) chooseColor(ev Event) (Reply, error) {
	opt, ok := h.cat.ColorByID(ev.Data.Get("value"))
	if !ok {
		return cardReply(optionCard("🎨 選擇顏色", actionOptColor, h.cat.Colors)), nil
	}
	o, merged := h.store.MergeProductSelection(ev.UserID, domain.ProductSelection{
		Color: opt.ID, ColorName: opt.Name,
	})
	if !merged {
		return textReply(noOrderText), nil
	}

	h.store.Advance(ev.UserID, order.InputOptionsComplete)
	return textReply(quantityPromptText(o, h.cat.MinimumQuantity(o.ProductSelection.Size))), nil
}

func customRequirementsPrompt(cat *catalog.Catalog) string {
	names := make([]string, 0, len(cat.CustomOptions))
	for _, opt := range cat.CustomOptions {
		names = append(names, opt.Name)
	}
	return "✏️ 請描述您的客製化需求：\n\n例如：" + strings.Join(names, "、")
}

func (h *Handler) skipCustomRequirements(ev Event) (Reply, error) {
	if _, ok := h.store.Advance(ev.UserID, order.InputCustomSkipped); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(deliveryDateCard(h.now(), h.cat.Delivery)), nil
}

func (h *Handler) selectDate(ev Event) (Reply, error) {
	date := ev.Data.Get("date")
	if date == "" {
		return cardReply(deliveryDateCard(h.now(), h.cat.Delivery)), nil
	}

	o, ok := h.store.SetDeliveryDate(ev.UserID, date)
	if !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(confirmationCard(o)), nil
}

func (h *Handler) confirmOrder(ctx context.Context, ev Event) (Reply, error) {
	o, ok := h.store.Get(ev.UserID)
	if !ok {
		return textReply(noOrderText), nil
	}

	if result := order.ValidateOrder(o); !result.Valid {
		text := "❌ 訂單資訊不完整：\n• " + strings.Join(result.Errors, "\n• ") +
			"\n\n請補齊後再確認訂單。"
		return textReply(text), nil
	}

	confirmed, ok := h.store.Confirm(ctx, ev.UserID)
	if !ok {
		return textReply(noOrderText), nil
	}

	text := "✅ 訂單已確認！\n\n" + FormatOrderSummary(confirmed) +
		"\n我們將盡快與您聯絡，感謝您的訂購！"
	return textReply(text), nil
}

func (h *Handler) cancelOrder(ev Event) (Reply, error) {
	if !h.store.Delete(ev.UserID) {
		return textReply(noOrderText), nil
	}
	return textReply(orderCancelledText), nil
}
