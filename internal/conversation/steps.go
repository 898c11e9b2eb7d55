package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"bagbot/internal/domain"
	"bagbot/internal/order"
)

const (
	noOrderText = "❌ 找不到您的訂單資訊。\n請先開始新的訂購流程。"

	companyInfoPromptText = "📝 步驟 1/4：請提供公司資訊\n\n" +
		"請按照以下格式填寫：\n\n" +
		"公司名稱：ABC塑膠公司\n" +
		"負責人：王小明\n" +
		"電話：02-12345678\n" +
		"統編：需要/不需要\n\n" +
		"請直接回覆上述資訊。"

	companyInfoFormatErrorText = "❌ 資訊格式不正確，請按照以下格式填寫：\n\n" +
		"公司名稱：ABC公司\n" +
		"負責人：王小明\n" +
		"電話：02-12345678\n" +
		"統編：需要/不需要"

	quantityErrorText = "❌ 請輸入有效的數量（最少100個）\n\n例如：1000"
)

// minOrderQuantity is the global floor enforced on quantity input. Catalog
// per-size minimums are shown as guidance only.
const minOrderQuantity = 100

func (h *Handler) handleCompanyInfoInput(ev Event) (Reply, error) {
	info := parseCompanyInfo(ev.Text)

	if info.Name == "" || info.Contact == "" || info.Phone == "" {
		// Stay in the step, leave the order untouched.
		return textReply(companyInfoFormatErrorText), nil
	}

	if _, ok := h.store.MergeCompanyInfo(ev.UserID, info); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(productIntroCard()), nil
}

// parseCompanyInfo scans the text block line by line. The first recognized
// label per line wins; the value is whatever follows the first full-width
// or half-width colon.
func parseCompanyInfo(text string) domain.CompanyInfo {
	var info domain.CompanyInfo

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "公司") || strings.Contains(line, "名稱"):
			info.Name = labelValue(line)
		case strings.Contains(line, "負責人") || strings.Contains(line, "聯絡人"):
			info.Contact = labelValue(line)
		case strings.Contains(line, "電話") || strings.Contains(line, "手機"):
			info.Phone = labelValue(line)
		case strings.Contains(line, "統編") || strings.Contains(line, "發票"):
			value := labelValue(line)
			if value == "" {
				break
			}
			if strings.Contains(value, "不需要") {
				info.Invoice = "不需要統一發票"
			} else if strings.Contains(value, "需要") {
				info.Invoice = "需要統一發票"
			}
		}
	}
	return info
}

func labelValue(line string) string {
	for _, sep := range []string{"：", ":"} {
		if _, value, found := strings.Cut(line, sep); found {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (h *Handler) handleQuantityInput(ev Event, o domain.Order) (Reply, error) {
	quantity, ok := parseQuantity(ev.Text)
	if !ok || quantity < minOrderQuantity {
		return textReply(quantityErrorText), nil
	}

	if _, ok := h.store.MergeProductSelection(ev.UserID, domain.ProductSelection{Quantity: quantity}); !ok {
		return textReply(noOrderText), nil
	}
	h.store.Advance(ev.UserID, order.InputQuantity)

	return cardReply(customPromptCard(h.cat)), nil
}

// parseQuantity strips every non-digit rune and parses the rest.
func parseQuantity(text string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)

	if digits == "" {
		return 0, false
	}
	quantity, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return quantity, true
}

func (h *Handler) handleCustomInput(ev Event) (Reply, error) {
	if _, ok := h.store.SetCustomRequirements(ev.UserID, ev.Text); !ok {
		return textReply(noOrderText), nil
	}
	return cardReply(deliveryDateCard(h.now(), h.cat.Delivery)), nil
}

func quantityPromptText(o domain.Order, suggestedMin int) string {
	return fmt.Sprintf("📦 請輸入訂購數量（最少%d個）\n\n"+
		"您選擇的尺寸：%s\n"+
		"※ 建議訂購量：%d 個以上\n\n"+
		"例如：1000",
		minOrderQuantity, o.ProductSelection.SizeName, suggestedMin)
}
