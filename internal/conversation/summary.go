package conversation

import (
	"fmt"
	"strings"
	"time"

	"bagbot/internal/domain"
)

const (
	notFilled   = "未填寫"
	notSelected = "未選擇"
)

// FormatOrderSummary renders the user-facing order summary block.
func FormatOrderSummary(o domain.Order) string {
	var b strings.Builder

	b.WriteString("📋 訂單摘要\n\n")

	b.WriteString("🏢 公司資訊\n")
	fmt.Fprintf(&b, "公司名稱：%s\n", orValue(o.CompanyInfo.Name, notFilled))
	fmt.Fprintf(&b, "負責人：%s\n", orValue(o.CompanyInfo.Contact, notFilled))
	fmt.Fprintf(&b, "聯絡電話：%s\n", orValue(o.CompanyInfo.Phone, notFilled))
	fmt.Fprintf(&b, "統一發票：%s\n\n", orValue(o.CompanyInfo.Invoice, notFilled))

	b.WriteString("📦 產品規格\n")
	fmt.Fprintf(&b, "尺寸：%s\n", orValue(o.ProductSelection.SizeName, notSelected))
	fmt.Fprintf(&b, "厚度：%s\n", orValue(o.ProductSelection.ThicknessName, notSelected))
	fmt.Fprintf(&b, "材質：%s\n", orValue(o.ProductSelection.MaterialName, notSelected))
	fmt.Fprintf(&b, "顏色：%s\n", orValue(o.ProductSelection.ColorName, notSelected))
	if o.ProductSelection.Quantity > 0 {
		fmt.Fprintf(&b, "數量：%s 個\n", formatThousands(o.ProductSelection.Quantity))
	}
	if o.CustomRequirements != "" {
		fmt.Fprintf(&b, "客製化需求：%s\n", o.CustomRequirements)
	}
	b.WriteString("\n")

	b.WriteString("🚚 出貨資訊\n")
	fmt.Fprintf(&b, "預計出貨日：%s\n\n", formatDeliveryDate(o.DeliveryDate))

	b.WriteString("📄 訂單資訊\n")
	fmt.Fprintf(&b, "訂單編號：%s\n", o.OrderID)
	fmt.Fprintf(&b, "建立時間：%s\n", o.CreatedAt.Format("2006/01/02 15:04"))

	return b.String()
}

func orValue(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatDeliveryDate(date string) string {
	if date == "" {
		return notSelected
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return day.Format("2006/01/02") + " " + weekdayName(day.Weekday())
}

func weekdayName(d time.Weekday) string {
	names := [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}
	return names[d]
}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
