package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bagbot/internal/domain"
)

func TestValidateOrder_EmptyOrder(t *testing.T) {
	result := ValidateOrder(domain.Order{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"缺少公司名稱",
		"缺少負責人姓名",
		"缺少聯絡電話",
		"未選擇尺寸",
		"未選擇厚度",
		"未選擇材質",
		"未選擇顏色",
		"未選擇出貨日期",
	}, result.Errors)
}

func TestValidateOrder_Complete(t *testing.T) {
	result := ValidateOrder(completeOrder())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateOrder_SingleMissingField(t *testing.T) {
	o := completeOrder()
	o.ProductSelection.Material = ""

	result := ValidateOrder(o)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"未選擇材質"}, result.Errors)
}

func completeOrder() domain.Order {
	return domain.Order{
		CompanyInfo: domain.CompanyInfo{
			Name:    "ACME",
			Contact: "Lee",
			Phone:   "02-1111-2222",
		},
		ProductSelection: domain.ProductSelection{
			Size:      "medium",
			Thickness: "thick",
			Material:  "pe",
			Color:     "white",
			Quantity:  1200,
		},
		DeliveryDate: "2026-09-04",
	}
}
