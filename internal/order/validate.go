package order

import "bagbot/internal/domain"

type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateOrder checks that an order carries everything confirmation needs.
// The check order is fixed and user-visible: name, contact, phone, size,
// thickness, material, color, delivery date.
func ValidateOrder(o domain.Order) ValidationResult {
	var errs []string

	if o.CompanyInfo.Name == "" {
		errs = append(errs, "缺少公司名稱")
	}
	if o.CompanyInfo.Contact == "" {
		errs = append(errs, "缺少負責人姓名")
	}
	if o.CompanyInfo.Phone == "" {
		errs = append(errs, "缺少聯絡電話")
	}

	if o.ProductSelection.Size == "" {
		errs = append(errs, "未選擇尺寸")
	}
	if o.ProductSelection.Thickness == "" {
		errs = append(errs, "未選擇厚度")
	}
	if o.ProductSelection.Material == "" {
		errs = append(errs, "未選擇材質")
	}
	if o.ProductSelection.Color == "" {
		errs = append(errs, "未選擇顏色")
	}

	if o.DeliveryDate == "" {
		errs = append(errs, "未選擇出貨日期")
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
