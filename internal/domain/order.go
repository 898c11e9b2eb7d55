package domain

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
)

// Step identifies the stage of the linear intake flow for one order.
type Step string

const (
	StepCompanyInfo      Step = "company_info"
	StepProductSelection Step = "product_selection"
	StepQuantityInput    Step = "quantity_input"
	StepCustomInput      Step = "custom_input"
	StepDeliveryDate     Step = "delivery_date"
	StepConfirmation     Step = "confirmation"
	StepCompleted        Step = "completed"
)

var stepOrder = map[Step]int{
	StepCompanyInfo:      0,
	StepProductSelection: 1,
	StepQuantityInput:    2,
	StepCustomInput:      3,
	StepDeliveryDate:     4,
	StepConfirmation:     5,
	StepCompleted:        6,
}

// Before reports whether s comes earlier than other in the intake sequence.
// Unknown steps sort before everything so they never block an advance.
func (s Step) Before(other Step) bool {
	return stepOrder[s] < stepOrder[other]
}

var stepNames = map[Step]string{
	StepCompanyInfo:      "填寫公司資訊",
	StepProductSelection: "選擇產品規格",
	StepQuantityInput:    "輸入訂購數量",
	StepCustomInput:      "填寫客製化需求",
	StepDeliveryDate:     "選擇出貨日期",
	StepConfirmation:     "確認訂單",
	StepCompleted:        "訂單完成",
}

func StepName(s Step) string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "未知步驟"
}

type CompanyInfo struct {
	Name    string
	Contact string
	Phone   string
	Invoice string
}

type ProductSelection struct {
	Size          string
	SizeName      string
	Thickness     string
	ThicknessName string
	Material      string
	MaterialName  string
	Color         string
	ColorName     string
	Quantity      int
}

// Order is the per-user session record tracking progress through the intake
// workflow. Exactly one order exists per user at a time.
type Order struct {
	OrderID            string
	UserID             string
	Status             Status
	Step               Step
	CompanyInfo        CompanyInfo
	ProductSelection   ProductSelection
	CustomRequirements string
	DeliveryDate       string
	TotalPrice         float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ConfirmedAt        *time.Time
}
