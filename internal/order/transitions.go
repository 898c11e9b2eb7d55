package order

import "bagbot/internal/domain"

// Input classifies what kind of user action is being applied to an order.
// Step progression is data: the table below is the only place a step change
// is defined.
type Input string

const (
	InputCompanyInfo     Input = "company_info_submitted"
	InputOptionsComplete Input = "options_complete"
	InputQuantity        Input = "quantity_submitted"
	InputCustomText      Input = "custom_text_submitted"
	InputCustomSkipped   Input = "custom_skipped"
	InputDateSelected    Input = "date_selected"
	InputConfirmed       Input = "order_confirmed"
)

type transitionKey struct {
	step  domain.Step
	input Input
}

var transitions = map[transitionKey]domain.Step{
	{domain.StepCompanyInfo, InputCompanyInfo}:          domain.StepProductSelection,
	{domain.StepProductSelection, InputOptionsComplete}: domain.StepQuantityInput,
	{domain.StepQuantityInput, InputQuantity}:           domain.StepCustomInput,
	{domain.StepCustomInput, InputCustomText}:           domain.StepDeliveryDate,
	{domain.StepCustomInput, InputCustomSkipped}:        domain.StepDeliveryDate,
	{domain.StepDeliveryDate, InputDateSelected}:        domain.StepConfirmation,
	{domain.StepConfirmation, InputConfirmed}:           domain.StepCompleted,
}

// NextStep resolves the transition table for (current step, input). The
// second return value is false when the input does not apply to the step.
func NextStep(current domain.Step, input Input) (domain.Step, bool) {
	next, ok := transitions[transitionKey{current, input}]
	return next, ok
}
