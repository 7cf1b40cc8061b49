package payload

import (
	"spendly/internal/core"

	"github.com/jellydator/validation"
)

type ExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

func (e ExpenseRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&e.Category, validation.Required, validation.In(
			core.CategoryFood,
			core.CategoryUtilities,
			core.CategoryBills,
			core.CategoryMiscellaneous,
		)),
	)
}

func (e ExpenseRequest) ToMessage() core.ExpenseMessage {
	return core.ExpenseMessage{
		Amount:   e.Amount,
		Category: e.Category,
	}
}
