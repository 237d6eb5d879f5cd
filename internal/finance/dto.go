package finance

import "time"

type CreateTransactionDTO struct {
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
}

type UpdateTransactionDTO struct {
	Amount      *float64         `json:"amount"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Type        *TransactionType `json:"type"`
	Date        *time.Time       `json:"date"`
}

type CreateBudgetDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
	Notes    string  `json:"notes"`
}

type UpdateBudgetDTO struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Month    *string  `json:"month"`
	Notes    *string  `json:"notes"`
}

type BudgetResponse struct {
	Budget
	Band BudgetBand `json:"band"`
}

type MonthlySummary struct {
	Month        string             `json:"month"`
	TotalIncome  float64            `json:"total_income"`
	TotalExpense float64            `json:"total_expense"`
	Balance      float64            `json:"balance"`
	CategoryData map[string]float64 `json:"category_data"`
}
