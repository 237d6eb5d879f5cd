package finance

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// BudgetBand is the utilization traffic light shown next to each budget.
type BudgetBand string

const (
	BandGreen  BudgetBand = "green"
	BandYellow BudgetBand = "yellow"
	BandRed    BudgetBand = "red"
)

// BandFor classifies spent against amount. Both thresholds are strict:
// exactly 75% is still green and exactly 90% is still yellow.
func BandFor(spent, amount float64) BudgetBand {
	if amount <= 0 {
		if spent > 0 {
			return BandRed
		}
		return BandGreen
	}
	ratio := spent / amount
	switch {
	case ratio > 0.90:
		return BandRed
	case ratio > 0.75:
		return BandYellow
	default:
		return BandGreen
	}
}

// DefaultCategories seeds the category picker; transactions may still carry
// any free-form category string.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Housing",
	"Utilities",
	"Entertainment",
	"Health",
	"Shopping",
	"Salary",
	"Other",
}
