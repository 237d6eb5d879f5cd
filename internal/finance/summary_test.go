package finance

import "testing"

func TestSummarize(t *testing.T) {
	transactions := []*Transaction{
		{Type: TypeIncome, Amount: 100, Category: "Salary"},
		{Type: TypeExpense, Amount: 40, Category: "Food"},
	}

	summary := Summarize("2025-06", transactions)

	if summary.TotalIncome != 100 {
		t.Errorf("total income: want 100, got %v", summary.TotalIncome)
	}
	if summary.TotalExpense != 40 {
		t.Errorf("total expense: want 40, got %v", summary.TotalExpense)
	}
	if summary.Balance != 60 {
		t.Errorf("balance: want 60, got %v", summary.Balance)
	}
	if summary.CategoryData["Food"] != 40 {
		t.Errorf("category data for Food: want 40, got %v", summary.CategoryData["Food"])
	}
	if _, ok := summary.CategoryData["Salary"]; ok {
		t.Error("income categories must not appear in the expense breakdown")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize("2025-06", nil)
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Balance != 0 {
		t.Errorf("empty month should produce zero totals: %+v", summary)
	}
	if len(summary.CategoryData) != 0 {
		t.Errorf("empty month should produce empty category data: %+v", summary.CategoryData)
	}
}

func TestBandFor(t *testing.T) {
	cases := []struct {
		name   string
		spent  float64
		amount float64
		want   BudgetBand
	}{
		{"WellUnder", 50, 100, BandGreen},
		{"Exactly75", 75, 100, BandGreen},
		{"JustOver75", 75.01, 100, BandYellow},
		{"Mid", 80, 100, BandYellow},
		{"Exactly90", 90, 100, BandYellow},
		{"JustOver90", 90.01, 100, BandRed},
		{"Over", 95, 100, BandRed},
		{"Overspent", 120, 100, BandRed},
		{"ZeroAmountNoSpend", 0, 0, BandGreen},
		{"ZeroAmountSpent", 10, 0, BandRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BandFor(tc.spent, tc.amount); got != tc.want {
				t.Errorf("BandFor(%v, %v) = %s, want %s", tc.spent, tc.amount, got, tc.want)
			}
		})
	}
}
