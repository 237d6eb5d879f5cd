package finance

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaamkar-app/kaamkar-lambda/internal/auth"
	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidID           = errors.New("invalid id format")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrInvalidMonth        = errors.New("month must use the YYYY-MM format")
	ErrEmptyDescription    = errors.New("description must not be empty")
)

type FinanceService interface {
	CreateTransaction(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error)
	ListTransactions(ctx context.Context, category string, txType TransactionType) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, id string, dto UpdateTransactionDTO) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	CreateBudget(ctx context.Context, dto CreateBudgetDTO) (*BudgetResponse, error)
	ListBudgets(ctx context.Context, month string) ([]*BudgetResponse, error)
	UpdateBudget(ctx context.Context, id string, dto UpdateBudgetDTO) (*BudgetResponse, error)
	DeleteBudget(ctx context.Context, id string) error

	MonthlySummary(ctx context.Context, month string) (*MonthlySummary, error)
	Categories() []string

	// ReconcileSpent recomputes the cached spent aggregate of every budget.
	// Run by the nightly sweep; mutations also reconcile their own budgets.
	ReconcileSpent(ctx context.Context) error
}

type service struct {
	repo FinanceRepository
}

func NewService(repo FinanceRepository) FinanceService {
	return &service{repo: repo}
}

func monthBounds(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, 0), nil
}

func (s *service) CreateTransaction(ctx context.Context, dto CreateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if dto.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(dto.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}

	category := dto.Category
	if category == "" {
		category = "Other"
	}
	date := dto.Date
	if date.IsZero() {
		date = time.Now()
	}

	t := &Transaction{
		Amount:      dto.Amount,
		Description: dto.Description,
		Category:    category,
		Type:        dto.Type,
		Date:        date,
		UserID:      userID,
	}

	if err := s.repo.CreateTransaction(t); err != nil {
		log.WithError(err).Error("Failed to create transaction")
		return nil, err
	}

	s.reconcileBudgetsFor(ctx, userID, t.Category, t.Date)
	log.WithField("transaction_id", t.ID).Info("Transaction created")
	return t, nil
}

func (s *service) ListTransactions(ctx context.Context, category string, txType TransactionType) ([]*Transaction, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if txType != "" && !txType.IsValid() {
		return nil, ErrInvalidType
	}

	transactions, err := s.repo.ListTransactionsByUser(userID, category, txType)
	if err != nil {
		log.WithError(err).Error("Failed to list transactions")
		return nil, err
	}
	return transactions, nil
}

func (s *service) UpdateTransaction(ctx context.Context, id string, dto UpdateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	txID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	existing, err := s.repo.FindTransactionByIDAndUser(txID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	// Both the old and the new budget bucket need reconciling when the
	// category or date moves.
	oldCategory, oldDate := existing.Category, existing.Date

	if dto.Amount != nil {
		if *dto.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		existing.Amount = *dto.Amount
	}
	if dto.Description != nil {
		if strings.TrimSpace(*dto.Description) == "" {
			return nil, ErrEmptyDescription
		}
		existing.Description = *dto.Description
	}
	if dto.Category != nil {
		existing.Category = *dto.Category
	}
	if dto.Type != nil {
		if !dto.Type.IsValid() {
			return nil, ErrInvalidType
		}
		existing.Type = *dto.Type
	}
	if dto.Date != nil {
		existing.Date = *dto.Date
	}

	if err := s.repo.UpdateTransaction(existing); err != nil {
		log.WithError(err).Error("Failed to update transaction")
		return nil, err
	}

	s.reconcileBudgetsFor(ctx, userID, oldCategory, oldDate)
	if existing.Category != oldCategory || !existing.Date.Equal(oldDate) {
		s.reconcileBudgetsFor(ctx, userID, existing.Category, existing.Date)
	}
	return existing, nil
}

func (s *service) DeleteTransaction(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	txID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	existing, err := s.repo.FindTransactionByIDAndUser(txID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}

	if err := s.repo.DeleteTransaction(txID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTransactionNotFound
		}
		log.WithError(err).Error("Failed to delete transaction")
		return err
	}

	s.reconcileBudgetsFor(ctx, userID, existing.Category, existing.Date)
	log.WithField("transaction_id", id).Info("Transaction deleted")
	return nil
}

func (s *service) CreateBudget(ctx context.Context, dto CreateBudgetDTO) (*BudgetResponse, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if dto.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(dto.Category) == "" {
		return nil, ErrEmptyDescription
	}
	from, to, err := monthBounds(dto.Month)
	if err != nil {
		return nil, err
	}

	spent, err := s.repo.SumExpenses(userID, dto.Category, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to compute initial spent")
		return nil, err
	}

	b := &Budget{
		Category: dto.Category,
		Amount:   dto.Amount,
		Month:    dto.Month,
		Spent:    spent,
		Notes:    dto.Notes,
		UserID:   userID,
	}

	if err := s.repo.CreateBudget(b); err != nil {
		log.WithError(err).Error("Failed to create budget")
		return nil, err
	}

	log.WithField("budget_id", b.ID).Info("Budget created")
	return &BudgetResponse{Budget: *b, Band: BandFor(b.Spent, b.Amount)}, nil
}

func (s *service) ListBudgets(ctx context.Context, month string) ([]*BudgetResponse, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if month != "" {
		if _, _, err := monthBounds(month); err != nil {
			return nil, err
		}
	}

	budgets, err := s.repo.ListBudgetsByUser(userID, month)
	if err != nil {
		log.WithError(err).Error("Failed to list budgets")
		return nil, err
	}

	responses := make([]*BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, &BudgetResponse{Budget: *b, Band: BandFor(b.Spent, b.Amount)})
	}
	return responses, nil
}

func (s *service) UpdateBudget(ctx context.Context, id string, dto UpdateBudgetDTO) (*BudgetResponse, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	budgetID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	existing, err := s.repo.FindBudgetByIDAndUser(budgetID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}

	if dto.Category != nil {
		existing.Category = *dto.Category
	}
	if dto.Amount != nil {
		if *dto.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		existing.Amount = *dto.Amount
	}
	if dto.Month != nil {
		if _, _, err := monthBounds(*dto.Month); err != nil {
			return nil, err
		}
		existing.Month = *dto.Month
	}
	if dto.Notes != nil {
		existing.Notes = *dto.Notes
	}

	// Category or month moves change which transactions count as spent.
	from, to, err := monthBounds(existing.Month)
	if err != nil {
		return nil, err
	}
	spent, err := s.repo.SumExpenses(userID, existing.Category, from, to)
	if err != nil {
		return nil, err
	}
	existing.Spent = spent

	if err := s.repo.UpdateBudget(existing); err != nil {
		log.WithError(err).Error("Failed to update budget")
		return nil, err
	}

	return &BudgetResponse{Budget: *existing, Band: BandFor(existing.Spent, existing.Amount)}, nil
}

func (s *service) DeleteBudget(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return ErrUnauthorized
	}

	budgetID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.repo.DeleteBudget(budgetID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrBudgetNotFound
		}
		log.WithError(err).Error("Failed to delete budget")
		return err
	}
	return nil
}

func (s *service) MonthlySummary(ctx context.Context, month string) (*MonthlySummary, error) {
	log := config.WithContext(ctx)
	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	from, to, err := monthBounds(month)
	if err != nil {
		return nil, err
	}

	transactions, err := s.repo.ListTransactionsByUserInRange(userID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to load transactions for summary")
		return nil, err
	}

	return Summarize(month, transactions), nil
}

// Summarize folds a month's transactions into the dashboard totals.
// Category data tracks expenses only, matching the spending breakdown chart.
func Summarize(month string, transactions []*Transaction) *MonthlySummary {
	summary := &MonthlySummary{
		Month:        month,
		CategoryData: make(map[string]float64),
	}
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			summary.TotalIncome += t.Amount
		case TypeExpense:
			summary.TotalExpense += t.Amount
			summary.CategoryData[t.Category] += t.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary
}

func (s *service) Categories() []string {
	return DefaultCategories
}

func (s *service) reconcileBudgetsFor(ctx context.Context, userID uuid.UUID, category string, date time.Time) {
	log := config.WithContext(ctx)

	month := date.Format("2006-01")
	from, to, err := monthBounds(month)
	if err != nil {
		return
	}

	budgets, err := s.repo.FindBudgetsByCategoryAndMonth(userID, category, month)
	if err != nil {
		log.WithError(err).Warn("Failed to load budgets for reconciliation")
		return
	}

	for _, b := range budgets {
		spent, err := s.repo.SumExpenses(userID, category, from, to)
		if err != nil {
			log.WithError(err).Warn("Failed to recompute budget spent")
			continue
		}
		if spent == b.Spent {
			continue
		}
		b.Spent = spent
		if err := s.repo.UpdateBudget(b); err != nil {
			log.WithError(err).Warn("Failed to persist reconciled budget")
		}
	}
}

func (s *service) ReconcileSpent(ctx context.Context) error {
	log := config.WithContext(ctx)

	budgets, err := s.repo.AllBudgets()
	if err != nil {
		return err
	}

	var updated int
	for _, b := range budgets {
		from, to, err := monthBounds(b.Month)
		if err != nil {
			log.WithField("budget_id", b.ID).Warn("Skipping budget with malformed month")
			continue
		}
		spent, err := s.repo.SumExpenses(b.UserID, b.Category, from, to)
		if err != nil {
			return err
		}
		if spent == b.Spent {
			continue
		}
		b.Spent = spent
		if err := s.repo.UpdateBudget(b); err != nil {
			return err
		}
		updated++
	}

	log.WithField("updated", updated).Info("Budget spent reconciliation finished")
	return nil
}
