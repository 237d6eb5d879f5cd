package finance

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type FinanceRepository interface {
	CreateTransaction(t *Transaction) error
	ListTransactionsByUser(userID uuid.UUID, category string, txType TransactionType) ([]*Transaction, error)
	ListTransactionsByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Transaction, error)
	FindTransactionByIDAndUser(id, userID uuid.UUID) (*Transaction, error)
	UpdateTransaction(t *Transaction) error
	DeleteTransaction(id, userID uuid.UUID) error

	CreateBudget(b *Budget) error
	ListBudgetsByUser(userID uuid.UUID, month string) ([]*Budget, error)
	FindBudgetByIDAndUser(id, userID uuid.UUID) (*Budget, error)
	FindBudgetsByCategoryAndMonth(userID uuid.UUID, category, month string) ([]*Budget, error)
	UpdateBudget(b *Budget) error
	DeleteBudget(id, userID uuid.UUID) error
	AllBudgets() ([]*Budget, error)

	SumExpenses(userID uuid.UUID, category string, from, to time.Time) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) FinanceRepository {
	return &repository{db: db}
}

func (r *repository) CreateTransaction(t *Transaction) error {
	return r.db.Create(t).Error
}

func (r *repository) ListTransactionsByUser(userID uuid.UUID, category string, txType TransactionType) ([]*Transaction, error) {
	var transactions []*Transaction
	q := r.db.Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if txType != "" {
		q = q.Where("type = ?", txType)
	}
	if err := q.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) ListTransactionsByUserInRange(userID uuid.UUID, from, to time.Time) ([]*Transaction, error) {
	var transactions []*Transaction
	if err := r.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repository) FindTransactionByIDAndUser(id, userID uuid.UUID) (*Transaction, error) {
	var t Transaction
	if err := r.db.First(&t, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) UpdateTransaction(t *Transaction) error {
	return r.db.Save(t).Error
}

func (r *repository) DeleteTransaction(id, userID uuid.UUID) error {
	result := r.db.Delete(&Transaction{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CreateBudget(b *Budget) error {
	return r.db.Create(b).Error
}

func (r *repository) ListBudgetsByUser(userID uuid.UUID, month string) ([]*Budget, error) {
	var budgets []*Budget
	q := r.db.Where("user_id = ?", userID)
	if month != "" {
		q = q.Where("month = ?", month)
	}
	if err := q.Order("month DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *repository) FindBudgetByIDAndUser(id, userID uuid.UUID) (*Budget, error) {
	var b Budget
	if err := r.db.First(&b, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindBudgetsByCategoryAndMonth(userID uuid.UUID, category, month string) ([]*Budget, error) {
	var budgets []*Budget
	if err := r.db.
		Where("user_id = ? AND category = ? AND month = ?", userID, category, month).
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *repository) UpdateBudget(b *Budget) error {
	return r.db.Save(b).Error
}

func (r *repository) DeleteBudget(id, userID uuid.UUID) error {
	result := r.db.Delete(&Budget{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) AllBudgets() ([]*Budget, error) {
	var budgets []*Budget
	if err := r.db.Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *repository) SumExpenses(userID uuid.UUID, category string, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category = ? AND type = ? AND date >= ? AND date < ?",
			userID, category, TypeExpense, from, to).
		Scan(&total).Error
	return total, err
}
