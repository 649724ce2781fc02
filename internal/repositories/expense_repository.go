package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"phka/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	Update(ctx context.Context, expense *db_models.Expense) error
	Delete(ctx context.Context, expenseID string) error
	FindByID(ctx context.Context, id string) (*db_models.Expense, error)
	ListByEvent(ctx context.Context, eventID string) ([]db_models.Expense, error)
	Totals(ctx context.Context, eventID string) (budget float64, actual float64, err error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, expenseID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Expense{}, "id = ?", expenseID).Error
}

func (r *expenseRepository) FindByID(ctx context.Context, id string) (*db_models.Expense, error) {
	var expense db_models.Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}

func (r *expenseRepository) ListByEvent(ctx context.Context, eventID string) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) Totals(ctx context.Context, eventID string) (float64, float64, error) {
	type row struct {
		Budget *float64 `gorm:"column:budget"`
		Actual *float64 `gorm:"column:actual"`
	}
	var out row
	err := r.db.WithContext(ctx).
		Model(&db_models.Expense{}).
		Select("SUM(budget_amount) AS budget, SUM(actual_amount) AS actual").
		Where("event_id = ?", eventID).
		Scan(&out).Error
	if err != nil {
		return 0, 0, err
	}

	var budget, actual float64
	if out.Budget != nil {
		budget = *out.Budget
	}
	if out.Actual != nil {
		actual = *out.Actual
	}
	return budget, actual, nil
}
