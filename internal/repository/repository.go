package repository

import (
	"context"
	"errors"
	"fmt"
	"spendly/internal/db"
)

var ErrUserExists error = errors.New("username already taken")
var ErrUserNotFound error = errors.New("user not found")

type ExpenseRepository struct {
	db Storage
}

func NewExpenseRepository(db Storage) *ExpenseRepository {
	return &ExpenseRepository{
		db: db,
	}
}

func (r *ExpenseRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Expense{}, &Budget{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts the user atomically; a username collision is reported as
// ErrUserExists without touching the table.
func (r *ExpenseRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.InsertUnique(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *ExpenseRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *ExpenseRepository) SaveExpense(ctx context.Context, expense Expense) error {
	expenses := []Expense{expense}
	err := r.db.SaveToTable(ctx, &expenses)
	if err != nil {
		return fmt.Errorf("save expense: %w", err)
	}

	return nil
}

func (r *ExpenseRepository) GetUserExpenses(ctx context.Context, userID string) ([]Expense, error) {
	expenses := []Expense{}
	err := r.db.GetAllBy(ctx, "user_id", userID, "created_at", &expenses)
	if err != nil {
		return nil, fmt.Errorf("get user expenses: %w", err)
	}

	return expenses, nil
}
