package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"spendly/internal/repository"
	tokenIssuer "spendly/pkg/jwt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserExists error = errors.New("username already taken")
var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrSessionInvalid error = errors.New("session token is not valid")
var ErrInvalidAmount error = errors.New("amount must be a positive number")
var ErrUnknownCategory error = errors.New("unknown expense category")

// session tokens are valid for 24 hours after issuing
const sessionTTLHours = 24

var categories = map[string]struct{}{
	CategoryFood:          {},
	CategoryUtilities:     {},
	CategoryBills:         {},
	CategoryMiscellaneous: {},
}

// Tracker implements the expense-tracking business operations on top of the
// repository and the token issuer.
type Tracker struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
}

func NewTracker(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer) *Tracker {
	return &Tracker{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password and logs them in.
// The insert is conditional on username uniqueness, so two concurrent
// registrations with the same username cannot both succeed.
func (t *Tracker) Register(ctx context.Context, msg AuthMessage) (Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err = t.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return Session{}, ErrUserExists
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	token, err := t.issueToken(user)
	if err != nil {
		return Session{}, err
	}

	return Session{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Login checks the provided credentials against the stored hash and issues a
// fresh session token.
func (t *Tracker) Login(ctx context.Context, msg AuthMessage) (Session, error) {
	user, err := t.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return Session{}, ErrIncorrectPassword
	}

	token, err := t.issueToken(user)
	if err != nil {
		return Session{}, err
	}

	return Session{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// VerifySession validates a session token and recovers the identity claims.
// Missing, malformed, expired and badly signed tokens all come back as
// ErrSessionInvalid.
func (t *Tracker) VerifySession(token string) (Identity, error) {
	claims, err := t.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("validate jwt token: %w: %w", err, ErrSessionInvalid)
	}

	userId, ok := claims["sub"].(string)
	if !ok || userId == "" {
		return Identity{}, fmt.Errorf("missing sub claim: %w", ErrSessionInvalid)
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return Identity{}, fmt.Errorf("missing username claim: %w", ErrSessionInvalid)
	}

	return Identity{
		UserID:   userId,
		Username: username,
	}, nil
}

// AddExpense persists a new expense owned by userID. The creation timestamp
// is taken server-side; month and year are derived from it.
func (t *Tracker) AddExpense(ctx context.Context, userID string, msg ExpenseMessage) (ExpenseRecord, error) {
	if msg.Amount <= 0 || math.IsInf(msg.Amount, 0) || math.IsNaN(msg.Amount) {
		return ExpenseRecord{}, ErrInvalidAmount
	}

	if _, ok := categories[msg.Category]; !ok {
		return ExpenseRecord{}, fmt.Errorf("%w: %q", ErrUnknownCategory, msg.Category)
	}

	now := time.Now().UTC()
	expense := repository.Expense{
		ID:        uuid.NewString(),
		Amount:    msg.Amount,
		Category:  msg.Category,
		UserID:    userID,
		CreatedAt: now,
		Month:     int(now.Month()),
		Year:      now.Year(),
	}

	if err := t.repo.SaveExpense(ctx, expense); err != nil {
		return ExpenseRecord{}, fmt.Errorf("save expense: %w", err)
	}

	t.logs.Infow("expense added", "userId", userID, "expenseId", expense.ID, "category", expense.Category)

	return t.repoExpenseToRecord(expense), nil
}

// ListExpenses returns the caller's expenses ordered by creation time
// ascending.
func (t *Tracker) ListExpenses(ctx context.Context, userID string) ([]ExpenseRecord, error) {
	expenses, err := t.repo.GetUserExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user expenses: %w", err)
	}

	records := make([]ExpenseRecord, len(expenses))
	for i, expense := range expenses {
		records[i] = t.repoExpenseToRecord(expense)
	}

	return records, nil
}

func (t *Tracker) issueToken(user repository.User) (string, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: sessionTTLHours,
	}

	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (t *Tracker) repoExpenseToRecord(expense repository.Expense) ExpenseRecord {
	return ExpenseRecord{
		ID:        expense.ID,
		Amount:    expense.Amount,
		Category:  expense.Category,
		UserID:    expense.UserID,
		CreatedAt: expense.CreatedAt,
		Month:     expense.Month,
		Year:      expense.Year,
	}
}
