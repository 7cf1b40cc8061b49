package handler

import (
	"context"
	"net/http"
	"spendly/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExpenseService . ExpenseService
type ExpenseService interface {
	Register(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	Login(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	VerifySession(token string) (core.Identity, error)
	AddExpense(ctx context.Context, userID string, msg core.ExpenseMessage) (core.ExpenseRecord, error)
	ListExpenses(ctx context.Context, userID string) ([]core.ExpenseRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
