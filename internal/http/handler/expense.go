package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"spendly/internal/core"
	"spendly/internal/http/handler/middleware"
	"spendly/internal/http/payload"
	"time"

	"go.uber.org/zap"
)

var (
	Register     = "POST /register"
	Login        = "POST /login"
	Logout       = "POST /logout"
	AddExpense   = "POST /add"
	ViewExpenses = "GET /view"
)

// SessionCookie carries the signed session token; HTTP-only so scripts never
// see it.
const SessionCookie = "session"

const sessionCookieTTL = 24 * time.Hour

type ExpenseHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tracker          ExpenseService
}

func NewExpenseHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tracker:          expenseService,
	}
}

func (h *ExpenseHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Registration failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	session, err := h.tracker.Register(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Registration failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserExists) {
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.setSessionCookie(w, session.Token)

	resp := map[string]string{
		"id":       session.UserID,
		"username": session.Username,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExpenseHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Login failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	session, err := h.tracker.Login(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.setSessionCookie(w, session.Token)

	resp := map[string]string{
		"id":       session.UserID,
		"username": session.Username,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleLogout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation for stateless tokens.
func (h *ExpenseHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	h.clearSessionCookie(w)

	resp := map[string]bool{
		"ok": true,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *ExpenseHandler) HandleAddExpense(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, err := h.authenticate(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to authenticate request",
			"error", err,
			"handler", AddExpense,
			"request_id", requestId)
		return
	}

	var payload payload.ExpenseRequest
	err = h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not add expense",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddExpense,
			"request_id", requestId)
		return
	}

	record, err := h.tracker.AddExpense(r.Context(), identity.UserID, payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not add expense",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidAmount) || errors.Is(err, core.ErrUnknownCategory) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to add expense",
			"error", err,
			"handler", AddExpense,
			"request_id", requestId)
		return
	}

	h.logs.Infow("expense created",
		"expenseId", record.ID,
		"userId", identity.UserID,
		"handler", AddExpense,
		"request_id", requestId)

	h.respond(w, record, http.StatusOK, requestId)
}

func (h *ExpenseHandler) HandleViewExpenses(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	identity, err := h.authenticate(r)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication required",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to authenticate request",
			"error", err,
			"handler", ViewExpenses,
			"request_id", requestId)
		return
	}

	records, err := h.tracker.ListExpenses(r.Context(), identity.UserID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve expenses",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to list expenses",
			"error", err,
			"handler", ViewExpenses,
			"request_id", requestId)
		return
	}

	if records == nil {
		records = []core.ExpenseRecord{}
	}

	resp := map[string][]core.ExpenseRecord{
		"expenses": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// authenticate reads the session cookie and verifies the token it carries.
func (h *ExpenseHandler) authenticate(r *http.Request) (core.Identity, error) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return core.Identity{}, errors.New("session cookie is missing")
	}

	identity, err := h.tracker.VerifySession(cookie.Value)
	if err != nil {
		return core.Identity{}, fmt.Errorf("verify session: %w", err)
	}

	return identity, nil
}

func (h *ExpenseHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *ExpenseHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *ExpenseHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
