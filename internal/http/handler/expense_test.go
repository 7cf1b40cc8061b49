package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"spendly/internal/core"
	"spendly/internal/http/handler"
	"spendly/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == handler.SessionCookie {
			return c
		}
	}
	return nil
}

var _ = Describe("ExpenseHandler", func() {
	var (
		eh            *handler.ExpenseHandler
		fakeService   *fake.ExpenseService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		testSession   core.Session
		fakeErr       error
	)

	BeforeEach(func() {
		testSession = core.Session{
			UserID:   "user-1",
			Username: "alice",
			Token:    "signed.token",
		}
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.ExpenseService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		eh = handler.NewExpenseHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegister", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"s3cret"}`)
			req = httptest.NewRequest("POST", "/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterReturns(testSession, nil)
		})

		JustBeforeEach(func() {
			eh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("should return the user and set the session cookie", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["id"]).To(Equal(testSession.UserID))
				Expect(response["username"]).To(Equal(testSession.Username))

				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.Password).To(Equal("s3cret"))

				cookie := sessionCookie(w)
				Expect(cookie).NotTo(BeNil())
				Expect(cookie.Value).To(Equal(testSession.Token))
				Expect(cookie.HttpOnly).To(BeTrue())
			})

			It("should never include the password hash in the response", func() {
				Expect(w.Body.String()).NotTo(ContainSubstring("passwordHash"))
				Expect(w.Body.String()).NotTo(ContainSubstring("s3cret"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.RegisterCallCount()).To(Equal(0))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, core.ErrUserExists)
			})

			It("should return status 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(sessionCookie(w)).To(BeNil())
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, fakeErr)
			})

			It("should return status 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleLogin", func() {
		var response map[string]string

		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"s3cret"}`)
			req = httptest.NewRequest("POST", "/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.LoginReturns(testSession, nil)
		})

		JustBeforeEach(func() {
			eh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			It("should return the user and set the session cookie", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["id"]).To(Equal(testSession.UserID))
				Expect(response["username"]).To(Equal(testSession.Username))

				cookie := sessionCookie(w)
				Expect(cookie).NotTo(BeNil())
				Expect(cookie.Value).To(Equal(testSession.Token))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.Session{}, core.ErrIncorrectPassword)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(sessionCookie(w)).To(BeNil())
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.LoginCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleLogout", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/logout", nil)
		})

		JustBeforeEach(func() {
			eh.HandleLogout(w, req)
		})

		It("should clear the session cookie", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]bool
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response["ok"]).To(BeTrue())

			cookie := sessionCookie(w)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).To(BeEmpty())
			Expect(cookie.MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("HandleAddExpense", func() {
		var record core.ExpenseRecord

		BeforeEach(func() {
			record = core.ExpenseRecord{
				ID:        "exp-1",
				Amount:    42,
				Category:  core.CategoryBills,
				UserID:    testSession.UserID,
				CreatedAt: time.Now().UTC(),
				Month:     int(time.Now().UTC().Month()),
				Year:      time.Now().UTC().Year(),
			}

			body := strings.NewReader(`{"amount":42,"category":"bills"}`)
			req = httptest.NewRequest("POST", "/add", body)
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: testSession.Token})

			fakeService.VerifySessionReturns(core.Identity{
				UserID:   testSession.UserID,
				Username: testSession.Username,
			}, nil)
			fakeService.AddExpenseReturns(record, nil)
		})

		JustBeforeEach(func() {
			eh.HandleAddExpense(w, req)
		})

		When("the request is authenticated and valid", func() {
			It("should create the expense for the session owner", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.VerifySessionCallCount()).To(Equal(1))
				Expect(fakeService.VerifySessionArgsForCall(0)).To(Equal(testSession.Token))

				Expect(fakeService.AddExpenseCallCount()).To(Equal(1))
				_, userId, msg := fakeService.AddExpenseArgsForCall(0)
				Expect(userId).To(Equal(testSession.UserID))
				Expect(msg.Amount).To(Equal(42.0))
				Expect(msg.Category).To(Equal(core.CategoryBills))

				var response core.ExpenseRecord
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response.ID).To(Equal(record.ID))
				Expect(response.Category).To(Equal(core.CategoryBills))
			})
		})

		When("the session cookie is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/add", strings.NewReader(`{"amount":42,"category":"bills"}`))
			})

			It("should return status 401 without touching the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.AddExpenseCallCount()).To(Equal(0))
			})
		})

		When("the session token is invalid", func() {
			BeforeEach(func() {
				fakeService.VerifySessionReturns(core.Identity{}, core.ErrSessionInvalid)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.AddExpenseCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AddExpenseCallCount()).To(Equal(0))
			})
		})

		When("the amount is rejected by the service", func() {
			BeforeEach(func() {
				fakeService.AddExpenseReturns(core.ExpenseRecord{}, core.ErrInvalidAmount)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the category is rejected by the service", func() {
			BeforeEach(func() {
				fakeService.AddExpenseReturns(core.ExpenseRecord{}, core.ErrUnknownCategory)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeService.AddExpenseReturns(core.ExpenseRecord{}, fakeErr)
			})

			It("should return status 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleViewExpenses", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/view", nil)
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: testSession.Token})

			fakeService.VerifySessionReturns(core.Identity{
				UserID:   testSession.UserID,
				Username: testSession.Username,
			}, nil)
			fakeService.ListExpensesReturns([]core.ExpenseRecord{
				{ID: "exp-1", Amount: 42, Category: core.CategoryBills, UserID: testSession.UserID},
			}, nil)
		})

		JustBeforeEach(func() {
			eh.HandleViewExpenses(w, req)
		})

		When("the request is authenticated", func() {
			It("should return the caller's expenses", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.ListExpensesCallCount()).To(Equal(1))
				_, userId := fakeService.ListExpensesArgsForCall(0)
				Expect(userId).To(Equal(testSession.UserID))

				var response map[string][]core.ExpenseRecord
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["expenses"]).To(HaveLen(1))
				Expect(response["expenses"][0].Category).To(Equal(core.CategoryBills))
			})
		})

		When("the user has no expenses", func() {
			BeforeEach(func() {
				fakeService.ListExpensesReturns(nil, nil)
			})

			It("should return an empty list, not null", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"expenses":[]`))
			})
		})

		When("the session cookie is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/view", nil)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListExpensesCallCount()).To(Equal(0))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeService.ListExpensesReturns(nil, fakeErr)
			})

			It("should return status 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})
})
