package core_test

import (
	"context"
	"errors"
	"math"
	"spendly/internal/core"
	"spendly/internal/core/fake"
	"spendly/internal/repository"
	tokenIssuer "spendly/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Tracker", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.TokenIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		tracker *core.Tracker

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.TokenIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		tracker = core.NewTracker(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			authMsg  core.AuthMessage
			session  core.Session
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "alice",
				Password: "s3cret",
			}

			fakeRepo.CreateUserReturns(nil)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = tracker.Register(ctx, authMsg)
		})

		When("registration succeeds", func() {
			It("should store a hashed password, never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal(authMsg.Username))
				Expect(user.PasswordHash).NotTo(Equal(authMsg.Password))
				Expect(user.PasswordHash).NotTo(ContainSubstring(authMsg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(authMsg.Password))).To(Succeed())
			})

			It("should assign an opaque id and issue a signed token", func() {
				Expect(err).NotTo(HaveOccurred())

				_, user := fakeRepo.CreateUserArgsForCall(0)
				_, parseErr := uuid.Parse(user.ID)
				Expect(parseErr).NotTo(HaveOccurred())

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    user.ID,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))

				Expect(session.UserID).To(Equal(user.ID))
				Expect(session.Username).To(Equal(authMsg.Username))
				Expect(session.Token).To(Equal("signed.token"))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("signing the token fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			authMsg  core.AuthMessage
			session  core.Session
			err      error
			userId   string
			genToken *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			hash, hashErr := bcrypt.GenerateFromPassword([]byte(authMsg.Password), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())

			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           userId,
				Username:     authMsg.Username,
				PasswordHash: string(hash),
			}, nil)

			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			session, err = tracker.Login(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			It("should return a session with a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.UserID).To(Equal(userId))
				Expect(session.Username).To(Equal(authMsg.Username))
				Expect(session.Token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen.Subject).To(Equal(userId))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("VerifySession", func() {
		var (
			identity core.Identity
			err      error
			userId   string
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":      userId,
				"username": "alice",
			}, nil)
		})

		JustBeforeEach(func() {
			identity, err = tracker.VerifySession("some.token")
		})

		When("the token is valid", func() {
			It("should return the identity claims", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity.UserID).To(Equal(userId))
				Expect(identity.Username).To(Equal("alice"))

				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("some.token"))
			})
		})

		When("the token fails validation", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return session invalid error", func() {
				Expect(err).To(MatchError(core.ErrSessionInvalid))
			})
		})

		When("the sub claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("should return session invalid error", func() {
				Expect(err).To(MatchError(core.ErrSessionInvalid))
			})
		})

		When("the username claim is missing", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": userId}, nil)
			})

			It("should return session invalid error", func() {
				Expect(err).To(MatchError(core.ErrSessionInvalid))
			})
		})
	})

	Describe("AddExpense", func() {
		var (
			userId string
			msg    core.ExpenseMessage
			record core.ExpenseRecord
			err    error
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			msg = core.ExpenseMessage{
				Amount:   12.50,
				Category: core.CategoryFood,
			}
			fakeRepo.SaveExpenseReturns(nil)
		})

		JustBeforeEach(func() {
			record, err = tracker.AddExpense(ctx, userId, msg)
		})

		When("the expense is valid", func() {
			It("should persist and return the record", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SaveExpenseCallCount()).To(Equal(1))
				_, expense := fakeRepo.SaveExpenseArgsForCall(0)
				Expect(expense.Amount).To(Equal(12.50))
				Expect(expense.Category).To(Equal(core.CategoryFood))
				Expect(expense.UserID).To(Equal(userId))

				_, parseErr := uuid.Parse(expense.ID)
				Expect(parseErr).NotTo(HaveOccurred())

				Expect(record.ID).To(Equal(expense.ID))
				Expect(record.Amount).To(Equal(12.50))
				Expect(record.Category).To(Equal(core.CategoryFood))
				Expect(record.UserID).To(Equal(userId))
			})

			It("should compute the timestamp server-side and derive month and year", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.CreatedAt).To(BeTemporally("~", time.Now().UTC(), time.Minute))
				Expect(record.Month).To(Equal(int(record.CreatedAt.Month())))
				Expect(record.Year).To(Equal(record.CreatedAt.Year()))
			})
		})

		When("the amount is negative", func() {
			BeforeEach(func() {
				msg.Amount = -5
			})

			It("should reject without persisting", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.SaveExpenseCallCount()).To(Equal(0))
			})
		})

		When("the amount is zero", func() {
			BeforeEach(func() {
				msg.Amount = 0
			})

			It("should reject without persisting", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.SaveExpenseCallCount()).To(Equal(0))
			})
		})

		When("the amount is not finite", func() {
			BeforeEach(func() {
				msg.Amount = math.Inf(1)
			})

			It("should reject without persisting", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.SaveExpenseCallCount()).To(Equal(0))
			})
		})

		When("the category is outside the fixed set", func() {
			BeforeEach(func() {
				msg.Category = "travel"
			})

			It("should reject without persisting", func() {
				Expect(err).To(MatchError(core.ErrUnknownCategory))
				Expect(fakeRepo.SaveExpenseCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveExpenseReturns(fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListExpenses", func() {
		var (
			userId  string
			records []core.ExpenseRecord
			err     error
		)

		BeforeEach(func() {
			userId = uuid.NewString()

			fakeRepo.GetUserExpensesReturns([]repository.Expense{
				{
					ID:        uuid.NewString(),
					Amount:    42,
					Category:  core.CategoryBills,
					UserID:    userId,
					CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
					Month:     1,
					Year:      2026,
				},
				{
					ID:        uuid.NewString(),
					Amount:    7.25,
					Category:  core.CategoryFood,
					UserID:    userId,
					CreatedAt: time.Date(2026, 2, 3, 18, 30, 0, 0, time.UTC),
					Month:     2,
					Year:      2026,
				},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = tracker.ListExpenses(ctx, userId)
		})

		When("the user has expenses", func() {
			It("should return them in repository order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Amount).To(Equal(42.0))
				Expect(records[0].Category).To(Equal(core.CategoryBills))
				Expect(records[1].Amount).To(Equal(7.25))
				Expect(records[1].CreatedAt).To(BeTemporally(">", records[0].CreatedAt))

				Expect(fakeRepo.GetUserExpensesCallCount()).To(Equal(1))
				_, argUserId := fakeRepo.GetUserExpensesArgsForCall(0)
				Expect(argUserId).To(Equal(userId))
			})

			It("should only contain records owned by the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				for _, rec := range records {
					Expect(rec.UserID).To(Equal(userId))
				}
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserExpensesReturns(nil, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
