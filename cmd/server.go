package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"spendly/internal/config"
	"spendly/internal/core"
	"spendly/internal/db"
	"spendly/internal/http/handler"
	"spendly/internal/http/handler/middleware"
	"spendly/internal/http/payload"
	"spendly/internal/http/server"
	"spendly/internal/repository"
	"spendly/pkg/jwt"
	"spendly/pkg/log"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("spendly", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewExpenseRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// tracker
	tracker := core.NewTracker(
		logger,
		repo,
		jwtService)

	// handler
	expenseHlr := handler.NewExpenseHandler(
		logger,
		payload.Decoder{},
		tracker)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, expenseHlr.HandleRegister)
	mux.HandleFunc(handler.Login, expenseHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, expenseHlr.HandleLogout)
	mux.HandleFunc(handler.AddExpense, expenseHlr.HandleAddExpense)
	mux.HandleFunc(handler.ViewExpenses, expenseHlr.HandleViewExpenses)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
