// Package transactiondelivery manages delivery layer of statement transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Deposit(ctx context.Context, cpf string, amount float64, description string) (domain.Transaction, error)
	Withdraw(ctx context.Context, cpf string, amount float64) (domain.Transaction, error)
	Statement(ctx context.Context, cpf string) ([]domain.Transaction, error)
	StatementByDay(ctx context.Context, cpf string, day time.Time) ([]domain.Transaction, error)
	Balance(ctx context.Context, cpf string) (float64, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

func bindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return err.Error()
}

type depositRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// Deposit handles http request to append a credit transaction.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	account := middleware.AccountFromContext(gctx)

	if _, err := h.service.Deposit(ctx, account.CPF, req.Amount, req.Description); err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusCreated)
}

type withdrawRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// Withdraw handles http request to append a debit transaction.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req withdrawRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	account := middleware.AccountFromContext(gctx)

	if _, err := h.service.Withdraw(ctx, account.CPF, req.Amount); err != nil {
		switch err {
		case domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrCustomerNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusCreated)
}

// Statement handles http request to get the account's full statement.
func (h *Handler) Statement(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	account := middleware.AccountFromContext(gctx)

	statement, err := h.service.Statement(ctx, account.CPF)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statement)
}

type statementByDateRequest struct {
	Date time.Time `form:"date" time_format:"2006-01-02" time_utc:"1" binding:"required"`
}

// StatementByDate handles http request to get the statement entries
// created on the queried calendar day.
func (h *Handler) StatementByDate(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req statementByDateRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: bindErrorMsg(err)})

		return
	}

	account := middleware.AccountFromContext(gctx)

	statement, err := h.service.StatementByDay(ctx, account.CPF, req.Date)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statement)
}

// Balance handles http request to get the derived account balance.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	account := middleware.AccountFromContext(gctx)

	balance, err := h.service.Balance(ctx, account.CPF)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balance)
}
