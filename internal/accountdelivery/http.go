// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, cpf, name string) (domain.Account, error)
	UpdateName(ctx context.Context, cpf, name string) (domain.Account, error)
	Delete(ctx context.Context, cpf string) error
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type createRequest struct {
	CPF  string `json:"cpf" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// Create handles http request to create an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: errMsg})

		return
	}

	if _, err := h.service.Create(ctx, req.CPF, req.Name); err != nil {
		if err == domain.ErrCustomerAlreadyExists {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusCreated)
}

// Get handles http request to get the resolved account with its full
// statement.
func (h *Handler) Get(gctx *gin.Context) {
	account := middleware.AccountFromContext(gctx)

	gctx.JSON(http.StatusOK, account)
}

type updateRequest struct {
	Name string `json:"name" binding:"required"`
}

// Update handles http request to overwrite the account's display name.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.JSONError{Error: errMsg})

		return
	}

	account := middleware.AccountFromContext(gctx)

	if _, err := h.service.UpdateName(ctx, account.CPF, req.Name); err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusCreated)
}

// Delete handles http request to remove the account and its statement.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	account := middleware.AccountFromContext(gctx)

	if err := h.service.Delete(ctx, account.CPF); err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}
