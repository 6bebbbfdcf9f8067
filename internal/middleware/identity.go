// Package middleware provides app specific middlewares.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-fin/fin-api/internal/domain"
	"github.com/go-fin/fin-api/pkg/errorspkg"
	"github.com/go-fin/fin-api/pkg/web"
)

const (
	// CPFHeaderKey is the request header carrying the claimed customer identifier.
	CPFHeaderKey = "cpf"
	// AccountKey is the gin context key holding the resolved account.
	AccountKey = "resolved_account"
)

// AccountResolver provides the account lookup needed by the identity gate.
//
//go:generate mockgen -source identity.go -destination identity_mock.go -package middleware
type AccountResolver interface {
	Get(ctx context.Context, cpf string) (domain.Account, error)
}

// VerifyAccount resolves the cpf header to an account and attaches it to
// the request context. Requests without a matching account never reach
// the downstream handler.
func VerifyAccount(resolver AccountResolver) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		cpf := gctx.GetHeader(CPFHeaderKey)

		account, err := resolver.Get(gctx.Request.Context(), cpf)
		if err != nil {
			if err == domain.ErrCustomerNotFound {
				gctx.AbortWithStatusJSON(http.StatusNotFound, web.Error(err))
				return
			}

			gctx.AbortWithStatusJSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

			return
		}

		gctx.Set(AccountKey, account)
		gctx.Next()
	}
}

// AccountFromContext returns the account resolved by VerifyAccount.
func AccountFromContext(gctx *gin.Context) domain.Account {
	return gctx.MustGet(AccountKey).(domain.Account)
}
