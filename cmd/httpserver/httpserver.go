// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-fin/fin-api/internal/accountdelivery"
	"github.com/go-fin/fin-api/internal/accountrepo"
	"github.com/go-fin/fin-api/internal/accountservice"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/internal/transactiondelivery"
	"github.com/go-fin/fin-api/internal/transactionservice"
	"github.com/go-fin/fin-api/pkg/configpkg"
)

// Server holds the account store, handlers router and configuration.
type Server struct {
	Store  *accountrepo.RepoMem
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) *Server {
	store := accountrepo.NewRepoMem()

	accountService := accountservice.New(store)
	transactionService := transactionservice.New(store)

	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/account", accountHandler.Create)

	// Every other route resolves the acting customer first.
	verified := engine.Group("/").Use(middleware.VerifyAccount(accountService))

	verified.GET("/account", accountHandler.Get)
	verified.PUT("/account", accountHandler.Update)
	verified.DELETE("/account", accountHandler.Delete)

	verified.POST("/deposit", transactionHandler.Deposit)
	verified.POST("/withdraw", transactionHandler.Withdraw)

	verified.GET("/statement", transactionHandler.Statement)
	verified.GET("/statement/date", transactionHandler.StatementByDate)
	verified.GET("/balance", transactionHandler.Balance)

	server := &Server{
		Store:  store,
		Engine: engine,
		Config: config,
	}

	return server
}
