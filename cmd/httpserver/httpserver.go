// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/bank-ledger/internal/accountdelivery"
	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/accountservice"
	"github.com/go-petr/bank-ledger/internal/middleware"
	"github.com/go-petr/bank-ledger/internal/operationdelivery"
	"github.com/go-petr/bank-ledger/internal/operationrepo"
	"github.com/go-petr/bank-ledger/internal/operationservice"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	operationRepo := operationrepo.NewRepoPGS(conn)

	accountService := accountservice.New(accountRepo)
	operationService := operationservice.New(operationRepo)

	accountHandler := accountdelivery.NewHandler(accountService)
	operationHandler := operationdelivery.NewHandler(operationService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)

	engine.POST("/accounts/:id/operations", operationHandler.Perform)
	engine.GET("/accounts/:id/operations", operationHandler.List)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
