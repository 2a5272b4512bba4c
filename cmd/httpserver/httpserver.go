// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-card/card-bank/internal/billingdelivery"
	"github.com/go-card/card-bank/internal/billingservice"
	"github.com/go-card/card-bank/internal/carddelivery"
	"github.com/go-card/card-bank/internal/cardservice"
	"github.com/go-card/card-bank/internal/ledgerrepo"
	"github.com/go-card/card-bank/internal/middleware"
	"github.com/go-card/card-bank/pkg/clockpkg"
	"github.com/go-card/card-bank/pkg/configpkg"
)

// Server holds the handlers router and configuration.
type Server struct {
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(clock clockpkg.Clock, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	cardService := cardservice.New(clock, func() cardservice.Ledger {
		return ledgerrepo.NewRepoMem()
	})
	billingService := billingservice.New(cardService, clock)

	cardHandler := carddelivery.NewHandler(cardService)
	billingHandler := billingdelivery.NewHandler(billingService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/cards", cardHandler.Create)
	engine.GET("/cards/:id", cardHandler.Get)
	engine.PATCH("/cards/:id/status", cardHandler.SetStatus)

	engine.POST("/cards/:id/transactions", cardHandler.Pay)
	engine.GET("/cards/:id/transactions", cardHandler.List)
	engine.GET("/cards/:id/transactions/total", cardHandler.Total)

	engine.POST("/cards/:id/statements", billingHandler.CreateStatement)
	engine.POST("/cards/:id/interest", billingHandler.ApplyInterest)
	engine.POST("/cards/:id/payments", billingHandler.PayBill)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("transactiontype", carddelivery.ValidTransactionType); err != nil {
			return nil, errors.New("cannot register transaction type validator")
		}

		if err := v.RegisterValidation("cardstatus", carddelivery.ValidCardStatus); err != nil {
			return nil, errors.New("cannot register card status validator")
		}
	}

	server := &Server{
		Engine: engine,
		Config: config,
	}

	return server, nil
}
