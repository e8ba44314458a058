// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/mini-bank/internal/accountdelivery"
	"github.com/go-petr/mini-bank/internal/ledger"
	"github.com/go-petr/mini-bank/internal/logdelivery"
	"github.com/go-petr/mini-bank/internal/middleware"
	"github.com/go-petr/mini-bank/internal/transferdelivery"
	"github.com/go-petr/mini-bank/pkg/configpkg"
	"github.com/go-petr/mini-bank/pkg/errorspkg"
	"github.com/go-petr/mini-bank/pkg/moneypkg"
	"github.com/go-petr/mini-bank/pkg/web"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger *ledger.Ledger
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

type demoAccount struct {
	holderName    string
	balance       int64
	isKYCVerified bool
}

var demoAccounts = []demoAccount{
	{holderName: "Alice Johnson", balance: 50_000, isKYCVerified: true},
	{holderName: "Bob Smith", balance: 15_000, isKYCVerified: false},
	{holderName: "Carol Davis", balance: 30_000, isKYCVerified: true},
}

// seed opens the demo accounts through the regular ledger path.
func seed(ctx context.Context, l *ledger.Ledger) error {
	for _, d := range demoAccounts {
		_, err := l.CreateAccount(ctx, d.holderName, decimal.NewFromInt(d.balance), d.isKYCVerified)
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.holderName, err)
		}
	}

	return nil
}

// New creates Server type with instantiated ledger and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	err := web.SetupValidator(map[string]validator.Func{"amount": moneypkg.ValidAmount})
	if err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	l := ledger.New(config)

	if config.SeedDemoAccounts {
		if err := seed(logger.WithContext(context.Background()), l); err != nil {
			return nil, err
		}

		logger.Info().Int("accounts", len(demoAccounts)).Msg("demo accounts seeded")
	}

	accountHandler := accountdelivery.NewHandler(l)
	transferHandler := transferdelivery.NewHandler(l)
	logHandler := logdelivery.NewHandler(l)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.NoRoute(func(gctx *gin.Context) {
		gctx.JSON(http.StatusNotFound, web.Error(errorspkg.ErrRouteNotFound))
	})

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts", accountHandler.List)
	engine.GET("/accounts/:account_no", accountHandler.Get)
	engine.POST("/accounts/:account_no/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:account_no/withdrawals", accountHandler.Withdraw)
	engine.GET("/summary", accountHandler.Summary)

	engine.POST("/transfers", transferHandler.Create)

	engine.GET("/log", logHandler.List)
	engine.DELETE("/log", logHandler.Clear)

	server := &Server{
		Ledger: l,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
