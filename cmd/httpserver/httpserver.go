// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/eventpublisher"
	"github.com/go-petr/pet-ledger/internal/ledgerdelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/userdelivery"
	"github.com/go-petr/pet-ledger/internal/userrepo"
	"github.com/go-petr/pet-ledger/internal/userservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Publisher publishes transaction events and releases its resources on Close.
type Publisher interface {
	Publish(ctx context.Context, tx domain.Transaction) error
	Close() error
}

// Server holds handlers router, event publisher and configuration.
type Server struct {
	Engine    *gin.Engine
	Config    configpkg.Config
	Publisher Publisher
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close releases the event publisher.
func (s *Server) Close() error {
	return s.Publisher.Close()
}

var (
	registerOnce sync.Once
	registerErr  error
)

func registerValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}

		if registerErr = v.RegisterValidation("txtype", ledgerdelivery.ValidTransactionType); registerErr != nil {
			return
		}

		registerErr = v.RegisterValidation("notblank", validators.NotBlank)
	})

	return registerErr
}

// New creates Server type with instantiated domains and routes.
// Kafka publishing is enabled when brokers are configured.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	var publisher Publisher = eventpublisher.Nop{}
	if brokers := config.Brokers(); len(brokers) > 0 {
		publisher = eventpublisher.NewKafka(brokers, config.KafkaTopic, logger)
	}

	gin.SetMode(gin.ReleaseMode)

	return newServer(logger, config, publisher)
}

func newServer(logger zerolog.Logger, config configpkg.Config, publisher Publisher) (*Server, error) {
	if err := registerValidators(); err != nil {
		return nil, errors.New("cannot register request validators")
	}

	userRepo := userrepo.NewRepoMem()
	ledgerRepo := ledgerrepo.NewRepoMem()

	userService := userservice.New(userRepo)
	ledgerService := ledgerservice.New(ledgerRepo, userService, publisher)

	userHandler := userdelivery.NewHandler(userService)
	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/users", userHandler.Create)
	engine.GET("/users/:id", userHandler.Get)

	engine.POST("/ledgers", ledgerHandler.Create)
	engine.GET("/ledgers", ledgerHandler.List)
	engine.GET("/ledgers/:id", ledgerHandler.Get)
	engine.POST("/ledgers/:id/transactions", ledgerHandler.PostTransaction)
	engine.GET("/ledgers/:id/transactions", ledgerHandler.Transactions)
	engine.GET("/ledgers/:id/balance", ledgerHandler.Balance)

	server := &Server{
		Engine:    engine,
		Config:    config,
		Publisher: publisher,
	}

	return server, nil
}
