package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ryazanov/inkstudio/config"
	"github.com/ryazanov/inkstudio/internal/auth"
	handler "github.com/ryazanov/inkstudio/internal/handler/http"
	"github.com/ryazanov/inkstudio/internal/middleware"
	"github.com/ryazanov/inkstudio/internal/repository"
	"github.com/ryazanov/inkstudio/internal/repository/postgres"
	"github.com/ryazanov/inkstudio/internal/service"
	"go.uber.org/zap"
)

const authTokenKey = "9c1185a5c5e9fc54612808977ee8f548"

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	err = db.Migrate()
	if err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKey, err := hex.DecodeString(authTokenKey)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// dependency injection
	// auth
	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, token, cfg.MasterEmail)
	authHandler := handler.NewAuthHandler(authService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, userRepo)
	orderHandler := handler.NewOrderHandler(orderService)

	// conversation
	messageRepo := repository.NewMessageRepository(db)
	messageService := service.NewMessageService(messageRepo, orderRepo, userRepo)
	messageHandler := handler.NewMessageHandler(messageService)

	// booking
	bookingRepo := repository.NewBookingRepository(db)
	bookingService := service.NewBookingService(bookingRepo)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// contact form
	contactRepo := repository.NewContactRepository(db)
	contactService := service.NewContactService(contactRepo)
	contactHandler := handler.NewContactHandler(contactService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Post("/api/auth/register", authHandler.RegisterUser())
	router.Post("/api/auth/login", authHandler.LoginUser())
	router.Post("/api/contact", contactHandler.SubmitForm())

	// order and message stores, identified by the X-User-Id header
	router.Group(func(group chi.Router) {
		group.Use(middleware.Identity())
		group.Get("/api/orders", orderHandler.ListOrders())
		group.Post("/api/orders", orderHandler.CreateOrder())
		group.Put("/api/orders", orderHandler.UpdateOrder())
		group.Get("/api/messages", messageHandler.ListMessages())
		group.Post("/api/messages", messageHandler.SendMessage())
	})

	// bookings require a verified token
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Get("/api/bookings", bookingHandler.ListBookings())
		group.Post("/api/bookings", bookingHandler.CreateBooking())
		group.Put("/api/bookings", bookingHandler.UpdateBookingStatus())
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
