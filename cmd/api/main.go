package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/application/query"
	"rifq-petcare/internal/application/services"
	"rifq-petcare/internal/application/state"
	"rifq-petcare/internal/config"
	"rifq-petcare/internal/domain/catalog"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/internal/infrastructure/cloudinary"
	"rifq-petcare/internal/infrastructure/memory"
	"rifq-petcare/internal/infrastructure/mongo"
	"rifq-petcare/internal/infrastructure/projection"
	"rifq-petcare/pkg/logger"

	httpHandler "rifq-petcare/internal/infrastructure/http"
	jwtutil "rifq-petcare/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "rifq-petcare",
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()
	log.Info("starting rifq petcare api")

	// Storage: Mongo when configured, in-memory otherwise
	var (
		store       repository.StoreGateway
		users       repository.UserRepository
		mongoClient *mongo.MongoClient
	)
	if cfg.UseMongo() {
		mongoClient, err = mongo.NewMongoClient(&mongo.MongoConfig{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Timeout:  cfg.MongoTimeout,
		})
		if err != nil {
			log.Fatal("failed to connect to mongodb", zap.Error(err))
		}
		defer func() {
			if err := mongoClient.Close(); err != nil {
				log.Error("error closing mongodb connection", zap.Error(err))
			}
		}()
		if err := mongoClient.Ping(); err != nil {
			log.Fatal("failed to ping mongodb", zap.Error(err))
		}
		log.Info("connected to mongodb", zap.String("database", cfg.MongoDB))

		store = mongo.NewStoreGateway(mongoClient.GetClient(), mongoClient.GetDatabase())
		users = mongo.NewUserRepository(mongoClient.GetDatabase())
	} else {
		log.Warn("MONGO_URI not set, using in-memory storage")
		store = memory.NewStoreGateway()
		users = memory.NewUserRepository()
	}

	// Image uploads are optional; without credentials the endpoint rejects
	var images *cloudinary.Service
	if cloudinaryCfg, err := cloudinary.NewConfigFromEnv(); err == nil {
		images, err = cloudinary.NewService(cloudinaryCfg)
		if err != nil {
			log.Fatal("failed to initialize cloudinary", zap.Error(err))
		}
		log.Info("cloudinary image uploads enabled")
	} else {
		log.Warn("cloudinary not configured, pet image uploads disabled")
	}

	eventBus := bus.NewInMemoryEventBus()
	stats := projection.NewProfileStatsProjection()

	bus.On(eventBus, "OrderPlaced", stats.HandleOrderPlaced)
	bus.On(eventBus, "AppointmentBooked", stats.HandleAppointmentBooked)
	bus.On(eventBus, "AppointmentCancelled", stats.HandleAppointmentCancelled)

	cat := catalog.New()
	appState := state.New(store)
	jwtManager := jwtutil.NewJWTManager(cfg.JWTSecret, cfg.JWTDuration)

	// Command handlers
	authHandlers := command.NewAuthHandlers(users, eventBus, jwtManager)
	cartHandlers := command.NewCartHandlers(appState, store, eventBus, cat)
	checkoutHandler := command.NewCheckoutHandler(appState, store, eventBus)
	bookingHandlers := command.NewBookingHandlers(appState, store, eventBus, cat)
	petHandlers := command.NewPetHandlers(store, eventBus, images)
	paymentHandlers := command.NewPaymentMethodHandlers(store, eventBus)

	// Query handlers
	catalogQueries := query.NewCatalogQueries(cat)
	storeQueries := query.NewStoreQueries(appState, store)
	bookingQueries := query.NewBookingQueries(appState, store)
	petQueries := query.NewPetQueries(store)
	profileQueries := query.NewProfileQueries(store, stats)

	// Application services
	authService := services.NewAuthService(authHandlers)
	bookingService := services.NewBookingService(bookingHandlers, bookingQueries, catalogQueries)
	storeService := services.NewStoreService(cartHandlers, checkoutHandler, storeQueries, catalogQueries)
	petService := services.NewPetService(petHandlers, petQueries)
	profileService := services.NewProfileService(paymentHandlers, profileQueries)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}

	router := httpHandler.NewRouter(httpHandler.RouterConfig{
		Auth:           httpHandler.NewHTTPAuthController(authService),
		Booking:        httpHandler.NewHTTPBookingController(bookingService),
		Store:          httpHandler.NewHTTPStoreController(storeService),
		Pet:            httpHandler.NewHTTPPetController(petService),
		Profile:        httpHandler.NewHTTPProfileController(profileService),
		JWTManager:     jwtManager,
		RequestTimeout: 30 * time.Second,
		RateLimit:      100,
		RateWindow:     time.Minute,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
	eventBus.Stop()
	log.Info("server stopped")
}
