package main

import (
	"context"
	"curasync-service/internal/app/config"
	"curasync-service/internal/app/contracts"
	"curasync-service/internal/app/delivery/http/controllers"
	"curasync-service/internal/app/delivery/http/middlewares"
	"curasync-service/internal/app/delivery/http/routers"
	"curasync-service/internal/app/drivers/database"
	"curasync-service/internal/app/drivers/logger"
	"curasync-service/internal/app/drivers/messaging"
	"curasync-service/internal/app/drivers/storage"
	"curasync-service/internal/app/models"
	"curasync-service/internal/app/services/core/accounts"
	"curasync-service/internal/app/services/core/auth"
	"curasync-service/internal/app/services/core/forms"
	"curasync-service/internal/app/services/core/roles"
	"curasync-service/internal/app/services/core/session"
	"curasync-service/internal/app/services/core/signup"
	"curasync-service/internal/app/services/shared/locker"
	"curasync-service/internal/app/services/shared/publisher"
	"curasync-service/internal/app/services/shared/ratelimiter"
	"curasync-service/internal/app/services/shared/redis"
	minioStorage "curasync-service/internal/app/services/shared/storage"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.UsesStoredBackend() {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, internalConfig)
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	sessionSweeper := bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", server.Addr),
			zap.String("account_backend", internalConfig.Account.Backend),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if sessionSweeper != nil {
		sessionSweeper.Stop()
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

// bootstrapingTheApp wires every layer onto bootstrap.Router. It returns the
// session sweeper when the simulated backend keeps sessions in memory.
func bootstrapingTheApp(bootstrap *config.Bootstrap) *session.Sweeper {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Forms
	registry := forms.NewRegistry(forms.Limits{
		ProfilePictureMaxMB: internalConfig.Account.ProfilePictureMaxUploadSizeInMB,
		DocumentMaxMB:       internalConfig.Account.DocumentMaxUploadSizeInMB,
	})

	// Accounts
	var (
		accountCreator contracts.AccountCreator
		authenticator  contracts.Authenticator
		sessionService contracts.SessionService
		attemptLimiter auth.AttemptLimiter
		sessionSweeper *session.Sweeper
	)
	if internalConfig.UsesStoredBackend() {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockerService := locker.NewLockService(redisRepository, log)
		sessionService = session.NewSessionService(redisRepository, log)
		accountRepository := accounts.NewAccountMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.AccountsCollection)
		attachmentStorage := minioStorage.NewMinioStorage(storage.NewMinio(bootstrap.DriverConfig, internalConfig))

		eventPublisher, err := publisher.NewAccountEventPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.AccountEventsQueue)
		if err != nil {
			log.Fatal("Failed to create account event publisher", zap.Error(err))
		}

		storedGateway := accounts.NewStoredGateway(accountRepository, attachmentStorage, eventPublisher, sessionService, internalConfig, log)
		accountCreator = accounts.NewLockingCreator(
			accounts.NewRetryingCreator(
				storedGateway,
				internalConfig.Account.RetryAttempts,
				time.Duration(internalConfig.Account.RetryDelayInMilliseconds)*time.Millisecond,
				log,
			),
			lockerService,
			time.Duration(internalConfig.Account.SignupLockExpiryInSeconds)*time.Second,
			log,
		)
		authenticator = storedGateway
		attemptLimiter = ratelimiter.NewResourceLimiter(redisRepository, log)
	} else {
		simulatedGateway := accounts.NewSimulatedGateway(internalConfig, log)
		accountCreator = simulatedGateway
		authenticator = simulatedGateway
		sessionService = simulatedGateway

		sessionSweeper = session.NewSweeper(simulatedGateway, internalConfig.App.SessionSweepCronSpec, log)
		sessionSweeper.Start(context.Background())
	}

	// Roles
	navigator := func(ctx context.Context, role models.Role, location string) error {
		_, err := registry.LoginSchema(role)
		return err
	}
	roleUsecase := roles.NewRoleUsecase(navigator, log)
	roleController := controllers.NewRoleController(log, roleUsecase)

	// Auth
	loginUsecase := auth.NewLoginUsecase(registry, authenticator, sessionService, attemptLimiter, internalConfig, log)
	authController := controllers.NewAuthController(log, loginUsecase, internalConfig)

	// Signup
	signupUsecase := signup.NewSignupUsecase(registry, accountCreator, internalConfig, log)
	signupController := controllers.NewSignupController(log, signupUsecase, internalConfig)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, internalConfig)
	formRateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.FormRequestsBurst,
		time.Second/time.Duration(max(internalConfig.App.FormRequestsPerSecond, 1)),
		time.Duration(internalConfig.App.FormBlockTimeInSecond)*time.Second,
		log,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		formRateLimiter,
		roleController,
		authController,
		signupController,
	)

	log.Info("Routes registered",
		zap.String("prefix", fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)),
		zap.Bool("stored_backend", internalConfig.UsesStoredBackend()),
		zap.String("env", internalConfig.App.Env),
	)

	return sessionSweeper
}
