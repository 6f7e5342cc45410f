package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/e-voting/application/audit"
	catalogapp "github.com/muhammadheryan/e-voting/application/catalog"
	configapp "github.com/muhammadheryan/e-voting/application/config"
	"github.com/muhammadheryan/e-voting/application/realtime"
	userapp "github.com/muhammadheryan/e-voting/application/user"
	voteapp "github.com/muhammadheryan/e-voting/application/vote"
	"github.com/muhammadheryan/e-voting/cmd/config"
	redisclient "github.com/muhammadheryan/e-voting/cmd/redis"
	_ "github.com/muhammadheryan/e-voting/docs"
	"github.com/muhammadheryan/e-voting/migrations"
	auditRepo "github.com/muhammadheryan/e-voting/repository/audit"
	categoryRepo "github.com/muhammadheryan/e-voting/repository/category"
	configRepo "github.com/muhammadheryan/e-voting/repository/config"
	nomineeRepo "github.com/muhammadheryan/e-voting/repository/nominee"
	redisRepo "github.com/muhammadheryan/e-voting/repository/redis"
	sessionRepo "github.com/muhammadheryan/e-voting/repository/session"
	txRepo "github.com/muhammadheryan/e-voting/repository/tx"
	voteRepo "github.com/muhammadheryan/e-voting/repository/vote"
	voterRepo "github.com/muhammadheryan/e-voting/repository/voter"
	"github.com/muhammadheryan/e-voting/thirdparty/ipresolver"
	"github.com/muhammadheryan/e-voting/thirdparty/paystack"
	"github.com/muhammadheryan/e-voting/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-voting/thirdparty/storage"
	"github.com/muhammadheryan/e-voting/transport"
	"github.com/muhammadheryan/e-voting/utils/logger"
	"go.uber.org/zap"
)

// @title E-VOTING API
// @version 1.0
// @description Paid voting API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
	}
	defer publisher.Close()

	images, err := storage.NewImageResolver(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("err init storage", zap.Error(err))
	}

	// Initialize repositories
	ConfigRepo := configRepo.NewConfigRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	NomineeRepo := nomineeRepo.NewNomineeRepository(db)
	VoterRepo := voterRepo.NewVoterRepository(db)
	SessionRepo := sessionRepo.NewSessionRepository(db)
	VoteRepo := voteRepo.NewVoteRepository(db)
	AuditRepo := auditRepo.NewAuditRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	Recorder := audit.NewRecorder(cfg.Audit.Enabled, AuditRepo)
	ConfigApp := configapp.NewConfigApp(cfg, ConfigRepo, RedisRepo, publisher, Recorder)
	CatalogApp := catalogapp.NewCatalogApp(CategoryRepo, NomineeRepo, VoterRepo, ConfigApp, images)
	UserApp := userapp.NewUserApp(cfg, VoterRepo, SessionRepo, RedisRepo, Recorder)
	PaystackClient := paystack.NewClient(cfg.Payment.PaystackBaseURL, cfg.Payment.PaystackSecretKey, cfg.Payment.HTTPTimeout)
	VoteApp := voteapp.NewVoteApp(cfg, ConfigApp, VoteRepo, NomineeRepo, VoterRepo, TxRepo, RedisRepo, publisher, PaystackClient, Recorder)
	Projector := realtime.NewProjector(ConfigApp, NomineeRepo)

	// configuration and catalog must load before serving
	if err := Projector.Init(ctx); err != nil {
		logger.Fatal("err load configuration and catalog", zap.Error(err))
	}
	if !PaystackClient.Enabled() {
		logger.Warn("paystack secret key not set, payment callbacks are not verified")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Server.BaseURL, cfg.Auth.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx, Projector); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	httpTransport := transport.NewTransport(cfg.Auth, &transport.RestHandler{
		UserApp:    UserApp,
		VoteApp:    VoteApp,
		ConfigApp:  ConfigApp,
		CatalogApp: CatalogApp,
		Projector:  Projector,
		IPResolver: ipresolver.NewResolver(cfg.Voting.IPLookupURL, cfg.Voting.TrustProxyHeaders, cfg.Payment.HTTPTimeout),
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
