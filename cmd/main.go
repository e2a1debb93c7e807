package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/survey-collector/internal/handlers"
	"github.com/sbilibin2017/survey-collector/internal/logger"
	"github.com/sbilibin2017/survey-collector/internal/middlewares"
	"github.com/sbilibin2017/survey-collector/internal/repositories"
	"github.com/sbilibin2017/survey-collector/internal/services"
	"github.com/sbilibin2017/survey-collector/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title survey-collector API
// @version 1.0.0
// @description Collects survey submissions with photos and serves the dashboard listing and per-section archives
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// run initializes the logger, database, photo store, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.CreateSchema(ctx, db); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, submission events will not be published")
	}

	photos := storage.NewPhotoStore(cfg.PhotoRoot)
	logger.Log.Infof("Photos are stored in %s", photos.Dir())

	r := newRouter(cfg, db, photos, kafkaWriter, loc)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// openDB connects to the configured database and applies pool settings.
// SQLite gets a single connection so that writers never contend for the file lock.
func openDB(ctx context.Context, cfg config) (*sqlx.DB, error) {
	logger.Log.Infow("Connecting to database", "driver", cfg.DBDriver)

	dsn := cfg.DBDSN
	if !repositories.IsPostgres(cfg.DBDriver) {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if repositories.IsPostgres(cfg.DBDriver) {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	} else {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}

// sqliteDSN adds the foreign key pragma to a SQLite DSN so that every
// connection the pool opens enforces it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// newRouter wires repositories, services and handlers into a chi router.
func newRouter(
	cfg config,
	db *sqlx.DB,
	photos *storage.PhotoStore,
	kafkaWriter services.KafkaWriter,
	loc *time.Location,
) http.Handler {
	txManager := repositories.NewTxManager(db)

	// Initialize repositories
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	sectionWriteRepo := repositories.NewSectionWriteRepository(db, repositories.GetTxFromContext)
	sectionReadRepo := repositories.NewSectionReadRepository(db)
	answerWriteRepo := repositories.NewAnswerWriteRepository(db, repositories.GetTxFromContext)
	answerReadRepo := repositories.NewAnswerReadRepository(db)
	photoWriteRepo := repositories.NewPhotoWriteRepository(db, repositories.GetTxFromContext)
	photoReadRepo := repositories.NewPhotoReadRepository(db)
	listingReadRepo := repositories.NewListingReadRepository(db)
	purgeRepo := repositories.NewPurgeRepository(db, repositories.GetTxFromContext)

	// Initialize services
	submissionService := services.NewSubmissionService(
		txManager, userWriteRepo, sectionWriteRepo, answerWriteRepo, photoWriteRepo,
		photos, kafkaWriter, loc,
	)
	listingService := services.NewListingService(listingReadRepo)
	archiveService := services.NewArchiveService(sectionReadRepo, answerReadRepo, photoReadRepo, photos, loc)
	purgeService := services.NewPurgeService(txManager, purgeRepo, photos)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.RequestSize(cfg.MaxBodyMB << 20))

	r.Get("/api/dados", handlers.NewListingHandler(listingService))
	r.Post("/api/enviar-dados", handlers.NewSubmitHandler(submissionService))
	r.Get("/download-secao", handlers.NewDownloadHandler(archiveService))
	r.Post("/admin/limpar-tabelas", handlers.NewPurgeHandler(purgeService))
	r.Get("/health", handlers.NewHealthHandler(db))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Dashboard static files
	r.Handle("/*", http.FileServer(http.Dir(cfg.PublicDir)))

	return r
}
