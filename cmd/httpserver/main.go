package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"moviedb/dynamodb"
	"moviedb/httpserver"
	"moviedb/movie"
	"moviedb/pkg/config"
	"moviedb/pkg/logger"
	"moviedb/pkg/sentry"
	"moviedb/postgres"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

// @title Movies API
// @version 1.0
// @description CRUD API over movies and their genres.
// @BasePath /

//go:generate swag init -g cmd/httpserver/main.go -d ../.. -o ../../docs
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fallback, _ := logger.New("")
		fallback.Fatalw("cannot load config", "error", err)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newMovieRepository(ctx, cfg)
	if err != nil {
		sentry.WithTags(map[string]string{"driver": cfg.DB.Driver}).Fatal(err)
		log.Fatalw("cannot open movie store", "driver", cfg.DB.Driver, "error", err)
	}
	log.Infow("movie store ready", "driver", cfg.DB.Driver)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(repo)),
	)
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot create server", "error", err)
	}

	go func() {
		log.Infow("server started", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sentry.Fatal(err)
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}

func newMovieRepository(ctx context.Context, cfg *config.Config) (movie.Repository, error) {
	if cfg.DB.Driver == config.DriverDynamoDB {
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		return dynamodb.NewMovieRepository(client, dynamodb.Tables{
			Movies:   cfg.DynamoDB.MoviesTable,
			Genres:   cfg.DynamoDB.GenresTable,
			Counters: cfg.DynamoDB.CountersTable,
		}), nil
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:     cfg.DB.Name,
		DBUser:     cfg.DB.User,
		Password:   cfg.DB.Pass,
		Host:       cfg.DB.Host,
		Port:       strconv.Itoa(cfg.DB.Port),
		SSLMode:    cfg.DB.EnableSSL,
		LogQueries: cfg.DB.LogQueries,
	})
	if err != nil {
		return nil, err
	}
	return postgres.NewMovieRepository(db), nil
}
