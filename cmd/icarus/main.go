package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/growloop/icarus/internal/health"
	"github.com/growloop/icarus/internal/logging"
	"github.com/growloop/icarus/internal/server"
	"github.com/growloop/icarus/internal/service/impl"
	"github.com/growloop/icarus/internal/storage/postgres"
	"github.com/growloop/icarus/internal/trending"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"timeout for processing of a request"`

	JWTSecret string `long:"jwt.secret" env:"JWT_SECRET" required:"true" description:"secret for verifying bearer tokens"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	StartingBalance int64 `long:"points.starting_balance" env:"POINTS_STARTING_BALANCE" default:"100" description:"points granted to a new profile"`
	SubmissionCost  int64 `long:"points.submission_cost" env:"POINTS_SUBMISSION_COST" default:"10" description:"points debited for publishing a tweet"`
	RewardMin       int   `long:"points.reward_min" env:"POINTS_REWARD_MIN" default:"3" description:"lower bound of a new tweet's point value"`
	RewardMax       int   `long:"points.reward_max" env:"POINTS_REWARD_MAX" default:"5" description:"upper bound of a new tweet's point value"`

	TrendingInterval  time.Duration `long:"trending.interval" env:"TRENDING_INTERVAL" default:"5m" description:"interval between hot flag refreshes"`
	TrendingWindow    time.Duration `long:"trending.window" env:"TRENDING_WINDOW" default:"24h" description:"trailing window for hot flag engagement"`
	TrendingThreshold int64         `long:"trending.threshold" env:"TRENDING_THRESHOLD" default:"10" description:"interactions within window required for the hot flag"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Icarus"
	parser.LongDescription = "Icarus"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	if err := logging.Setup(opts.LogLevel, opts.SentryDSN, health.GetVersion(), "icarus"); err != nil {
		logrus.WithError(err).Fatal("failed to setup logging")
	}

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	db := mustGetDB()

	s := postgres.New(db)

	svc := impl.New(s, impl.Config{
		StartingBalance: opts.StartingBalance,
		SubmissionCost:  opts.SubmissionCost,
		RewardMin:       opts.RewardMin,
		RewardMax:       opts.RewardMax,
	})

	refresher := trending.New(s, opts.TrendingInterval, opts.TrendingWindow, opts.TrendingThreshold)

	r := chi.NewMux()
	server.SetupRouter(svc, r, server.Config{
		JWTSecret: []byte(opts.JWTSecret),
		Timeout:   opts.RequestTimeout,
	})
	r.Get("/health", health.Handler(
		5*time.Second,
		health.SubjectPinger("postgres", func(ctx context.Context) error { return s.Ping(ctx) }),
		refresher,
	))

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		return refresher.Run(ctx)
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
