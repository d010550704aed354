package protocal

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"textkit-client/configs"
	httpAdapter "textkit-client/internal/adapters/input/http"
	fileAdapter "textkit-client/internal/adapters/output/file"
	"textkit-client/internal/adapters/output/memory"
	"textkit-client/internal/adapters/output/postgres"
	sqliteAdapter "textkit-client/internal/adapters/output/sqlite"
	"textkit-client/internal/adapters/output/textkit"
	"textkit-client/internal/application"
	"textkit-client/internal/ports/output"
	"textkit-client/pkg/database_driver/gorm"
	"textkit-client/pkg/database_driver/sqlite"
	"textkit-client/pkg/otel"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

const defaultSQLitePath = ".textkit/session.db"

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()
	setupLogging(conf.App)
	logrus.Info(conf.Env)

	ctx := context.Background()

	if conf.Telemetry.Enabled {
		shutdownTracing, err := otel.Init(ctx, otel.Config{
			ServiceName: conf.Telemetry.ServiceName,
			UseStdout:   conf.Telemetry.Stdout,
		})
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logrus.Errorln(err)
			}
		}()
	}

	// Wire up the hexagonal architecture layers
	// Output adapter (token store)
	tokens, closeStore, err := NewTokenStore(conf.Storage, conf.Postgres)
	if err != nil {
		return err
	}
	defer closeStore()
	// Output adapter (text service client)
	client, err := textkit.NewTextkitClientAdapter(conf.API)
	if err != nil {
		return err
	}
	// Application service (use case)
	srv := application.NewSessionService(client, tokens)
	if err := srv.Restore(ctx); err != nil {
		logrus.Warnf("Starting without a restored session: %v", err)
	}
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Get("/swagger/*", swagger.HandlerDefault) // default
	hdl.Register(app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Println("Gracefull shut down ...")
		if err := app.Shutdown(); err != nil {
			logrus.Println("Error when shutdown server: ", err)
		}
	}()

	logrus.Println("Listerning on port: ", conf.App.Port)
	return app.Listen(":" + conf.App.Port)
}

// NewTokenStore builds the token store named by storage.driver and a func releasing it
func NewTokenStore(storage configs.Storage, pg configs.Postgres) (output.TokenStore, func(), error) {
	noop := func() {}

	switch strings.ToLower(storage.Driver) {
	case configs.StorageDriverMemory:
		logrus.Warn("Session token is kept in memory only")
		return memory.NewMemoryTokenStore(), noop, nil

	case "", configs.StorageDriverFile:
		store, err := fileAdapter.NewFileTokenStore(storage.Path)
		if err != nil {
			return nil, noop, err
		}
		logrus.Infof("Session token is persisted in %s", storage.Path)
		return store, noop, nil

	case configs.StorageDriverSQLite:
		path := storage.Path
		if path == "" || filepath.Ext(path) == ".json" {
			path = defaultSQLitePath
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}
		store, err := sqliteAdapter.NewSQLiteTokenStore(db)
		if err != nil {
			sqlite.Close(db)
			return nil, noop, err
		}
		return store, func() { sqlite.Close(db) }, nil

	case configs.StorageDriverPostgres:
		dbConGorm, err := gorm.ConnectToPostgreSQL(pg.Host, pg.Port, pg.Username, pg.Password, pg.DbName, pg.SSLMode)
		if err != nil {
			return nil, noop, err
		}
		repo, err := postgres.NewTokenRepository(dbConGorm.Postgres)
		if err != nil {
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			return nil, noop, err
		}
		return repo, func() { gorm.DisconnectPostgres(dbConGorm.Postgres) }, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", storage.Driver)
}

func setupLogging(app configs.App) {
	level, err := logrus.ParseLevel(app.LogLevel)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", app.LogLevel)
		level = logrus.InfoLevel
	}
	if app.Debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
