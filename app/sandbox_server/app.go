package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	formatter "github.com/bluexlab/logrus-formatter"
	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/config"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/api"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/flow"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/sirupsen/logrus"
)

const appName string = "sandbox-server"

type CLI struct {
	Server struct {
	} `cmd:"" help:"Run the server"`
	Migrate struct {
		Path string `short:"p" long:"path" help:"Path to the migration files" type:"existingdir" default:"migrations"`
	} `cmd:"" help:"Migrate the database"`
	Generate struct {
		Event string `short:"e" long:"event" help:"Broker event type of the generated flow" default:"ORDER_CREATED" enum:"ORDER_CREATED,CANCEL_ORDER,DRIVING_TO_LOAD,ORDER_LOADED,ETA_EVENT,ORDER_DELIVERED"`
		Seed  uint64 `long:"seed" help:"Seed of the fake data generator. 0 picks a random seed."`
	} `cmd:"" help:"Print a complete shipment, broker order, broker event and TMS event flow"`
	Config string `short:"c" long:"config" help:"Path to the configuration file" type:"existingfile" default:"config.yaml"`
}

type Config struct {
	api.APIConfig `yaml:",inline"`
	LogLevel      string `yaml:"log_level"`
	OTLPEndpoint  string `yaml:"otlp_endpoint"`
}

func (c *Config) SetDefaults() {
	c.Database.Driver = api.DatabaseDriverSqlite
	c.Database.Sqlite.Path = "sandbox.db"
	c.Database.Postgres.Port = 5432
	c.Database.Postgres.SSLMode = "disable"
	c.Database.Postgres.PoolSize = 10
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 8000
	c.Sandbox.MaxBulkSize = 1000
	c.Sandbox.FloatPrecision = 2
	c.Auth.JWTExpireMinutes = 15
	c.Trigger.Timeout = 10
	c.Trigger.MaxRetry = 3
	c.LogLevel = "info"
}

type App struct{}

func (a *App) Run() {
	formatter.InitLogger()

	var cli CLI
	ctx := kong.Parse(&cli, kong.UsageOnError())
	switch ctx.Command() {
	case "server":
		a.runServer(cli)
	case "migrate":
		a.runMigrate(cli)
	case "generate":
		a.runGenerate(cli)
	default:
	}
}

func loadConfig(path string) Config {
	var appConfig Config
	if err := config.FromFile(path, &appConfig); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(128)
	}

	level, err := logrus.ParseLevel(appConfig.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, keep %s", appConfig.LogLevel, logrus.GetLevel())
	} else {
		logrus.SetLevel(level)
	}
	return appConfig
}

func (a *App) runServer(cli CLI) {
	ctx := context.Background()
	appConfig := loadConfig(cli.Config)

	if endpoint := appConfig.OTLPEndpoint; endpoint != "" {
		exporter, err := otlp_util.InitExporter(
			otlp_util.WithContext(ctx),
			otlp_util.WithEndPoint(endpoint),
			otlp_util.WithServiceName(appName),
			otlp_util.WithInSecure(),
			otlp_util.WithErrorHandler(func(err error) {
				logrus.Warnf("OTLP error: %v", err)
			}),
		)
		if err != nil {
			logrus.Errorf("failed to initialize OTLP exporter: %v", err)
			os.Exit(128)
		}
		defer func() { _ = exporter.Shutdown(ctx) }()
	}

	apiServer, err := api.NewAPIWithConfig(appConfig.APIConfig)
	if err != nil {
		logrus.Errorf("failed to create API server: %v", err)
		os.Exit(128)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func(wg *sync.WaitGroup) {
		defer wg.Done()

		logrus.Infof("listening on %s", appConfig.Server.Address())
		if err := apiServer.Run(); err != nil {
			logrus.Errorf("failed to run API server: %v", err)
			os.Exit(1)
		}
	}(wg)

	// listen for the stop signal
	<-ctx.Done()

	// Restore default behavior on the signals we are listening to
	stop()
	logrus.Info("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Close(ctx); err != nil {
		logrus.Warnf("failed to close API server: %v", err)
		os.Exit(1)
	}

	wg.Wait()
}

func (a *App) runMigrate(cli CLI) {
	appConfig := loadConfig(cli.Config)

	// SQLite tables are created when the store opens.
	if appConfig.Database.Driver != api.DatabaseDriverPostgres {
		_, closeStorage, err := api.NewStorage(appConfig.Database)
		if err != nil {
			logrus.Errorf("failed to migrate: %v", err)
			os.Exit(1)
		}
		closeStorage()
		return
	}

	// set up the logger
	pop.SetLogger(func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing
		}
	})

	// setup database connection
	db := appConfig.Database.Postgres
	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: db.Database,
		Host:     db.Host,
		Port:     strconv.Itoa(db.Port),
		User:     db.User,
		Password: db.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(128)
	}

	// create the database if it doesn't exist
	if err = conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Path, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(128)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	// run the migrations
	if err = migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}
}

func (a *App) runGenerate(cli CLI) {
	generator := flow.NewGenerator(factory.New(factory.WithSeed(cli.Generate.Seed)))
	f, err := generator.GenerateCompleteFlow(model.BrokerEventType(cli.Generate.Event))
	if err != nil {
		logrus.Errorf("failed to generate flow: %v", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		logrus.Errorf("failed to encode flow: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
