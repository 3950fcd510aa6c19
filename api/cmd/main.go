package main

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Grete-Solutions/school-system-backend-v1-sub000/api/cmd/build/all"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/auth"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/app/sdk/mux"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/accessbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/auditbus/stores/auditdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/docbus/stores/docdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/gradebus/stores/gradedb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus/stores/permcache"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/permbus/stores/permdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus/stores/schoolcache"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/schoolbus/stores/schooldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/studentbus/stores/studentdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/domain/userbus/stores/userdb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/business/sdk/sqldb"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/keystore"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/logger"
	"github.com/Grete-Solutions/school-system-backend-v1-sub000/foundation/otel"
	"github.com/kelseyhightower/envconfig"
)

var build = "develop"
var routes = "all" // go build -ldflags "-X main.routes=crud"

type Config struct {
	Version struct {
		Build string `json:"build"`
		Desc  string `json:"desc"`
	} `json:"version"`

	Web struct {
		ReadTimeout        time.Duration `envconfig:"WEB_READ_TIMEOUT" default:"5s"`
		WriteTimeout       time.Duration `envconfig:"WEB_WRITE_TIMEOUT" default:"10s"`
		IdleTimeout        time.Duration `envconfig:"WEB_IDLE_TIMEOUT" default:"120s"`
		ShutdownTimeout    time.Duration `envconfig:"WEB_SHUTDOWN_TIMEOUT" default:"20s"`
		APIHost            string        `envconfig:"WEB_API_HOST" default:"0.0.0.0:3000"`
		DebugHost          string        `envconfig:"WEB_DEBUG_HOST" default:"0.0.0.0:3010"`
		CORSAllowedOrigins []string      `envconfig:"WEB_CORS_ALLOWED_ORIGINS" default:"*"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys"`
		ActiveKID  string `envconfig:"AUTH_ACTIVE_KID" default:"54bb2165-71e1-41a6-af3e-7da4a0e1e2c1"`
		Issuer     string `envconfig:"AUTH_ISSUER" default:"school system"`
	}
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"school"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Cache struct {
		SchoolTTL time.Duration `envconfig:"CACHE_SCHOOL_TTL" default:"5m"`
	}
	Tempo struct {
		Host        string  `envconfig:"TEMPO_HOST" default:"tempo:4317"`
		ServiceName string  `envconfig:"TEMPO_SERVICE_NAME" default:"SCHOOL-SYSTEM"`
		Probability float64 `envconfig:"TEMPO_PROBABILITY" default:"0.05"`
		Enabled     bool    `envconfig:"TEMPO_ENABLED" default:"true"`
	}
}

func main() {
	var log *logger.Logger

	events := logger.Events{
		Error: func(ctx context.Context, r logger.Record) {
			log.Info(ctx, "******* SEND ALERT *******")
		},
	}

	log = logger.NewWithEvents(os.Stdout, logger.LevelInfo, "SCHOOL-SYSTEM", otel.GetTraceID, events)

	// -------------------------------------------------------------------------

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {

	// -------------------------------------------------------------------------
	// GOMAXPROCS

	log.Info(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// -------------------------------------------------------------------------
	// Configuration

	var cfg Config

	cfg.Version.Build = build
	cfg.Version.Desc = "SCHOOL-SYSTEM"

	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	// -------------------------------------------------------------------------
	// App Starting

	log.Info(ctx, "starting service", "version", cfg.Version.Build)
	defer log.Info(ctx, "shutdown complete")

	log.Info(ctx, "startup", "config", sanitizeConfig(cfg))
	log.BuildInfo(ctx)

	expvar.NewString("build").Set(cfg.Version.Build)

	// -------------------------------------------------------------------------
	// Database Support

	log.Info(ctx, "startup", "status", "initializing database support", "hostport", cfg.DB.Host)

	db, err := sqldb.Open(sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	})
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}

	defer db.Close()

	// -------------------------------------------------------------------------
	// Auth Support

	log.Info(ctx, "startup", "status", "initializing authentication support")

	ks := keystore.New()

	if _, err := ks.LoadByFileSystem(os.DirFS(cfg.Auth.KeysFolder)); err != nil {
		return fmt.Errorf("loading keys: %w", err)
	}

	// -------------------------------------------------------------------------
	// Start Tracing Support

	log.Info(ctx, "startup", "status", "initializing tracing support")

	traceProvider, teardown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Tempo.ServiceName,
		Host:        cfg.Tempo.Host,
		ExcludedRoutes: map[string]struct{}{
			"/v1/liveness":  {},
			"/v1/readiness": {},
		},
		Probability: cfg.Tempo.Probability,
		Enabled:     cfg.Tempo.Enabled,
	})
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}

	defer teardown(context.Background())

	tracer := traceProvider.Tracer(cfg.Tempo.ServiceName)

	// -------------------------------------------------------------------------
	// Business Domains

	log.Info(ctx, "startup", "status", "initializing business domains")

	userBus := userbus.NewCore(userdb.NewStore(log, db))
	schoolBus := schoolbus.NewCore(log, schoolcache.NewStore(log, schooldb.NewStore(log, db), cfg.Cache.SchoolTTL))
	accessBus := accessbus.NewCore(userBus, schoolBus)
	studentBus := studentbus.NewCore(log, studentdb.NewStore(log, db))
	gradeBus := gradebus.NewCore(log, gradedb.NewStore(log, db))
	docBus := docbus.NewCore(log, docdb.NewStore(log, db))
	auditBus := auditbus.NewCore(log, auditdb.NewStore(log, db))

	permStore, err := permcache.NewStore(log, permdb.NewStore(log, db))
	if err != nil {
		return fmt.Errorf("initializing permission store: %w", err)
	}
	permBus := permbus.NewCore(permStore)

	authClient := auth.New(auth.Config{
		Log:       log,
		UserBus:   userBus,
		KeyLookup: ks,
		Issuer:    cfg.Auth.Issuer,
	})

	// -------------------------------------------------------------------------
	// Debug Service

	go func() {
		log.Info(ctx, "startup", "status", "debug router started", "host", cfg.Web.DebugHost)

		if err := http.ListenAndServe(cfg.Web.DebugHost, expvar.Handler()); err != nil {
			log.Error(ctx, "shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "err", err)
		}
	}()

	// -------------------------------------------------------------------------
	// Start API Service

	log.Info(ctx, "startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	cfgMux := mux.Config{
		Build:  cfg.Version.Build,
		Log:    log,
		DB:     db,
		Tracer: tracer,
		BusConfig: mux.BusConfig{
			UserBus:    userBus,
			SchoolBus:  schoolBus,
			AccessBus:  accessBus,
			StudentBus: studentBus,
			GradeBus:   gradeBus,
			DocBus:     docBus,
			AuditBus:   auditBus,
			PermBus:    permBus,
		},
		AuthConfig: mux.AuthConfig{
			Auth:      authClient,
			ActiveKID: cfg.Auth.ActiveKID,
		},
	}

	webAPI := mux.WebAPI(cfgMux,
		buildRoutes(),
		mux.WithCORS(cfg.Web.CORSAllowedOrigins),
	)

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      webAPI,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     logger.NewStdLogger(log, logger.LevelError),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info(ctx, "startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// -------------------------------------------------------------------------
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.Info(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func buildRoutes() mux.RouteAdder {

	// The idea here is that we can build different versions of the binary
	// with different sets of exposed web APIs. By default we build a single
	// instance with all the web APIs.
	switch routes {
	case "all":
		return all.Routes()
	}

	return all.Routes()
}

func sanitizeConfig(cfg Config) string {
	cfg.DB.Password = "[MASKED]"

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Sprintf("%+v", cfg)
	}
	return string(data)
}
