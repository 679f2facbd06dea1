package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/auth"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/broker"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/compare"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/factory"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/middleware"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/reconcile"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage/postgres"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage/sqlite"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/trigger"
	"github.com/integrationsandbox/integrationsandbox/pkg/util"
	"github.com/sirupsen/logrus"
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSqlite   = "sqlite"
)

type DatabaseConfig struct {
	Driver   string                      `yaml:"driver"`
	Postgres util.PostgresDatabaseConfig `yaml:"postgres"`
	Sqlite   util.SqliteDatabaseConfig   `yaml:"sqlite"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type SandboxConfig struct {
	MaxBulkSize    int   `yaml:"max_bulk_size"`
	FloatPrecision int32 `yaml:"float_precision"`
}

type APIConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Sandbox  SandboxConfig  `yaml:"sandbox"`
	Auth     auth.Config    `yaml:"auth"`
	Trigger  trigger.Config `yaml:"trigger"`
}

type API struct {
	userMgr    auth.UserManager
	reconciler reconcile.Reconciler
	shipments  tms.ShipmentManager
	events     broker.EventManager
	trigger    trigger.Trigger

	closeStorage func()
	httpServer   *http.Server
}

// NewStorage opens the entity store selected by cfg.Driver. The returned
// function releases it.
func NewStorage(cfg DatabaseConfig) (storage.Storage, func(), error) {
	switch cfg.Driver {
	case DatabaseDriverPostgres:
		s, err := postgres.NewStorageWithConfig(cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case DatabaseDriverSqlite, "":
		s, err := sqlite.NewStorageWithConfig(cfg.Sqlite)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func NewAPIWithConfig(cfg APIConfig) (*API, error) {
	store, closeStorage, err := NewStorage(cfg.Database)
	if err != nil {
		logrus.Errorf("failed to create storage: %v", err)
		return nil, err
	}

	userMgr, err := auth.NewUserManager(cfg.Auth)
	if err != nil {
		closeStorage()
		return nil, err
	}

	fakes := factory.New()
	reconciler := reconcile.NewReconciler(store, compare.NewOptions(cfg.Sandbox.FloatPrecision))
	shipments := tms.NewShipmentManager(store, fakes, cfg.Sandbox.MaxBulkSize)
	events := broker.NewEventManager(store, fakes, cfg.Sandbox.MaxBulkSize)
	trig := trigger.NewTrigger(shipments, events, trigger.NewHTTPDispatcher(cfg.Trigger))

	api, err := NewAPIWithController(userMgr, reconciler, shipments, events, trig, cfg.Server.Address())
	if err != nil {
		closeStorage()
		return nil, err
	}
	api.closeStorage = closeStorage
	return api, nil
}

func NewAPIWithController(
	userMgr auth.UserManager,
	reconciler reconcile.Reconciler,
	shipments tms.ShipmentManager,
	events broker.EventManager,
	trig trigger.Trigger,
	localAddress string,
) (*API, error) {
	apiServer := &API{
		userMgr:    userMgr,
		reconciler: reconciler,
		shipments:  shipments,
		events:     events,
		trigger:    trig,
	}

	r := mux.NewRouter()
	r.Use(middleware.Log)
	r.HandleFunc("/health", apiServer.health).Methods(http.MethodGet)
	r.HandleFunc("/token", apiServer.login).Methods(http.MethodPost)

	userRouter := r.NewRoute().Subrouter()
	userRouter.Use(middleware.NewUserTokenAuth(userMgr).Authenticate)
	userRouter.HandleFunc("/users/me", apiServer.me).Methods(http.MethodGet)

	v1 := userRouter.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/broker/order", apiServer.validateBrokerOrder).Methods(http.MethodPost)
	v1.HandleFunc("/broker/events", apiServer.createBrokerEvent).Methods(http.MethodPost)
	v1.HandleFunc("/broker/events", apiServer.listBrokerEvents).Methods(http.MethodGet)
	v1.HandleFunc("/broker/events/seed", apiServer.seedBrokerEvents).Methods(http.MethodPost)
	v1.HandleFunc("/broker/events/new", apiServer.listNewBrokerEvents).Methods(http.MethodGet)
	v1.HandleFunc("/broker/events/{id}/processed", apiServer.markBrokerEventProcessed).Methods(http.MethodPost)

	v1.HandleFunc("/tms/event/{shipment_id}", apiServer.validateTmsEvent).Methods(http.MethodPost)
	v1.HandleFunc("/tms/shipments", apiServer.createShipment).Methods(http.MethodPost)
	v1.HandleFunc("/tms/shipments", apiServer.listShipments).Methods(http.MethodGet)
	v1.HandleFunc("/tms/shipments/seed", apiServer.seedShipments).Methods(http.MethodPost)
	v1.HandleFunc("/tms/shipments/{id}", apiServer.getShipment).Methods(http.MethodGet)

	v1.HandleFunc("/trigger/shipments", apiServer.triggerShipments).Methods(http.MethodPost)
	v1.HandleFunc("/trigger/events", apiServer.triggerEvents).Methods(http.MethodPost)

	apiServer.httpServer = &http.Server{
		Addr:              localAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return apiServer, nil
}

func (a *API) Run() error {
	err := a.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) Close(ctx context.Context) error {
	a.httpServer.SetKeepAlivesEnabled(false)
	err := a.httpServer.Shutdown(ctx)
	if a.closeStorage != nil {
		a.closeStorage()
	}
	return err
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := auth.AuthenticateUserRequest{
		Username: r.PostForm.Get("username"),
		Password: auth.RawPassword(r.PostForm.Get("password")),
	}
	token, err := a.userMgr.Authenticate(r.Context(), time.Now().Unix(), req)
	if errors.Is(err, model.ErrUserError) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "user not found in request", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// writeError answers with the status the error class maps to.
func writeError(w http.ResponseWriter, err error) {
	status := model.ErrorToHttpStatus(err)
	switch {
	case status == http.StatusUnprocessableEntity:
		logrus.Errorf("code table is incomplete: %v", err)
		http.Error(w, err.Error(), status)
	case status >= http.StatusInternalServerError && status != http.StatusBadGateway:
		http.Error(w, fmt.Sprintf("Internal server error: %s", err.Error()), status)
	default:
		http.Error(w, err.Error(), status)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Warnf("failed to encode/write response: %v", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// parsePaging reads offset and limit from the query string. Absent values stay zero.
func parsePaging(r *http.Request) (offset, limit int, err error) {
	offsetStr := r.URL.Query().Get("offset")
	limitStr := r.URL.Query().Get("limit")
	if offsetStr != "" {
		v, err := strconv.ParseInt(offsetStr, 10, 32)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("offset is invalid%w", model.ErrInvalidParameter)
		}
		offset = int(v)
	}
	if limitStr != "" {
		v, err := strconv.ParseInt(limitStr, 10, 32)
		if err != nil || v < 1 {
			return 0, 0, fmt.Errorf("limit is invalid%w", model.ErrInvalidParameter)
		}
		limit = int(v)
	}
	return offset, limit, nil
}
