package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	api "github.com/mis-safeli/safeli-api/api/handlers"
	"github.com/mis-safeli/safeli-api/internal/config"
	"github.com/mis-safeli/safeli-api/internal/dbrepo"
	"github.com/mis-safeli/safeli-api/internal/driver"
	"github.com/mis-safeli/safeli-api/internal/models"
	"github.com/mis-safeli/safeli-api/internal/utils"
)

// connRetryDelay is how long to wait before the single startup
// connectivity retry.
const connRetryDelay = 5 * time.Second

// application is the receiver for the various parts of the application
type application struct {
	config   models.Config
	infoLog  *log.Logger
	errorLog *log.Logger
	version  string
	Handlers *api.HandlerRepo
	DB       *dbrepo.DBRepository
	Pool     *pgxpool.Pool
	Server   *http.Server
	ctx      context.Context
}

var app *application

// serve starts the server and listens for requests
func (app *application) serve() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Port),
		Handler:           app.routes(),
		IdleTimeout:       30 * time.Second,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Minute,
		WriteTimeout:      5 * time.Minute,
	}

	app.Server = srv
	app.infoLog.Printf("Starting HTTP Back end server in %s mode on port %d", app.config.Env, app.config.Port)
	app.infoLog.Println(".....................................")
	return srv.ListenAndServe()
}

// ShutdownServer gracefully shuts down the server
func (app *application) ShutdownServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	app.infoLog.Println("Shutting down the server gracefully...")
	if err := app.Server.Shutdown(ctx); err != nil {
		app.errorLog.Printf("Server forced to shutdown: %s", err)
		return err
	}

	app.infoLog.Println("Server exited gracefully")
	return nil
}

// Root reports liveness.
func (app *application) Root(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Status      string `json:"status"`
		Message     string `json:"message"`
		Timestamp   string `json:"timestamp"`
		Environment string `json:"environment"`
	}{
		Status:      "OK",
		Message:     "Safeli Server is running",
		Timestamp:   time.Now().Format(time.RFC3339),
		Environment: app.config.Env,
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// Health reports liveness plus store connectivity.
func (app *application) Health(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Status      string `json:"status"`
		Message     string `json:"message"`
		Timestamp   string `json:"timestamp"`
		Environment string `json:"environment"`
	}{
		Status:      "OK",
		Message:     "Server and Database are running properly",
		Timestamp:   time.Now().Format(time.RFC3339),
		Environment: app.config.Env,
	}

	if err := app.Pool.Ping(r.Context()); err != nil {
		app.errorLog.Println("health check:", err)
		resp.Status = "ERROR"
		resp.Message = "Database connection failed"
		utils.WriteJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// RunServer is the application entry point
func RunServer(ctx context.Context) error {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stdout, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		errorLog.Println(err)
		return err
	}
	cfg.JWT = models.JWTConfig{
		SecretKey: os.Getenv("JWT_SECRET"),
		Issuer:    "safeli",
		Audience:  "safeli_users",
		Algorithm: "HS256",
		Expiry:    time.Hour * 24,
	}
	if cfg.JWT.SecretKey == "" {
		cfg.JWT.SecretKey = "safeli_dev_secret"
	}

	dsn := cfg.DB.DSN
	if cfg.Env != "live" {
		dsn = cfg.DB.DEVDSN
	}

	dbConn, err := driver.NewPgxPool(dsn)
	if err != nil {
		errorLog.Println(err)
		return err
	}
	defer dbConn.Close()

	// The server accepts requests whether or not the database is
	// reachable; a failed initial ping gets exactly one delayed retry
	// and individual requests fail until connectivity returns.
	if err := driver.Ping(dbConn); err != nil {
		errorLog.Println("DB connection error:", err)
		time.AfterFunc(connRetryDelay, func() {
			infoLog.Println("Retrying database connection...")
			if err := driver.Ping(dbConn); err != nil {
				errorLog.Println("DB connection retry failed:", err)
				return
			}
			infoLog.Println("Connected to database")
		})
	} else {
		infoLog.Println("Connected to database")
	}

	dbRepo := dbrepo.NewDBRepository(dbConn)

	app = &application{
		config:   cfg,
		infoLog:  infoLog,
		errorLog: errorLog,
		version:  models.APPVersion,
		Handlers: api.NewHandlerRepo(dbRepo, cfg.JWT, infoLog, errorLog),
		DB:       dbRepo,
		Pool:     dbConn,
		ctx:      ctx,
	}

	// Run the server in a separate goroutine so we can wait for shutdown signals
	go func() {
		if err := app.serve(); err != nil {
			errorLog.Printf("Error starting server: %s", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	<-stop

	return app.ShutdownServer()
}

// Stop server from outer module
func StopServer() error {
	return app.ShutdownServer()
}
