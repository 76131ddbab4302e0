package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "transportes/internal/config"
	intdb "transportes/internal/db"
	router "transportes/internal/http"
	"transportes/internal/http/handlers"
	"transportes/internal/repositories"
	"transportes/internal/services"
	"transportes/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func main() {
	env := intconfig.LoadEnv()
	utils.InitLogger(env.LogLevel, env.LogFormat)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		utils.Log.WithError(err).Fatal("no se pudo conectar a MySQL")
	}
	defer intconfig.CloseDB()

	if env.DBMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := intdb.Apply(ctx, db)
		cancel()
		if err != nil {
			utils.Log.WithError(err).Fatal("fallo la migracion del esquema")
		}
	}

	clock := clockwork.NewRealClock()

	var scheduler *services.AlertasScheduler
	if env.AlertasCron != "" {
		scheduler = &services.AlertasScheduler{
			Service: services.AlertasService{Repo: repositories.MantenimientoRepository{DB: db}, Clock: clock},
		}
		if err := scheduler.Start(env.AlertasCron); err != nil {
			utils.Log.WithError(err).Fatal("no se pudo iniciar el barrido de alertas")
		}
		go scheduler.Sweep(context.Background())
	}

	handlers.Configure(env, clock, scheduler)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Infof("servidor escuchando en %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.WithError(err).Fatal("no se pudo iniciar el servidor")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info("apagando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.WithError(err).Error("shutdown forzado")
	}
	if scheduler != nil {
		scheduler.Stop()
	}

	utils.Log.Info("servidor detenido")
}
