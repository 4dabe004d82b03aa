package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yj004/retail-dashboard-api/internal/api/handler"
	"github.com/Yj004/retail-dashboard-api/internal/api/handler/router"
	"github.com/Yj004/retail-dashboard-api/internal/config"
	"github.com/Yj004/retail-dashboard-api/internal/scheduler"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
	"github.com/Yj004/retail-dashboard-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia completa de middlewares.
func NewHandler(
	store handler.DatasetStore,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	snapshotService *scheduler.StatsSnapshotService,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Data(store)...),
		router.WithRoutes(handler.Stats(store, reporter)...),
		router.WithRoutes(handler.CronJobs(snapshotService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	cfg *config.Config,
	store handler.DatasetStore,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	snapshotService *scheduler.StatsSnapshotService,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(store, reporter, authenticator, snapshotService),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
