package main

import (
	"context"
	"time"

	"github.com/Yj004/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/Yj004/retail-dashboard-api/infrastructure/dataset"
	"github.com/Yj004/retail-dashboard-api/infrastructure/repository"
	"github.com/Yj004/retail-dashboard-api/internal/api"
	"github.com/Yj004/retail-dashboard-api/internal/config"
	"github.com/Yj004/retail-dashboard-api/internal/scheduler"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := datasetSource(ctx, cfg)
	store := dataset.NewStore(source)

	// Carga antecipada: falhas degradam para dataset vazio sem impedir o boot
	store.EnsureLoaded(ctx)

	authenticator := authenticating.NewService(cfg)
	reporter := reporting.NewService()

	snapshotService := scheduler.NewStatsSnapshotService(store, reporter, cfg)
	if err := snapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de estatísticas")
	}

	server, err := api.New(cfg, store, reporter, authenticator, snapshotService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// datasetSource monta a origem de dados conforme a configuração: arquivo
// CSV local, URL remota ou tabela Postgres.
func datasetSource(ctx context.Context, cfg *config.Config) dataset.Source {
	switch cfg.Dataset.SourceType {
	case "url":
		return dataset.NewCSVURLSource(cfg.Dataset.URL)

	case "postgres":
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
		}

		if err := conn.Ping(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
		}

		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewOrderSource(conn, cfg.Dataset.Table)

	default:
		return dataset.NewCSVFileSource(cfg.Dataset.FilePath)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
