// Package scheduler contém o job agendado de snapshot de estatísticas.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Yj004/retail-dashboard-api/internal/config"
	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
	"github.com/Yj004/retail-dashboard-api/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// DatasetProvider é a visão do store necessária ao job de snapshot.
type DatasetProvider interface {
	Snapshot(ctx context.Context) *domain.Dataset
}

// SnapshotStatus descreve o estado corrente do job para o endpoint de cron.
type SnapshotStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cron_schedule"`
	Running         bool       `json:"running"`
	LastRunID       string     `json:"last_run_id,omitempty"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// StatsSnapshotService registra periodicamente os KPIs do dataset completo
// nos logs, para acompanhamento operacional. Nunca altera nem recarrega o
// dataset.
type StatsSnapshotService struct {
	scheduler *gocron.Scheduler
	store     DatasetProvider
	reporter  reporting.Reporter
	config    config.StatsSnapshot

	mu              sync.Mutex
	running         bool
	lastRunID       string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func NewStatsSnapshotService(
	store DatasetProvider,
	reporter reporting.Reporter,
	cfg *config.Config,
) *StatsSnapshotService {
	return &StatsSnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		store:     store,
		reporter:  reporter,
		config:    cfg.StatsSnapshot,
	}
}

func (s *StatsSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot de estatísticas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao gerar snapshot de estatísticas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshot computa as estatísticas do dataset completo e registra os
// KPIs. Execuções concorrentes são rejeitadas silenciosamente.
func (s *StatsSnapshotService) RunSnapshot(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Warn("Snapshot de estatísticas já está em execução")
		return nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	s.running = true
	s.lastRunID = runID
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.mu.Unlock()
	}()

	ds := s.store.Snapshot(ctx)
	stats := s.reporter.ComputeStats(ds.Records)

	logrus.WithFields(logrus.Fields{
		"run_id":          runID,
		"total_records":   stats.TotalRecords,
		"total_sales":     stats.TotalSales,
		"total_quantity":  stats.TotalQuantity,
		"avg_order_value": stats.AvgOrderValue,
		"months":          len(stats.MonthlySales),
	}).Info("Snapshot de estatísticas gerado")

	return nil
}

func (s *StatsSnapshotService) Status() SnapshotStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := SnapshotStatus{
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		Running:      s.running,
		LastRunID:    s.lastRunID,
	}

	if !s.lastStartedAt.IsZero() {
		startedAt := s.lastStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastCompletedAt.IsZero() {
		completedAt := s.lastCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
