package scheduler

import (
	"context"
	"testing"

	"github.com/Yj004/retail-dashboard-api/internal/config"
	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	ds *domain.Dataset
}

func (p *staticProvider) Snapshot(_ context.Context) *domain.Dataset {
	return p.ds
}

func snapshotConfig(enabled bool) *config.Config {
	return &config.Config{
		StatsSnapshot: config.StatsSnapshot{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunSnapshot(t *testing.T) {
	provider := &staticProvider{ds: domain.EmptyDataset()}
	service := NewStatsSnapshotService(provider, reporting.NewService(), snapshotConfig(false))

	err := service.RunSnapshot(context.Background())
	require.NoError(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotEmpty(t, status.LastRunID)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.False(t, status.LastCompletedAt.Before(*status.LastStartedAt))
}

func TestStartDisabledDoesNotSchedule(t *testing.T) {
	provider := &staticProvider{ds: domain.EmptyDataset()}
	service := NewStatsSnapshotService(provider, reporting.NewService(), snapshotConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.Nil(t, status.LastStartedAt)
}
