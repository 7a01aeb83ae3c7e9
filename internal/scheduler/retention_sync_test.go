package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, enabled bool) (*RetentionSyncService, *mocks.MockSaleRecordRepository) {
	ctrl := gomock.NewController(t)
	recordRepo := mocks.NewMockSaleRecordRepository(ctrl)

	cfg := &config.Config{}
	cfg.RetentionSync.CronSchedule = "0 3 * * *"
	cfg.RetentionSync.RetentionDays = 730
	cfg.RetentionSync.Enabled = enabled

	return NewRetentionSyncService(recordRepo, cfg), recordRepo
}

func TestStartDisabledDoesNotSchedule(t *testing.T) {
	service, recordRepo := newTestSyncService(t, false)

	// Nenhuma chamada ao repositório esperada
	_ = recordRepo

	err := service.Start(context.Background())
	require.NoError(t, err)

	status := service.Status()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
}

func TestRunRetention(t *testing.T) {
	service, recordRepo := newTestSyncService(t, true)

	recordRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 730).
		Return(int64(42), nil)

	service.runRetention(context.Background())

	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, int64(42), status["last_deleted"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestRunRetentionStoreFailure(t *testing.T) {
	service, recordRepo := newTestSyncService(t, true)

	recordRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 730).
		Return(int64(0), errors.New("connection refused"))

	service.runRetention(context.Background())

	// Falha não atualiza o timestamp de conclusão nem o contador
	status := service.Status()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, int64(0), status["last_deleted"])
	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.lastSyncStartedAt.IsZero())
}

func TestRunRetentionIgnoresConcurrentRuns(t *testing.T) {
	service, recordRepo := newTestSyncService(t, true)

	release := make(chan struct{})
	recordRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 730).
		DoAndReturn(func(context.Context, int) (int64, error) {
			<-release
			return int64(1), nil
		}).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.runRetention(context.Background())
	}()

	// Esperar a primeira rodada marcar-se como em execução
	for {
		if service.Status()["running"] == true {
			break
		}
	}

	// A segunda rodada deve retornar sem tocar o repositório
	service.runRetention(context.Background())

	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), service.Status()["last_deleted"])
}
