package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

// RetentionSyncConfig representa a configuração do agendador de expurgo
type RetentionSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// RetentionSyncService agenda e executa o expurgo de registros de venda mais
// antigos que a janela de retenção. O relatório sempre agrega o conjunto
// completo de registros, então a janela de retenção é o único limite de
// crescimento da tabela.
type RetentionSyncService struct {
	scheduler           *gocron.Scheduler
	config              RetentionSyncConfig
	recordRepo          repository.SaleRecordRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncDeleted     int64
}

// NewRetentionSyncService cria uma nova instância do serviço de expurgo
func NewRetentionSyncService(
	recordRepo repository.SaleRecordRepository,
	appConfig *config.Config,
) *RetentionSyncService {
	retentionConfig := RetentionSyncConfig{
		CronSchedule:  appConfig.RetentionSync.CronSchedule,
		RetentionDays: appConfig.RetentionSync.RetentionDays,
		SyncEnabled:   appConfig.RetentionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"sync_enabled":   retentionConfig.SyncEnabled,
	}).Info("Configuração do agendador de expurgo de registros carregada")

	return &RetentionSyncService{
		scheduler:  scheduler,
		config:     retentionConfig,
		recordRepo: recordRepo,
	}
}

// Start inicia o agendador
func (s *RetentionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Expurgo de registros de venda desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de expurgo de registros de venda")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar expurgo de registros de venda: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de expurgo de registros de venda")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa o expurgo imediatamente, fora do agendamento
func (s *RetentionSyncService) TriggerManualSync() {
	go s.runRetention(context.Background())
}

// Status retorna o estado atual do expurgo para o endpoint de monitoramento
func (s *RetentionSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.SyncEnabled,
		"cron_schedule":     s.config.CronSchedule,
		"retention_days":    s.config.RetentionDays,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
		"last_deleted":      s.lastSyncDeleted,
	}
}

// runRetention executa uma rodada de expurgo. Rodadas concorrentes são
// ignoradas: só uma execução por vez.
func (s *RetentionSyncService) runRetention(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Expurgo de registros já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	logrus.WithField("retention_days", s.config.RetentionDays).
		Info("Iniciando expurgo de registros de venda antigos")

	deleted, err := s.recordRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expurgar registros de venda antigos")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":       duration.String(),
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("Expurgo de registros de venda concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncDeleted = deleted
	s.syncMutex.Unlock()
}
