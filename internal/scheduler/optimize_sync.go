// Package scheduler contém o serviço de agendamento das execuções de
// otimização em lote
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bid-optimizer-api/infrastructure/bulksheet"
	"github.com/vfg2006/bid-optimizer-api/infrastructure/guide"
	"github.com/vfg2006/bid-optimizer-api/internal/config"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
	"github.com/vfg2006/bid-optimizer-api/pkg/utils"
)

type OptimizeSyncConfig struct {
	CronSchedule string
	Enabled      bool
	InputFile    string
	OutputFile   string
	GuideFile    string
}

// OptimizeSyncStatus é o retrato do serviço exposto pela API de cron.
type OptimizeSyncStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron_schedule"`
	Running         bool      `json:"running"`
	LastRunID       string    `json:"last_run_id,omitempty"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
}

// OptimizeSyncService roda o pipeline em lote (ler bulksheet, otimizar,
// gravar saída e guia) num cron configurável, com disparo manual pela API.
type OptimizeSyncService struct {
	scheduler *gocron.Scheduler
	optimizer optimizing.Optimizer
	config    OptimizeSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           error
}

func NewOptimizeSyncService(
	optimizer optimizing.Optimizer,
	cfg *config.Config,
) *OptimizeSyncService {
	syncConfig := OptimizeSyncConfig{
		CronSchedule: cfg.OptimizeSync.CronSchedule,
		Enabled:      cfg.OptimizeSync.Enabled,
		InputFile:    cfg.Optimizer.InputFile,
		OutputFile:   cfg.Optimizer.OutputFile,
		GuideFile:    cfg.Optimizer.GuideFile,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"input_file":    syncConfig.InputFile,
	}).Info("Configuração do agendador de otimização carregada")

	return &OptimizeSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		optimizer: optimizer,
		config:    syncConfig,
	}
}

func (s *OptimizeSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de otimização de lances desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de otimização de lances")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunOptimization(); err != nil {
			logrus.WithError(err).Error("Erro na execução agendada de otimização")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar otimização de lances: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de otimização de lances")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do horário agendado.
func (s *OptimizeSyncService) TriggerManualSync() {
	go func() {
		if err := s.RunOptimization(); err != nil {
			logrus.WithError(err).Error("Erro na execução manual de otimização")
		}
	}()
}

// RunOptimization executa o pipeline completo uma vez. Execuções são
// serializadas; uma chamada enquanto outra roda é ignorada.
func (s *OptimizeSyncService) RunOptimization() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Otimização de lances já está em execução")
		return nil
	}

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	s.syncRunning = true
	s.lastRunID = runID
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"input":  s.config.InputFile,
	})
	logger.Info("Iniciando otimização de lances")

	err = s.runPipeline()

	s.syncMutex.Lock()
	s.lastError = err
	s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Otimização de lances falhou")
		return err
	}

	logger.WithFields(logrus.Fields{
		"output": s.config.OutputFile,
		"guide":  s.config.GuideFile,
	}).Info("Otimização de lances finalizada")

	return nil
}

// runPipeline lê o bulksheet configurado, otimiza e grava CSV + guia. Nada
// é gravado quando a otimização falha.
func (s *OptimizeSyncService) runPipeline() error {
	sheet, err := bulksheet.ReadFile(s.config.InputFile)
	if err != nil {
		return err
	}

	result, err := s.optimizer.OptimizeBulksheet(sheet)
	if err != nil {
		return err
	}

	if err := bulksheet.WriteFile(s.config.OutputFile, result); err != nil {
		return err
	}

	if s.config.GuideFile != "" {
		if err := guide.WriteFile(s.config.GuideFile, s.config.OutputFile, result); err != nil {
			return err
		}
	}

	return nil
}

// Status retorna o estado atual do agendador para a API de cron.
func (s *OptimizeSyncService) Status() OptimizeSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := OptimizeSyncStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.syncRunning,
		LastRunID:       s.lastRunID,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
	}

	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
