// Package scheduler contém os serviços de agendamento de rotinas mensais
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/mapia/backoffice-api/internal/config"
	"github.com/mapia/backoffice-api/internal/domain"
	"github.com/mapia/backoffice-api/internal/usecases/analyzing"
	"github.com/mapia/backoffice-api/pkg/middleware"
	"github.com/mapia/backoffice-api/pkg/utils"
)

// AnalysisSyncConfig representa a configuração do agendador da análise contratual
type AnalysisSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	SystemUserID int
}

// AnalysisSyncService agenda a geração automática da análise contratual do mês
// anterior. Roda no início de cada mês, quando os faturamentos e alocações do
// mês fechado já foram lançados.
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de sincronização da análise contratual
func NewAnalysisSyncService(analyzer analyzing.Analyzer, appConfig *config.Config) *AnalysisSyncService {
	syncConfig := AnalysisSyncConfig{
		CronSchedule: appConfig.AnalysisSync.CronSchedule, // Default: 6h do primeiro dia do mês
		SyncEnabled:  appConfig.AnalysisSync.Enabled,      // Default: desabilitado
		SystemUserID: appConfig.AnalysisSync.SystemUserID,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"system_user_id": syncConfig.SystemUserID,
	}).Info("Configuração do agendador da análise contratual carregada")

	return &AnalysisSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		analyzer:  analyzer,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Geração automática da análise contratual desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da análise contratual")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.runPreviousMonthAnalysis(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração automática da análise contratual")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração da análise contratual: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da análise contratual")
		s.scheduler.Stop()
	}()

	return nil
}

// runPreviousMonthAnalysis gera a análise do mês fechado mais recente,
// assinando como o usuário de sistema configurado.
func (s *AnalysisSyncService) runPreviousMonthAnalysis(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Geração da análise contratual ainda em andamento, execução ignorada")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	targetMonth := utils.PreviousMonth(utils.FirstDayOfMonth(time.Now().UTC()))

	logrus.WithField("mes_ano_referencia", utils.FormatReferenceMonth(targetMonth)).
		Info("Gerando análise contratual automática do mês anterior")

	actor := &domain.Claims{
		UserID:     s.config.SystemUserID,
		UserName:   "sistema",
		UserRoleID: middleware.RoleDev,
	}

	result, err := s.analyzer.GenerateMonthlyAnalysis(ctx, targetMonth, actor)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"mes_ano_referencia": utils.FormatReferenceMonth(targetMonth),
		"analises":           len(result.Analyses),
		"warnings":           len(result.Warnings),
	}).Info("Análise contratual automática concluída")

	return nil
}
