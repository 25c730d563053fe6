// Package scheduler contém os serviços de agendamento das exportações do modelo
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-financial-model/infrastructure/inputfile"
	"github.com/vfg2006/clinic-financial-model/infrastructure/repository"
	"github.com/vfg2006/clinic-financial-model/internal/config"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

// TableExporter grava as tabelas de um resultado em arquivos
type TableExporter interface {
	WriteAll(prefix string, result *domain.ModelResult) ([]string, error)
}

type ModelExportConfig struct {
	CronSchedule string
	Enabled      bool
	InputsFile   string
	OutputPrefix string
	Scenario     string
}

// ModelExportService recalcula o modelo a partir de um arquivo de premissas e grava as tabelas periodicamente
type ModelExportService struct {
	scheduler  *gocron.Scheduler
	modeler    modeling.Modeler
	exporter   TableExporter
	sink       repository.ModelExportRepository // opcional
	loadInputs func(path string) (domain.Inputs, error)
	config     ModelExportConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastFiles           []string
	lastError           string
}

func NewModelExportService(
	modeler modeling.Modeler,
	exporter TableExporter,
	sink repository.ModelExportRepository,
	cfg *config.Config,
) *ModelExportService {
	exportConfig := ModelExportConfig{
		CronSchedule: cfg.ModelExport.CronSchedule, // Default: 2h da manhã todos os dias
		Enabled:      cfg.ModelExport.Enabled,      // Default: desabilitado
		InputsFile:   cfg.ModelExport.InputsFile,
		OutputPrefix: cfg.ModelExport.OutputPrefix,
		Scenario:     cfg.ModelExport.Scenario,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"inputs_file":   exportConfig.InputsFile,
		"output_prefix": exportConfig.OutputPrefix,
	}).Info("Configuração do agendador de exportação do modelo carregada")

	return &ModelExportService{
		scheduler:  gocron.NewScheduler(time.Local),
		modeler:    modeler,
		exporter:   exporter,
		sink:       sink,
		loadInputs: inputfile.Load,
		config:     exportConfig,
	}
}

func (s *ModelExportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de exportação do modelo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de exportação do modelo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunExport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na exportação agendada do modelo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação do modelo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de exportação do modelo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunExport executa uma exportação completa. Uma execução concorrente é ignorada.
func (s *ModelExportService) RunExport(ctx context.Context) error {
	if !s.begin() {
		logrus.Warn("Exportação do modelo já está em execução")
		return nil
	}

	return s.run(ctx)
}

// run executa a exportação com a vaga já reservada por begin
func (s *ModelExportService) run(ctx context.Context) error {
	runID, files, err := s.export(ctx)
	s.finish(runID, files, err)

	return err
}

func (s *ModelExportService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ModelExportService) finish(runID string, files []string, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRunID = runID
	s.lastFiles = files
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *ModelExportService) export(ctx context.Context) (string, []string, error) {
	logger := log.ForContext(ctx)

	inputs, err := s.loadInputs(s.config.InputsFile)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao carregar premissas: %w", err)
	}

	scenario, err := domain.ParseScenario(s.config.Scenario)
	if err != nil {
		return "", nil, err
	}

	result, err := s.modeler.Run(ctx, inputs, scenario)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao calcular modelo: %w", err)
	}

	files, err := s.exporter.WriteAll(s.config.OutputPrefix, result)
	if err != nil {
		return result.RunID, files, fmt.Errorf("erro ao gravar arquivos: %w", err)
	}

	if s.sink != nil {
		if err := s.sink.SaveResult(result); err != nil {
			return result.RunID, files, fmt.Errorf("erro ao gravar resultado no banco: %w", err)
		}
	}

	logger.WithFields(log.Fields{
		"run_id":       result.RunID,
		"export_files": files,
	}).Info("Exportação do modelo concluída")

	return result.RunID, files, nil
}

// TriggerManualSync inicia manualmente uma exportação; retorna false se já houver uma em andamento
func (s *ModelExportService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Exportação do modelo já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando exportação manual do modelo")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na exportação manual do modelo")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ModelExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"inputs_file":            s.config.InputsFile,
		"output_prefix":          s.config.OutputPrefix,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_files":             s.lastFiles,
		"last_error":             s.lastError,
	}
}
