package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
	"github.com/vfg2006/clinic-financial-model/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeModelExport = "model-export"
	CronJobTypeAll         = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ModelExportService CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.ModelExportService != nil {
		jobs[CronJobTypeModelExport] = s.ModelExportService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()
		started := make([]string, 0, len(jobs))

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				if job.TriggerManualSync() {
					started = append(started, name)
				}
			}
		case CronJobTypeModelExport:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de exportação do modelo não disponível", nil)
				return
			}
			if !job.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Cron job já está em execução", nil)
				return
			}
			started = append(started, cronType)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: model-export, all", nil)
			return
		}

		fields := logrus.Fields{"type": cronType}
		if claims != nil {
			fields["subject"] = claims.Subject
		}
		logrus.WithFields(fields).Info("Cron job disparada manualmente")

		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status de uma cron job, ou de todas com o tipo "all"
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.byType()

		if cronType != CronJobTypeAll {
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cron job inexistente", nil)
				return
			}
			jobs = map[string]CronJob{cronType: job}
		}

		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
