package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/clinic-financial-model/infrastructure/exporter"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ModelRequest é o corpo das rotas de cálculo. Premissas omitidas usam os valores iniciais do formulário.
type ModelRequest struct {
	Inputs   *domain.Inputs `json:"inputs"`
	Scenario string         `json:"scenario"`
}

type DefaultsResponse struct {
	Inputs    domain.Inputs     `json:"inputs"`
	Scenarios []domain.Scenario `json:"scenarios"`
	Months    []string          `json:"months"`
}

// GetModelDefaults retorna as premissas iniciais e os cenários aceitos
func GetModelDefaults(service modeling.Modeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := DefaultsResponse{
			Inputs:    service.Defaults(),
			Scenarios: domain.Scenarios,
			Months:    domain.Months[:],
		}

		writeJSON(w, r, response)
	}
}

// RunModel calcula as três tabelas e as séries dos gráficos
func RunModel(service modeling.Modeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, ok := runModel(w, r, service)
		if !ok {
			return
		}

		writeJSON(w, r, result)
	}
}

// ExportModelTable calcula o modelo e devolve uma das tabelas como arquivo csv ou xlsx
func ExportModelTable(service modeling.Modeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tableName := httprouter.ParamsFromContext(r.Context()).ByName("table")

		format, err := exporter.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		precision, err := exporter.ParsePrecision(r.URL.Query().Get("precision"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, ok := runModel(w, r, service)
		if !ok {
			return
		}

		table, found := result.TableByName(tableName)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, fmt.Sprintf("Tabela %q inexistente", tableName),
				[]string{domain.TableProjection, domain.TableCashFlow, domain.TableRatios})
			return
		}

		var buf bytes.Buffer
		if err := exporter.New(format, exporter.WithPrecision(precision)).Write(&buf, table); err != nil {
			logger.WithError(err).Error("model-export: erro ao gerar arquivo")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar arquivo", nil)
			return
		}

		fileName := exporter.FileName(result.RunID, table.Name, format)
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("model-export: erro ao enviar arquivo")
			return
		}

		logger.WithFields(log.Fields{
			"run_id":        result.RunID,
			"export_table":  table.Name,
			"export_format": format,
		}).Info("model-export: arquivo enviado")
	}
}

// GetModelReport calcula o modelo e devolve o relatório em HTML
func GetModelReport(service modeling.Modeler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, ok := runModel(w, r, service)
		if !ok {
			return
		}

		page, err := exporter.RenderReport(result)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("model-report: erro ao gerar relatório")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("model-report: erro ao enviar relatório")
		}
	}
}

// runModel decodifica a requisição, valida as premissas e executa o modelo.
// Em caso de erro a resposta já foi escrita e ok é false.
func runModel(w http.ResponseWriter, r *http.Request, service modeling.Modeler) (*domain.ModelResult, bool) {
	logger := log.ForContext(r.Context())

	inputs, scenario, err := decodeModelRequest(r, service.Defaults())
	if err != nil {
		logger.WithError(err).Warn("model-run: requisição inválida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", err.Error())
		return nil, false
	}

	if err := inputs.Validate(); err != nil {
		modelErr := modeling.NewModelError(modeling.ErrInvalidInputs, apiErrors.ErrInvalidFormat, err.Error())
		writeModelError(w, modelErr)
		return nil, false
	}

	result, err := service.Run(r.Context(), inputs, scenario)
	if err != nil {
		logger.WithError(err).Error("model-run: erro ao calcular modelo")
		writeModelError(w, err)
		return nil, false
	}

	return result, true
}

func decodeModelRequest(r *http.Request, defaults domain.Inputs) (domain.Inputs, domain.Scenario, error) {
	if r.Body == nil {
		return defaults, domain.ScenarioBase, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.Inputs{}, "", err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return defaults, domain.ScenarioBase, nil
	}

	req := ModelRequest{Inputs: &defaults}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return domain.Inputs{}, "", err
	}

	if req.Inputs == nil {
		req.Inputs = &defaults
	}

	return *req.Inputs, domain.Scenario(req.Scenario), nil
}

func writeModelError(w http.ResponseWriter, err error) {
	var modelErr *modeling.ModelError
	if errors.As(err, &modelErr) {
		apiErrors.WriteError(w, modelErr.Code, modelErr.Err.Error(), modelErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular modelo", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
