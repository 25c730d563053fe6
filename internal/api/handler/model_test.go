package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/clinic-financial-model/internal/api/handler/router"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling/mocks"
	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
)

func newModelRouter(service modeling.Modeler) router.Router {
	return router.New(router.WithRoutes(Model(service)...))
}

func doRequest(rt http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	rt.ServeHTTP(rr, req)
	return rr
}

func TestGetModelDefaults(t *testing.T) {
	rr := doRequest(newModelRouter(modeling.NewService()), http.MethodGet, "/v1/model/defaults", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var response DefaultsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, domain.DefaultInputs(), response.Inputs)
	assert.Equal(t, domain.Scenarios, response.Scenarios)
	assert.Len(t, response.Months, 12)
}

func TestRunModel(t *testing.T) {
	rt := newModelRouter(modeling.NewService())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
		validate       func(t *testing.T, body map[string]any)
	}{
		{
			name:           "sem corpo usa premissas iniciais",
			body:           "",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "base", body["scenario"])
				assert.Len(t, body["projection"], 12)
				assert.Len(t, body["cash_flow"], 12)
				assert.NotEmpty(t, body["run_id"])
			},
		},
		{
			name:           "premissas parciais completam com os valores iniciais",
			body:           `{"inputs": {"avg_patient_visits": 500}, "scenario": "upside"}`,
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "upside", body["scenario"])
				requested := body["requested_inputs"].(map[string]any)
				assert.Equal(t, float64(500), requested["avg_patient_visits"])
				assert.Equal(t, float64(1000000), requested["equity_injection"])
				inputs := body["inputs"].(map[string]any)
				assert.Equal(t, float64(550), inputs["avg_patient_visits"])
				assert.InDelta(t, 1650.0, inputs["avg_revenue_per_visit"], 1e-9)
				first := body["projection"].([]any)[0].(map[string]any)
				assert.InDelta(t, 550*1650.0, first["patient_revenue"], 1e-6)
			},
		},
		{
			name:           "capital próprio zero devolve indicadores como texto",
			body:           `{"inputs": {"equity_injection": 0}}`,
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				ratios := body["ratios"].(map[string]any)
				assert.Equal(t, 1.5, ratios["current_ratio"])
				assert.Equal(t, "inf", ratios["roe"])
				assert.Equal(t, "inf", ratios["dscr"])
			},
		},
		{
			name:           "premissa negativa",
			body:           `{"inputs": {"fixed_overheads": -10}}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "campo desconhecido",
			body:           `{"inputs": {"inventory_days": 10}}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "json inválido",
			body:           `{"inputs":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "cenário inválido",
			body:           `{"scenario": "otimista"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(rt, http.MethodPost, "/v1/model/run", tt.body)

			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
			}
			if tt.validate != nil {
				tt.validate(t, body)
			}
		})
	}
}

func TestRunModel_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockModeler(ctrl)

	service.EXPECT().Defaults().Return(domain.DefaultInputs()).Times(2)
	service.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, modeling.NewModelError(modeling.ErrGenerateID, apiErrors.ErrInternalServer, "sem entropia"))
	service.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("inesperado"))

	rt := newModelRouter(service)

	rr := doRequest(rt, http.MethodPost, "/v1/model/run", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "sem entropia")

	rr = doRequest(rt, http.MethodPost, "/v1/model/run", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), apiErrors.ErrInternalServer)
}

func TestExportModelTable(t *testing.T) {
	rt := newModelRouter(modeling.NewService())

	tests := []struct {
		name                string
		target              string
		expectedStatus      int
		expectedContentType string
		expectedBodyPrefix  string
		expectedFileSuffix  string
	}{
		{
			name:                "projeção em csv",
			target:              "/v1/model/export/projection",
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/csv",
			expectedBodyPrefix:  "Month,Patient Revenue,Product Revenue",
			expectedFileSuffix:  `_projection.csv"`,
		},
		{
			name:                "indicadores em csv",
			target:              "/v1/model/export/ratios?format=csv",
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/csv",
			expectedBodyPrefix:  "Current Ratio,Operating Margin,ROE,DSCR\n1.5000,",
			expectedFileSuffix:  `_ratios.csv"`,
		},
		{
			name:                "fluxo de caixa em xlsx",
			target:              "/v1/model/export/cashflow?format=xlsx",
			expectedStatus:      http.StatusOK,
			expectedContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			expectedBodyPrefix:  "PK",
			expectedFileSuffix:  `_cashflow.xlsx"`,
		},
		{
			name:           "tabela inexistente",
			target:         "/v1/model/export/balance",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:                "indicadores com precisão completa",
			target:              "/v1/model/export/ratios?precision=full",
			expectedStatus:      http.StatusOK,
			expectedContentType: "text/csv",
			expectedBodyPrefix:  "Current Ratio,Operating Margin,ROE,DSCR\n1.5,",
			expectedFileSuffix:  `_ratios.csv"`,
		},
		{
			name:           "formato inválido",
			target:         "/v1/model/export/projection?format=pdf",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "precisão inválida",
			target:         "/v1/model/export/projection?precision=exata",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doRequest(rt, http.MethodPost, tt.target, "")

			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedStatus != http.StatusOK {
				return
			}

			assert.Equal(t, tt.expectedContentType, rr.Header().Get("Content-Type"))
			assert.True(t, strings.HasPrefix(rr.Body.String(), tt.expectedBodyPrefix))
			assert.True(t, strings.HasSuffix(rr.Header().Get("Content-Disposition"), tt.expectedFileSuffix))
		})
	}
}

func TestGetModelReport(t *testing.T) {
	rr := doRequest(newModelRouter(modeling.NewService()), http.MethodPost, "/v1/model/report", `{"scenario": "downside"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<strong>downside</strong>")
	assert.Contains(t, rr.Body.String(), "<h2>Statement of Cash Flows</h2>")
}

func TestDecodeModelRequest_NilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/model/run", nil)
	req.Body = nil

	inputs, scenario, err := decodeModelRequest(req, domain.DefaultInputs())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultInputs(), inputs)
	assert.Equal(t, domain.ScenarioBase, scenario)
}
