package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/clinic-financial-model/internal/api/handler/router"
	"github.com/vfg2006/clinic-financial-model/internal/domain"
	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
)

type fakeCronJob struct {
	running  bool
	triggers int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggers++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running, "triggers": f.triggers}
}

type fakeAuthenticator struct{}

func (fakeAuthenticator) IssueToken(subject, role string) (string, error) {
	return role, nil
}

// ValidateToken aceita como token o próprio nome do papel
func (fakeAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{Role: tokenString}
	claims.Subject = "ana"
	return claims, nil
}

func newCronRouter(job CronJob) router.Router {
	return router.New(router.WithRoutes(CronJobs(CronJobServices{ModelExportService: job}, fakeAuthenticator{})...))
}

func doAuthorized(rt http.Handler, method, target, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil).WithContext(context.Background())
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+role)
	}
	rr := httptest.NewRecorder()
	rt.ServeHTTP(rr, req)
	return rr
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		role           string
		running        bool
		expectedStatus int
		expectedCode   string
		expectedRuns   int
	}{
		{name: "administrador dispara exportação", target: "/v1/cron/model-export/run", role: domain.RoleAdmin, expectedStatus: http.StatusOK, expectedRuns: 1},
		{name: "administrador dispara todas", target: "/v1/cron/all/run", role: domain.RoleAdmin, expectedStatus: http.StatusOK, expectedRuns: 1},
		{name: "exportação em andamento", target: "/v1/cron/model-export/run", role: domain.RoleAdmin, running: true, expectedStatus: http.StatusConflict, expectedCode: apiErrors.ErrJobRunning},
		{name: "tipo inválido", target: "/v1/cron/meta/run", role: domain.RoleAdmin, expectedStatus: http.StatusBadRequest, expectedCode: apiErrors.ErrInvalidRequest},
		{name: "operador sem privilégio", target: "/v1/cron/model-export/run", role: domain.RoleOperator, expectedStatus: http.StatusForbidden, expectedCode: apiErrors.ErrInsufficientPrivilege},
		{name: "sem token", target: "/v1/cron/model-export/run", expectedStatus: http.StatusUnauthorized, expectedCode: apiErrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{running: tt.running}

			rr := doAuthorized(newCronRouter(job), http.MethodPost, tt.target, tt.role)

			require.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			assert.Equal(t, tt.expectedRuns, job.triggers)
			if tt.expectedCode != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt := newCronRouter(&fakeCronJob{})

	rr := doAuthorized(rt, http.MethodGet, "/v1/cron/all/status", domain.RoleAdmin)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"model-export":{"sync_running":false,"triggers":0}}`, rr.Body.String())

	rr = doAuthorized(rt, http.MethodGet, "/v1/cron/model-export/status", domain.RoleAdmin)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doAuthorized(rt, http.MethodGet, "/v1/cron/meta/status", domain.RoleAdmin)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetMe(t *testing.T) {
	rt := router.New(router.WithRoutes(Authentication(fakeAuthenticator{})...))

	rr := doAuthorized(rt, http.MethodGet, "/v1/me", domain.RoleOperator)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"subject":"ana","role":"operator"}`, rr.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rr := doAuthorized(rt, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}
