package handler

import (
	"net/http"

	"github.com/vfg2006/clinic-financial-model/internal/api/handler/router"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Model retorna as rotas públicas de cálculo e exportação
func Model(service modeling.Modeler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model/defaults",
			Method:  http.MethodGet,
			Handler: GetModelDefaults(service),
		},
		{
			Path:    "/v1/model/run",
			Method:  http.MethodPost,
			Handler: RunModel(service),
		},
		{
			Path:    "/v1/model/export/:table",
			Method:  http.MethodPost,
			Handler: ExportModelTable(service),
		},
		{
			Path:    "/v1/model/report",
			Method:  http.MethodPost,
			Handler: GetModelReport(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(service), middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices, authService authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authService), middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(authService), middleware.AdminOnly()},
		},
	}
}
