package handler

import (
	"net/http"

	"github.com/vfg2006/bid-optimizer-api/internal/api/handler/router"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
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

func Optimizer(service optimizing.Optimizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/optimize",
			Method:  http.MethodPost,
			Handler: Optimize(service),
		},
		{
			Path:    "/v1/rules",
			Method:  http.MethodGet,
			Handler: GetRules(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
