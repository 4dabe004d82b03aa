package handler

import (
	"net/http"

	"github.com/Yj004/retail-dashboard-api/internal/api/handler/router"
	"github.com/Yj004/retail-dashboard-api/internal/scheduler"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/authenticating"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/token",
			Method:  http.MethodPost,
			Handler: Token(service),
		},
	}
}

func Data(store DatasetStore) []router.Route {
	return []router.Route{
		{
			Path:    "/data",
			Method:  http.MethodGet,
			Handler: GetData(store),
		},
		{
			Path:    "/data/filter",
			Method:  http.MethodGet,
			Handler: FilterData(store),
		},
		{
			Path:    "/data/add-column",
			Method:  http.MethodPost,
			Handler: AddColumn(store),
		},
		{
			Path:    "/columns",
			Method:  http.MethodGet,
			Handler: GetColumns(store),
		},
	}
}

func Stats(store DatasetStore, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/stats",
			Method:  http.MethodGet,
			Handler: GetStats(store, reporter),
		},
		{
			Path:    "/filter-options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(store, reporter),
		},
	}
}

func CronJobs(snapshot *scheduler.StatsSnapshotService) []router.Route {
	return []router.Route{
		{
			Path:    "/cron/snapshot/run",
			Method:  http.MethodPost,
			Handler: RunSnapshot(snapshot),
		},
		{
			Path:    "/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(snapshot),
		},
	}
}
