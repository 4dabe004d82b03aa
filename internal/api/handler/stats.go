package handler

import (
	"net/http"

	"github.com/Yj004/retail-dashboard-api/internal/usecases/querying"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/reporting"
)

// GetStats retorna o payload completo de estatísticas. Aceita os mesmos
// filtros do endpoint de dados: com filtros ativos, as agregações são
// calculadas sobre o subconjunto filtrado; sem filtros, sobre o dataset
// inteiro. Esse é o formato canônico único de estatísticas.
func GetStats(store DatasetStore, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Snapshot(r.Context())
		criteria := querying.ParseCriteria(r.URL.Query())

		records := querying.Apply(ds.Records, criteria)
		writeJSON(w, reporter.ComputeStats(records))
	}
}

// GetFilterOptions retorna, por dimensão categórica, os valores distintos
// disponíveis precedidos do sentinelo "All".
func GetFilterOptions(store DatasetStore, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Snapshot(r.Context())
		writeJSON(w, reporter.FilterOptions(ds))
	}
}
