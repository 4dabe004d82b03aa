package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Yj004/retail-dashboard-api/infrastructure/dataset"
	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/querying"
	"github.com/Yj004/retail-dashboard-api/pkg/apiErrors"
	"github.com/Yj004/retail-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// GetData retorna uma fatia paginada do dataset completo.
func GetData(store DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Snapshot(r.Context())
		skip, limit := pagination(r.URL.Query())

		writeJSON(w, paginate(ds.Records, skip, limit))
	}
}

// FilterData retorna uma fatia paginada do dataset após aplicar os filtros
// reconhecidos da query string.
func FilterData(store DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Snapshot(r.Context())
		criteria := querying.ParseCriteria(r.URL.Query())
		skip, limit := pagination(r.URL.Query())

		filtered := querying.Apply(ds.Records, criteria)
		writeJSON(w, paginate(filtered, skip, limit))
	}
}

// GetColumns retorna a lista ordenada de colunas do esquema descoberto.
func GetColumns(store DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Snapshot(r.Context())

		columns := ds.Columns
		if columns == nil {
			columns = []string{}
		}
		writeJSON(w, columns)
	}
}

type AddColumnRequest struct {
	ColumnName   string `json:"column_name"`
	DefaultValue string `json:"default_value"`
}

// AddColumn acrescenta uma coluna ao dataset em memória, preenchendo o
// valor padrão em todos os registros existentes.
func AddColumn(store DatasetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddColumnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body")
			return
		}

		if req.ColumnName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "column_name is required")
			return
		}

		if err := store.AddColumn(r.Context(), req.ColumnName, req.DefaultValue); err != nil {
			if errors.Is(err, dataset.ErrColumnAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrColumnAlreadyExists, "Column '"+req.ColumnName+"' already exists")
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao adicionar coluna ao dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error adding column")
			return
		}

		writeJSON(w, map[string]string{
			"message": "Column '" + req.ColumnName + "' added successfully",
		})
	}
}

// pagination extrai skip/limit da query string; valores ausentes ou
// malformados caem nos padrões.
func pagination(values url.Values) (int, int) {
	skip := defaultSkip
	if raw := values.Get("skip"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			skip = n
		}
	}

	limit := defaultLimit
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			limit = n
		}
	}

	return skip, limit
}

func paginate(records []domain.OrderRecord, skip, limit int) []domain.OrderRecord {
	if skip >= len(records) {
		return []domain.OrderRecord{}
	}

	end := skip + limit
	if end > len(records) {
		end = len(records)
	}

	return records[skip:end]
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
