package handler

import (
	"context"
	"net/http"

	"github.com/Yj004/retail-dashboard-api/internal/scheduler"
	"github.com/Yj004/retail-dashboard-api/pkg/log"
)

// RunSnapshot dispara manualmente o job de snapshot de estatísticas.
func RunSnapshot(snapshot *scheduler.StatsSnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := snapshot.RunSnapshot(context.Background()); err != nil {
				log.L.WithError(err).Error("Erro na execução manual do snapshot de estatísticas")
			}
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Snapshot de estatísticas iniciado",
		})
	}
}

// GetCronStatus retorna o estado corrente do job de snapshot.
func GetCronStatus(snapshot *scheduler.StatsSnapshotService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, snapshot.Status())
	}
}
