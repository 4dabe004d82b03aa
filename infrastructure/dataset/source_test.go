package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "Date,Total,Quantity,Status\n2023-01-05,100.50,2,Paid\n"

func TestCSVURLSourceLoad(t *testing.T) {
	t.Run("Falha persistente esgota as três tentativas e retorna erro terminal", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		source := NewCSVURLSource(server.URL)
		ds, err := source.Load(context.Background())

		require.Error(t, err)
		assert.Nil(t, ds)
		assert.EqualValues(t, maxFetchAttempts, atomic.LoadInt32(&attempts))
		assert.Contains(t, err.Error(), "esgotou as tentativas")
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Sucesso após uma falha retorna o dataset sem esgotar as tentativas", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(sampleCSV))
		}))
		defer server.Close()

		source := NewCSVURLSource(server.URL)
		ds, err := source.Load(context.Background())

		require.NoError(t, err)
		assert.EqualValues(t, 2, atomic.LoadInt32(&attempts))
		assert.Equal(t, []string{"Date", "Total", "Quantity", "Status"}, ds.Columns)
		require.Len(t, ds.Records, 1)
		assert.Equal(t, 100.50, ds.Records[0].Total())
	})

	t.Run("Contexto cancelado interrompe a espera entre tentativas", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		source := NewCSVURLSource(server.URL)
		started := time.Now()
		_, err := source.Load(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
		assert.Less(t, time.Since(started), time.Second)
	})
}
