package dataset

import (
	"strings"
	"testing"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecord(t *testing.T) {
	columns := []string{"Date", "Total", "Quantity", "Status", "SKU"}

	tests := []struct {
		name  string
		cells []string
		check func(t *testing.T, record domain.OrderRecord)
	}{
		{
			name:  "Data DD/MM/YYYY é reformatada para YYYY-MM-DD",
			cells: []string{"05/01/2023", "100.50", "2", "Paid", "SKU-1"},
			check: func(t *testing.T, record domain.OrderRecord) {
				assert.Equal(t, "2023-01-05", record.DateKey())
				assert.Equal(t, 100.50, record.Total())
				assert.Equal(t, 2, record.Quantity())
				assert.Equal(t, "Paid", record.Field("Status"))
			},
		},
		{
			name:  "Data sem barra passa inalterada",
			cells: []string{"2023-02-01", "0", "0", "", ""},
			check: func(t *testing.T, record domain.OrderRecord) {
				assert.Equal(t, "2023-02-01", record.DateKey())
			},
		},
		{
			name:  "Data malformada com barra passa inalterada",
			cells: []string{"99/99/banana", "10", "1", "Paid", "SKU-2"},
			check: func(t *testing.T, record domain.OrderRecord) {
				assert.Equal(t, "99/99/banana", record.DateKey())
			},
		},
		{
			name:  "Total e Quantity malformados caem no padrão 0",
			cells: []string{"2023-03-01", "abc", "x", "Paid", "SKU-3"},
			check: func(t *testing.T, record domain.OrderRecord) {
				assert.Equal(t, 0.0, record.Total())
				assert.Equal(t, 0, record.Quantity())
			},
		},
		{
			name:  "Células faltantes viram strings vazias, nunca chaves ausentes",
			cells: []string{"2023-04-01"},
			check: func(t *testing.T, record domain.OrderRecord) {
				for _, column := range columns {
					_, ok := record[column]
					assert.True(t, ok, "coluna %s deveria existir", column)
				}
				assert.Equal(t, "", record.Field("SKU"))
				assert.Equal(t, 0.0, record.Total())
			},
		},
		{
			name:  "Valores textuais são aparados",
			cells: []string{"2023-05-01", " 25.00 ", " 3 ", "  Pending  ", " SKU-4 "},
			check: func(t *testing.T, record domain.OrderRecord) {
				assert.Equal(t, "Pending", record.Field("Status"))
				assert.Equal(t, "SKU-4", record.Field("SKU"))
				assert.Equal(t, 25.0, record.Total())
				assert.Equal(t, 3, record.Quantity())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NormalizeRecord(columns, tt.cells)
			tt.check(t, record)
		})
	}
}

func TestParseCSV(t *testing.T) {
	t.Run("Linhas em branco não produzem registro", func(t *testing.T) {
		csv := strings.Join([]string{
			"Date,Total,Quantity,Status",
			"05/01/2023,100,1,Paid",
			"",
			",,,",
			"20/01/2023,200,2,Pending",
		}, "\n")

		ds, err := ParseCSV(strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, []string{"Date", "Total", "Quantity", "Status"}, ds.Columns)
		require.Len(t, ds.Records, 2)
		assert.Equal(t, "2023-01-05", ds.Records[0].DateKey())
		assert.Equal(t, "2023-01-20", ds.Records[1].DateKey())
	})

	t.Run("Entrada vazia vira dataset vazio sem erro", func(t *testing.T) {
		ds, err := ParseCSV(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, ds.Columns)
		assert.Empty(t, ds.Records)
	})

	t.Run("Cabeçalho com espaços é aparado", func(t *testing.T) {
		ds, err := ParseCSV(strings.NewReader("Date, Total ,Quantity\n2023-01-01,5,1\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Date", "Total", "Quantity"}, ds.Columns)
	})
}
