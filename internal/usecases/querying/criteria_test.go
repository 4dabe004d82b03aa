package querying

import (
	"net/url"
	"testing"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(fields map[string]string, total float64) domain.OrderRecord {
	r := domain.OrderRecord{
		domain.FieldTotal: domain.FloatValue(total),
	}
	for key, value := range fields {
		r[key] = domain.StringValue(value)
	}
	return r
}

func sampleRecords() []domain.OrderRecord {
	return []domain.OrderRecord{
		record(map[string]string{"Status": "Paid", "Date": "2023-01-05", "State": "CA"}, 100),
		record(map[string]string{"Status": "Cancelled", "Date": "2023-01-20", "State": "NY"}, 200),
		record(map[string]string{"Status": "Paid", "Date": "2023-02-01", "State": "CA"}, 300),
		record(map[string]string{"Status": "Cancelled", "Date": "2023-02-10", "State": "TX"}, 400),
		record(map[string]string{"Status": "Pending", "Date": "2023-03-01", "State": "NY"}, 500),
	}
}

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, c Criteria)
	}{
		{
			name:  "Sentinelo All não restringe",
			query: "status=All&country=All",
			check: func(t *testing.T, c Criteria) {
				assert.True(t, c.IsEmpty())
			},
		},
		{
			name:  "Chaves desconhecidas são ignoradas",
			query: "status=Paid&unknown_key=z",
			check: func(t *testing.T, c Criteria) {
				assert.Equal(t, "Paid", c.Status)
			},
		},
		{
			name:  "Números malformados são tratados como ausentes",
			query: "min_total=abc&max_total=",
			check: func(t *testing.T, c Criteria) {
				assert.Nil(t, c.MinTotal)
				assert.Nil(t, c.MaxTotal)
				assert.True(t, c.IsEmpty())
			},
		},
		{
			name:  "Faixas numéricas são parseadas",
			query: "min_total=10.5&max_total=200",
			check: func(t *testing.T, c Criteria) {
				require.NotNil(t, c.MinTotal)
				require.NotNil(t, c.MaxTotal)
				assert.Equal(t, 10.5, *c.MinTotal)
				assert.Equal(t, 200.0, *c.MaxTotal)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			tt.check(t, ParseCriteria(values))
		})
	}
}

func TestApply(t *testing.T) {
	records := sampleRecords()

	t.Run("Sem filtros retorna a coleção inteira", func(t *testing.T) {
		result := Apply(records, Criteria{})
		assert.Len(t, result, len(records))
	})

	t.Run("Igualdade por status", func(t *testing.T) {
		result := Apply(records, Criteria{Status: "Cancelled"})
		assert.Len(t, result, 2)
		for _, r := range result {
			assert.Equal(t, "Cancelled", r.Field(domain.FieldStatus))
		}
	})

	t.Run("Faixa de datas é inclusiva", func(t *testing.T) {
		result := Apply(records, Criteria{FromDate: "2023-01-20", ToDate: "2023-02-10"})
		require.Len(t, result, 3)
		assert.Equal(t, "2023-01-20", result[0].DateKey())
		assert.Equal(t, "2023-02-10", result[2].DateKey())
	})

	t.Run("Faixa de total é inclusiva", func(t *testing.T) {
		min := 200.0
		max := 400.0
		result := Apply(records, Criteria{MinTotal: &min, MaxTotal: &max})
		assert.Len(t, result, 3)
	})

	t.Run("Filtros compõem com AND", func(t *testing.T) {
		min := 300.0
		result := Apply(records, Criteria{Status: "Paid", MinTotal: &min})
		require.Len(t, result, 1)
		assert.Equal(t, "2023-02-01", result[0].DateKey())
	})

	t.Run("Resultado é subconjunto preservando a ordem original", func(t *testing.T) {
		result := Apply(records, Criteria{State: "NY"})
		require.Len(t, result, 2)
		assert.True(t, result[0].DateKey() < result[1].DateKey())
	})

	t.Run("Entrada não é alterada", func(t *testing.T) {
		before := len(records)
		_ = Apply(records, Criteria{Status: "Paid"})
		assert.Len(t, records, before)
	})

	t.Run("Data malformada compara como string literal", func(t *testing.T) {
		malformed := []domain.OrderRecord{
			{domain.FieldDate: domain.StringValue("99/99/banana")},
		}

		// "9" ordena depois de qualquer dígito inicial de data ISO,
		// então o valor cru passa filtros só com from_date...
		assert.Len(t, Apply(malformed, Criteria{FromDate: "2023-01-01"}), 1)
		// ...e falha qualquer limite superior em formato ISO.
		assert.Empty(t, Apply(malformed, Criteria{ToDate: "2099-12-31"}))
	})

	t.Run("Nenhum registro satisfaz retorna slice vazio, não nil", func(t *testing.T) {
		result := Apply(records, Criteria{Status: "Refunded"})
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}
