package reporting

import (
	"testing"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(date string, total float64, quantity int, extra map[string]string) domain.OrderRecord {
	r := domain.OrderRecord{
		domain.FieldDate:     domain.StringValue(date),
		domain.FieldTotal:    domain.FloatValue(total),
		domain.FieldQuantity: domain.IntValue(quantity),
	}
	for key, value := range extra {
		r[key] = domain.StringValue(value)
	}
	return r
}

func TestComputeStatsKPIs(t *testing.T) {
	service := NewService()

	records := []domain.OrderRecord{
		order("2023-01-05", 100, 1, nil),
		order("2023-01-20", 200, 2, nil),
		order("2023-02-01", 300, 3, nil),
	}

	stats := service.ComputeStats(records)

	assert.Equal(t, 3, stats.TotalRecords)
	assert.Equal(t, 600.0, stats.TotalSales)
	assert.Equal(t, 6, stats.TotalQuantity)
	assert.Equal(t, 200.0, stats.AvgOrderValue)

	require.Len(t, stats.MonthlySales, 2)
	assert.Equal(t, domain.MonthlySales{Month: "2023-01", Total: 300}, stats.MonthlySales[0])
	assert.Equal(t, domain.MonthlySales{Month: "2023-02", Total: 300}, stats.MonthlySales[1])

	require.Len(t, stats.MonthlyOrders, 2)
	assert.Equal(t, domain.MonthlyOrders{Month: "2023-01", Count: 2}, stats.MonthlyOrders[0])
	assert.Equal(t, domain.MonthlyOrders{Month: "2023-02", Count: 1}, stats.MonthlyOrders[1])

	require.Len(t, stats.MonthlyAvgValues, 2)
	assert.Equal(t, domain.MonthlyAvgValue{Month: "2023-01", AvgValue: 150, OrderCount: 2}, stats.MonthlyAvgValues[0])
	assert.Equal(t, domain.MonthlyAvgValue{Month: "2023-02", AvgValue: 300, OrderCount: 1}, stats.MonthlyAvgValues[1])
}

func TestComputeStatsEmptyDataset(t *testing.T) {
	service := NewService()

	stats := service.ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalRecords)
	assert.Equal(t, 0.0, stats.TotalSales)
	assert.Equal(t, 0, stats.TotalQuantity)
	// Proteção contra divisão por zero
	assert.Equal(t, 0.0, stats.AvgOrderValue)
	assert.Empty(t, stats.StatusCounts)
	assert.Empty(t, stats.MonthlySales)
	assert.Empty(t, stats.TopSKUs)
}

func TestComputeStatsMonthlySeriesSorted(t *testing.T) {
	service := NewService()

	records := []domain.OrderRecord{
		order("2023-03-01", 10, 1, nil),
		order("2022-12-31", 20, 1, nil),
		order("2023-01-15", 30, 1, nil),
	}

	stats := service.ComputeStats(records)

	require.Len(t, stats.MonthlySales, 3)
	assert.Equal(t, "2022-12", stats.MonthlySales[0].Month)
	assert.Equal(t, "2023-01", stats.MonthlySales[1].Month)
	assert.Equal(t, "2023-03", stats.MonthlySales[2].Month)
}

func TestComputeStatsMonthlyAvgRounded(t *testing.T) {
	service := NewService()

	records := []domain.OrderRecord{
		order("2023-01-01", 10, 1, nil),
		order("2023-01-02", 10, 1, nil),
		order("2023-01-03", 10.01, 1, nil),
	}

	stats := service.ComputeStats(records)

	require.Len(t, stats.MonthlyAvgValues, 1)
	assert.Equal(t, 10.0, stats.MonthlyAvgValues[0].AvgValue)
	assert.Equal(t, 3, stats.MonthlyAvgValues[0].OrderCount)
}

func TestComputeStatsCategoricalBreakdowns(t *testing.T) {
	service := NewService()

	records := []domain.OrderRecord{
		order("2023-01-01", 100, 2, map[string]string{"Status": "Paid", "State": "CA", "Payment Method": "card"}),
		order("2023-01-02", 50, 4, map[string]string{"Status": "Paid", "State": "CA", "Payment Method": "pix"}),
		order("2023-01-03", 25, 3, map[string]string{"Status": "Cancelled", "State": "NY", "Payment Method": ""}),
	}

	stats := service.ComputeStats(records)

	assert.Equal(t, map[string]int{"Paid": 2, "Cancelled": 1}, stats.StatusCounts)
	assert.Equal(t, map[string]int{"CA": 2, "NY": 1}, stats.StateCounts)
	assert.Equal(t, map[string]float64{"CA": 150, "NY": 25}, stats.StateValues)
	assert.Equal(t, map[string]float64{"CA": 3, "NY": 3}, stats.AvgQuantityByState)
	// Valores vazios não entram nas quebras
	assert.Equal(t, map[string]int{"card": 1, "pix": 1}, stats.PaymentMethodCounts)
}

func TestComputeStatsTopSKUs(t *testing.T) {
	service := NewService()

	t.Run("Ranking ordenado decrescente com desempate estável", func(t *testing.T) {
		records := []domain.OrderRecord{
			order("2023-01-01", 1, 1, map[string]string{"SKU": "B"}),
			order("2023-01-02", 1, 1, map[string]string{"SKU": "A"}),
			order("2023-01-03", 1, 1, map[string]string{"SKU": "B"}),
			order("2023-01-04", 1, 1, map[string]string{"SKU": "C"}),
			order("2023-01-05", 1, 1, map[string]string{"SKU": "A"}),
		}

		stats := service.ComputeStats(records)

		require.Len(t, stats.TopSKUs, 3)
		// B e A empatam em 2; B apareceu primeiro
		assert.Equal(t, domain.SKUCount{SKU: "B", Count: 2}, stats.TopSKUs[0])
		assert.Equal(t, domain.SKUCount{SKU: "A", Count: 2}, stats.TopSKUs[1])
		assert.Equal(t, domain.SKUCount{SKU: "C", Count: 1}, stats.TopSKUs[2])
	})

	t.Run("Ranking nunca excede 10 posições", func(t *testing.T) {
		records := make([]domain.OrderRecord, 0, 15)
		for i := 0; i < 15; i++ {
			records = append(records, order("2023-01-01", 1, 1, map[string]string{
				"SKU": string(rune('A' + i)),
			}))
		}

		stats := service.ComputeStats(records)
		assert.Len(t, stats.TopSKUs, 10)
	})
}

func TestFilterOptions(t *testing.T) {
	service := NewService()

	ds := &domain.Dataset{
		Columns: []string{"Date", "Total", "Quantity", "Status", "State"},
		Records: []domain.OrderRecord{
			order("2023-01-01", 1, 1, map[string]string{"Status": "Paid", "State": "CA"}),
			order("2023-01-02", 1, 1, map[string]string{"Status": "Cancelled", "State": ""}),
			order("2023-01-03", 1, 1, map[string]string{"Status": "Paid", "State": "NY"}),
		},
	}

	options := service.FilterOptions(ds)

	// Apenas dimensões presentes no esquema aparecem
	assert.NotContains(t, options, "Payment Method")

	// "All" precede os valores distintos em ordem de primeira ocorrência
	assert.Equal(t, []string{"All", "Paid", "Cancelled"}, options["Status"])
	assert.Equal(t, []string{"All", "CA", "NY"}, options["State"])
}

func TestFilterOptionsEmptyDataset(t *testing.T) {
	service := NewService()

	options := service.FilterOptions(domain.EmptyDataset())
	assert.Empty(t, options)
}
