package reporting

import (
	"sort"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/internal/usecases/querying"
	"github.com/Yj004/retail-dashboard-api/pkg/utils"
)

// Reporter computa as agregações do dashboard sobre uma coleção imutável de
// registros. Todas as operações são puras e podem rodar concorrentemente
// entre requisições.
type Reporter interface {
	ComputeStats(records []domain.OrderRecord) *domain.StatsPayload
	FilterOptions(ds *domain.Dataset) map[string][]string
}

// filterableColumns são as dimensões categóricas oferecidas como filtro,
// na ordem apresentada ao cliente.
var filterableColumns = []string{
	domain.FieldStatus,
	domain.FieldDeliverStatus,
	domain.FieldShippingCountry,
	domain.FieldShippingProvince,
	domain.FieldPaymentMethod,
	domain.FieldRiskLevel,
	domain.FieldState,
}

const topSKULimit = 10

type Service struct{}

func NewService() Reporter {
	return &Service{}
}

// ComputeStats produz o payload completo de estatísticas: KPIs, quebras
// categóricas, séries mensais e ranking de SKUs. Dataset vazio produz um
// payload zerado, nunca um erro.
func (s *Service) ComputeStats(records []domain.OrderRecord) *domain.StatsPayload {
	payload := &domain.StatsPayload{
		TotalRecords:         len(records),
		StateCounts:          map[string]int{},
		StateValues:          map[string]float64{},
		AvgQuantityByState:   map[string]float64{},
		StatusCounts:         map[string]int{},
		DeliveryStatusCounts: map[string]int{},
		CountryCounts:        map[string]int{},
		PaymentMethodCounts:  map[string]int{},
		MonthlySales:         []domain.MonthlySales{},
		MonthlyOrders:        []domain.MonthlyOrders{},
		MonthlyAvgValues:     []domain.MonthlyAvgValue{},
		TopSKUs:              []domain.SKUCount{},
	}

	monthlyTotals := map[string]float64{}
	monthlyCounts := map[string]int{}
	stateQuantity := map[string]int{}
	skuCounts := map[string]int{}
	skuOrder := []string{}

	for _, record := range records {
		total := record.Total()
		payload.TotalSales += total
		payload.TotalQuantity += record.Quantity()

		if month := record.MonthKey(); month != "" {
			monthlyTotals[month] += total
			monthlyCounts[month]++
		}

		countInto(payload.StatusCounts, record.Field(domain.FieldStatus))
		countInto(payload.DeliveryStatusCounts, record.Field(domain.FieldDeliverStatus))
		countInto(payload.CountryCounts, record.Field(domain.FieldShippingCountry))
		countInto(payload.PaymentMethodCounts, record.Field(domain.FieldPaymentMethod))

		if state := record.Field(domain.FieldState); state != "" {
			payload.StateCounts[state]++
			payload.StateValues[state] += total
			stateQuantity[state] += record.Quantity()
		}

		if sku := record.Field(domain.FieldSKU); sku != "" {
			if _, seen := skuCounts[sku]; !seen {
				skuOrder = append(skuOrder, sku)
			}
			skuCounts[sku]++
		}
	}

	// Divisão por zero protegida: dataset vazio retorna ticket médio 0
	if payload.TotalRecords > 0 {
		payload.AvgOrderValue = payload.TotalSales / float64(payload.TotalRecords)
	}

	for state, count := range payload.StateCounts {
		payload.AvgQuantityByState[state] = float64(stateQuantity[state]) / float64(count)
	}

	payload.MonthlySales, payload.MonthlyOrders, payload.MonthlyAvgValues =
		buildMonthlySeries(monthlyTotals, monthlyCounts)
	payload.TopSKUs = rankSKUs(skuCounts, skuOrder)

	return payload
}

func countInto(counts map[string]int, value string) {
	if value == "" {
		return
	}
	counts[value]++
}

// buildMonthlySeries deriva as três séries mensais do mesmo bucketing, em
// ordem ascendente de mês (lexicográfica = cronológica no formato YYYY-MM).
func buildMonthlySeries(
	totals map[string]float64,
	counts map[string]int,
) ([]domain.MonthlySales, []domain.MonthlyOrders, []domain.MonthlyAvgValue) {
	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	sales := make([]domain.MonthlySales, 0, len(months))
	orders := make([]domain.MonthlyOrders, 0, len(months))
	avgValues := make([]domain.MonthlyAvgValue, 0, len(months))

	for _, month := range months {
		count := counts[month]
		sales = append(sales, domain.MonthlySales{Month: month, Total: totals[month]})
		orders = append(orders, domain.MonthlyOrders{Month: month, Count: count})
		avgValues = append(avgValues, domain.MonthlyAvgValue{
			Month:      month,
			AvgValue:   utils.RoundWithTwoDecimalPlace(totals[month] / float64(count)),
			OrderCount: count,
		})
	}

	return sales, orders, avgValues
}

// rankSKUs ordena os SKUs por frequência decrescente, com empates mantendo
// a ordem de primeira ocorrência, e corta no limite do ranking.
func rankSKUs(counts map[string]int, order []string) []domain.SKUCount {
	ranking := make([]domain.SKUCount, 0, len(order))
	for _, sku := range order {
		ranking = append(ranking, domain.SKUCount{SKU: sku, Count: counts[sku]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if len(ranking) > topSKULimit {
		ranking = ranking[:topSKULimit]
	}
	return ranking
}

// FilterOptions devolve, por dimensão categórica presente no esquema, os
// valores distintos não vazios em ordem de primeira ocorrência, precedidos
// do sentinelo "All".
func (s *Service) FilterOptions(ds *domain.Dataset) map[string][]string {
	options := make(map[string][]string)

	for _, column := range filterableColumns {
		if !ds.HasColumn(column) {
			continue
		}

		seen := map[string]bool{}
		values := []string{querying.SentinelAll}
		for _, record := range ds.Records {
			value := record.Field(column)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}

		options[column] = values
	}

	return options
}
