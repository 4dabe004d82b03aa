package domain

// MonthlySales é o total vendido em um bucket mensal YYYY-MM.
type MonthlySales struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlyOrders é a quantidade de pedidos em um bucket mensal.
type MonthlyOrders struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlyAvgValue é o ticket médio de um bucket mensal, acompanhado da
// quantidade de pedidos usada no cálculo.
type MonthlyAvgValue struct {
	Month      string  `json:"month"`
	AvgValue   float64 `json:"avg_value"`
	OrderCount int     `json:"order_count"`
}

// SKUCount é uma posição do ranking de SKUs mais frequentes. O ranking é
// um array para preservar a ordem decrescente de contagem na resposta.
type SKUCount struct {
	SKU   string `json:"sku"`
	Count int    `json:"count"`
}

// StatsPayload é a resposta agregada completa do dashboard: KPIs, séries
// mensais, quebras categóricas e ranking de produtos.
type StatsPayload struct {
	TotalRecords  int     `json:"total_records"`
	TotalSales    float64 `json:"total_sales"`
	TotalQuantity int     `json:"total_quantity"`
	AvgOrderValue float64 `json:"avg_order_value"`

	StateCounts        map[string]int     `json:"state_counts"`
	StateValues        map[string]float64 `json:"state_values"`
	AvgQuantityByState map[string]float64 `json:"avg_quantity_by_state"`

	StatusCounts         map[string]int `json:"status_counts"`
	DeliveryStatusCounts map[string]int `json:"delivery_status_counts"`
	CountryCounts        map[string]int `json:"country_counts"`
	PaymentMethodCounts  map[string]int `json:"payment_method_counts"`

	MonthlySales     []MonthlySales    `json:"monthly_sales"`
	MonthlyOrders    []MonthlyOrders   `json:"monthly_orders"`
	MonthlyAvgValues []MonthlyAvgValue `json:"monthly_avg_values"`

	TopSKUs []SKUCount `json:"top_skus"`
}
