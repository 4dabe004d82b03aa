package querying

import (
	"net/url"
	"strconv"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
)

// SentinelAll é o valor de filtro que significa "sem restrição", por
// convenção do cliente.
const SentinelAll = "All"

// Criteria é o conjunto de filtros reconhecidos de uma requisição. Campo
// vazio nunca restringe; valores numéricos ausentes ficam nil.
type Criteria struct {
	Status         string
	DeliveryStatus string
	Country        string
	Province       string
	State          string
	PaymentMethod  string

	FromDate string
	ToDate   string

	MinTotal *float64
	MaxTotal *float64
}

// ParseCriteria extrai os filtros reconhecidos da query string. Chaves
// desconhecidas são ignoradas; números malformados são tratados como
// ausentes em vez de erro.
func ParseCriteria(values url.Values) Criteria {
	return Criteria{
		Status:         equalityParam(values, "status"),
		DeliveryStatus: equalityParam(values, "delivery_status"),
		Country:        equalityParam(values, "country"),
		Province:       equalityParam(values, "province"),
		State:          equalityParam(values, "state"),
		PaymentMethod:  equalityParam(values, "payment_method"),
		FromDate:       values.Get("from_date"),
		ToDate:         values.Get("to_date"),
		MinTotal:       floatParam(values, "min_total"),
		MaxTotal:       floatParam(values, "max_total"),
	}
}

func equalityParam(values url.Values, key string) string {
	v := values.Get(key)
	if v == SentinelAll {
		return ""
	}
	return v
}

func floatParam(values url.Values, key string) *float64 {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// IsEmpty indica que nenhum filtro está ativo.
func (c Criteria) IsEmpty() bool {
	return c.Status == "" && c.DeliveryStatus == "" && c.Country == "" &&
		c.Province == "" && c.State == "" && c.PaymentMethod == "" &&
		c.FromDate == "" && c.ToDate == "" && c.MinTotal == nil && c.MaxTotal == nil
}

// Matches verifica se um registro satisfaz todos os filtros ativos. As
// comparações de data são lexicográficas, válidas porque o formato
// normalizado é YYYY-MM-DD.
func (c Criteria) Matches(record domain.OrderRecord) bool {
	if c.Status != "" && record.Field(domain.FieldStatus) != c.Status {
		return false
	}
	if c.DeliveryStatus != "" && record.Field(domain.FieldDeliverStatus) != c.DeliveryStatus {
		return false
	}
	if c.Country != "" && record.Field(domain.FieldShippingCountry) != c.Country {
		return false
	}
	if c.Province != "" && record.Field(domain.FieldShippingProvince) != c.Province {
		return false
	}
	if c.State != "" && record.Field(domain.FieldState) != c.State {
		return false
	}
	if c.PaymentMethod != "" && record.Field(domain.FieldPaymentMethod) != c.PaymentMethod {
		return false
	}

	if c.FromDate != "" && record.DateKey() < c.FromDate {
		return false
	}
	if c.ToDate != "" && record.DateKey() > c.ToDate {
		return false
	}

	if c.MinTotal != nil && record.Total() < *c.MinTotal {
		return false
	}
	if c.MaxTotal != nil && record.Total() > *c.MaxTotal {
		return false
	}

	return true
}

// Apply retorna os registros que satisfazem todos os filtros ativos,
// preservando a ordem original. Função pura: nunca altera a entrada.
func Apply(records []domain.OrderRecord, criteria Criteria) []domain.OrderRecord {
	if criteria.IsEmpty() {
		return records
	}

	filtered := make([]domain.OrderRecord, 0, len(records))
	for _, record := range records {
		if criteria.Matches(record) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
