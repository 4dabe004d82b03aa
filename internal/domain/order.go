package domain

// Nomes canônicos das colunas semânticas do dataset. As demais colunas são
// descobertas em tempo de carga a partir do cabeçalho do CSV.
const (
	FieldDate             = "Date"
	FieldTotal            = "Total"
	FieldQuantity         = "Quantity"
	FieldStatus           = "Status"
	FieldDeliverStatus    = "Deliver Status"
	FieldShippingCountry  = "Shipping Country"
	FieldShippingProvince = "Shipping Province"
	FieldState            = "State"
	FieldPaymentMethod    = "Payment Method"
	FieldSKU              = "SKU"
	FieldRiskLevel        = "Risk Level"
)

// OrderRecord é uma linha imutável do dataset: mapa de coluna para valor
// tipado. Chaves ausentes nunca existem após a normalização; célula vazia é
// string vazia.
type OrderRecord map[string]Value

// Field retorna o valor textual de uma coluna (vazio quando inexistente).
func (r OrderRecord) Field(name string) string {
	return r[name].String()
}

// DateKey retorna a data normalizada YYYY-MM-DD.
func (r OrderRecord) DateKey() string {
	return r[FieldDate].String()
}

// MonthKey retorna o bucket mensal YYYY-MM derivado da data normalizada.
func (r OrderRecord) MonthKey() string {
	date := r.DateKey()
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

func (r OrderRecord) Total() float64 {
	return r[FieldTotal].Float()
}

func (r OrderRecord) Quantity() int {
	return r[FieldQuantity].Int()
}

// Dataset é a coleção ordenada de registros com a lista de colunas
// descoberta do cabeçalho. A ordem das colunas é rastreada separadamente
// porque mapas não preservam ordem de inserção.
type Dataset struct {
	Columns []string
	Records []OrderRecord
}

// Empty retorna um dataset vazio válido, usado no modo degradado quando a
// origem de dados falha.
func EmptyDataset() *Dataset {
	return &Dataset{
		Columns: []string{},
		Records: []OrderRecord{},
	}
}

// HasColumn verifica se a coluna já existe no esquema.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}
