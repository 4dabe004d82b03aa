package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
)

// NormalizeRecord converte uma linha crua do CSV em um OrderRecord tipado.
// Cada coluna do cabeçalho vira uma chave do registro; células faltantes
// viram strings vazias, nunca chaves ausentes.
func NormalizeRecord(columns []string, cells []string) domain.OrderRecord {
	record := make(domain.OrderRecord, len(columns))

	for i, column := range columns {
		raw := ""
		if i < len(cells) {
			raw = strings.TrimSpace(cells[i])
		}

		switch column {
		case domain.FieldDate:
			record[column] = domain.StringValue(normalizeDate(raw))
		case domain.FieldTotal:
			record[column] = domain.FloatValue(parseFloat(raw))
		case domain.FieldQuantity:
			record[column] = domain.IntValue(parseInt(raw))
		default:
			record[column] = domain.StringValue(raw)
		}
	}

	return record
}

// normalizeDate reformata datas DD/MM/YYYY para YYYY-MM-DD. Valores sem "/"
// são assumidos já normalizados; valores malformados passam inalterados.
func normalizeDate(raw string) string {
	if !strings.Contains(raw, "/") {
		return raw
	}

	parsed, err := time.Parse("02/01/2006", raw)
	if err != nil {
		return raw
	}

	return parsed.Format(time.DateOnly)
}

func parseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// isBlankRow detecta linhas do CSV sem nenhum conteúdo, que não produzem
// registro algum.
func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
