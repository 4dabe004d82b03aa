package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Yj004/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/Yj004/retail-dashboard-api/infrastructure/dataset"
	"github.com/Yj004/retail-dashboard-api/internal/domain"
)

// OrderSource carrega o dataset de pedidos de uma tabela Postgres. As
// colunas são descobertas do result set e cada célula passa pelo mesmo
// normalizador do caminho CSV, de modo que o restante da aplicação não
// distingue a origem.
type OrderSource struct {
	conn  *postgres.Connection
	table string
}

func NewOrderSource(conn *postgres.Connection, table string) *OrderSource {
	return &OrderSource{
		conn:  conn,
		table: table,
	}
}

func (r *OrderSource) Load(ctx context.Context) (*domain.Dataset, error) {
	query, args, err := squirrel.
		Select("*").
		From(r.table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar tabela de pedidos: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao descobrir colunas: %w", err)
	}

	records := make([]domain.OrderRecord, 0)
	for rows.Next() {
		cells, err := scanTextRow(rows, len(columns))
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de pedido: %w", err)
		}
		records = append(records, dataset.NormalizeRecord(columns, cells))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar pedidos: %w", err)
	}

	return &domain.Dataset{Columns: columns, Records: records}, nil
}

// scanTextRow lê todas as células da linha como texto; NULL vira vazio.
func scanTextRow(rows *sql.Rows, n int) ([]string, error) {
	raw := make([]sql.NullString, n)
	dest := make([]any, n)
	for i := range raw {
		dest[i] = &raw[i]
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	cells := make([]string, n)
	for i, cell := range raw {
		if cell.Valid {
			cells[i] = cell.String
		}
	}
	return cells, nil
}
