package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/pkg/log"
)

// Source é uma origem de dados de pedidos. Implementações carregam o
// dataset completo de uma vez; o Store decide quando chamar.
type Source interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// CSVFileSource carrega o dataset de um arquivo CSV local.
type CSVFileSource struct {
	Path string
}

func NewCSVFileSource(path string) *CSVFileSource {
	return &CSVFileSource{Path: path}
}

func (s *CSVFileSource) Load(_ context.Context) (*domain.Dataset, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo CSV %s: %w", s.Path, err)
	}
	defer file.Close()

	return ParseCSV(file)
}

// CSVURLSource carrega o dataset de uma URL remota com retry e backoff
// limitado (1s, 2s entre tentativas) em até 3 tentativas.
type CSVURLSource struct {
	URL    string
	client *http.Client
}

const maxFetchAttempts = 3

func NewCSVURLSource(url string) *CSVURLSource {
	return &CSVURLSource{
		URL:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *CSVURLSource) Load(ctx context.Context) (*domain.Dataset, error) {
	var lastErr error

	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		ds, err := s.fetch(ctx)
		if err == nil {
			return ds, nil
		}
		lastErr = err

		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"attempt": attempt,
			"url":     s.URL,
		}).Warn("Falha ao buscar dataset remoto")

		if attempt < maxFetchAttempts {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("origem remota esgotou as tentativas: %w", lastErr)
}

func (s *CSVURLSource) fetch(ctx context.Context) (*domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("origem remota respondeu %s", resp.Status)
	}

	return ParseCSV(resp.Body)
}

// ParseCSV lê um CSV completo: a primeira linha define o esquema, as demais
// viram registros normalizados. Linhas em branco não produzem registro.
func ParseCSV(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.EmptyDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	records := make([]domain.OrderRecord, 0)
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV: %w", err)
		}

		if isBlankRow(cells) {
			continue
		}

		records = append(records, NormalizeRecord(columns, cells))
	}

	return &domain.Dataset{Columns: columns, Records: records}, nil
}
