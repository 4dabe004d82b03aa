package dataset

import (
	"context"
	"sync"

	"github.com/Yj004/retail-dashboard-api/internal/domain"
	"github.com/Yj004/retail-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

var ErrColumnAlreadyExists = errors.New("coluna já existe no dataset")

// Store mantém o dataset em memória pelo tempo de vida do processo. A carga
// acontece uma única vez, na primeira leitura; falhas degradam para um
// dataset vazio e nunca chegam como erro aos consumidores de leitura.
type Store struct {
	source Source

	loadOnce sync.Once
	mu       sync.RWMutex
	dataset  *domain.Dataset
}

func NewStore(source Source) *Store {
	return &Store{
		source:  source,
		dataset: domain.EmptyDataset(),
	}
}

// EnsureLoaded garante que a primeira carga aconteceu. Idempotente: chamadas
// subsequentes retornam imediatamente sem nova busca.
func (s *Store) EnsureLoaded(ctx context.Context) {
	s.loadOnce.Do(func() {
		ds, err := s.source.Load(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("Erro ao carregar dataset; operando em modo degradado com dataset vazio")
			return
		}

		s.mu.Lock()
		s.dataset = ds
		s.mu.Unlock()

		log.ForContext(ctx).WithFields(log.Fields{
			"records": len(ds.Records),
			"columns": len(ds.Columns),
		}).Info("Dataset carregado")
	})
}

// Snapshot retorna a visão corrente do dataset. O slice de registros é
// imutável: o AddColumn substitui os registros em vez de alterá-los.
func (s *Store) Snapshot(ctx context.Context) *domain.Dataset {
	s.EnsureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// AddColumn acrescenta uma coluna ao esquema preenchendo o valor padrão em
// todos os registros existentes. Leitores que já obtiveram um snapshot
// continuam vendo o esquema antigo.
func (s *Store) AddColumn(ctx context.Context, name, defaultValue string) error {
	s.EnsureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dataset.HasColumn(name) {
		return ErrColumnAlreadyExists
	}

	columns := make([]string, 0, len(s.dataset.Columns)+1)
	columns = append(columns, s.dataset.Columns...)
	columns = append(columns, name)

	records := make([]domain.OrderRecord, len(s.dataset.Records))
	for i, record := range s.dataset.Records {
		updated := make(domain.OrderRecord, len(record)+1)
		for key, value := range record {
			updated[key] = value
		}
		updated[name] = domain.StringValue(defaultValue)
		records[i] = updated
	}

	s.dataset = &domain.Dataset{Columns: columns, Records: records}
	return nil
}
