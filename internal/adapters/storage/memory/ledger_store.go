package memory

import (
	"context"
	"sync"

	"github.com/irma-m/cartilla/internal/domain/records"
)

type ledgerStore struct {
	mu         sync.RWMutex
	byCategory map[records.Category][]records.Record
}

// NewLedgerStore crea un almacén de cartillas en memoria (dev y tests).
func NewLedgerStore() records.Store {
	return &ledgerStore{
		byCategory: make(map[records.Category][]records.Record),
	}
}

func (s *ledgerStore) Load(ctx context.Context, c records.Category) ([]records.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledger := s.byCategory[c]
	out := make([]records.Record, len(ledger))
	copy(out, ledger)
	return out, nil
}

func (s *ledgerStore) Save(ctx context.Context, c records.Category, ledger []records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]records.Record, len(ledger))
	copy(stored, ledger)
	s.byCategory[c] = stored
	return nil
}

func (s *ledgerStore) Clear(ctx context.Context, c records.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byCategory, c)
	return nil
}
