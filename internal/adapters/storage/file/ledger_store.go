package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/irma-m/cartilla/internal/domain/records"
)

// LedgerStore persiste cada cartilla como un archivo JSON bajo dataDir,
// un archivo por categoría (análogo al key-value local del dispositivo).
// Cada escritura reemplaza la cartilla completa: se escribe a un archivo
// temporal y se renombra, así un corte a mitad de escritura deja la cartilla
// anterior o la nueva, nunca una mezcla.
type LedgerStore struct {
	mu  sync.Mutex
	dir string
}

func NewLedgerStore(dir string) (*LedgerStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &LedgerStore{dir: dir}, nil
}

// Load falla suave: clave ausente o contenido que no parsea devuelven la
// cartilla vacía sin error.
func (s *LedgerStore) Load(ctx context.Context, c records.Category) ([]records.Record, error) {
	b, err := os.ReadFile(s.path(c))
	if errors.Is(err, fs.ErrNotExist) {
		return []records.Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ledger []records.Record
	if err := json.Unmarshal(b, &ledger); err != nil {
		// Contenido corrupto: equivale a "nada persistido".
		return []records.Record{}, nil
	}
	if ledger == nil {
		return []records.Record{}, nil
	}
	return ledger, nil
}

func (s *LedgerStore) Save(ctx context.Context, c records.Category, ledger []records.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ledger == nil {
		ledger = []records.Record{}
	}
	b, err := json.Marshal(ledger)
	if err != nil {
		return err
	}

	tmp := s.path(c) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(c))
}

func (s *LedgerStore) Clear(ctx context.Context, c records.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(c))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LedgerStore) path(c records.Category) string {
	return filepath.Join(s.dir, string(c)+".json")
}
