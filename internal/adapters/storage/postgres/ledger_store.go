package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/irma-m/cartilla/internal/domain/records"
)

// LedgerStore persiste cada cartilla como una fila jsonb, una por categoría.
// Igual que el almacén de archivos, cada escritura reemplaza la cartilla
// completa (upsert de la fila).
type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (s *LedgerStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ledgers (
			category TEXT PRIMARY KEY,
			records  JSONB NOT NULL
		)
	`)
	return err
}

// Load falla suave: fila ausente o jsonb que no parsea al modelo devuelven
// la cartilla vacía sin error.
func (s *LedgerStore) Load(ctx context.Context, c records.Category) ([]records.Record, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT records FROM ledgers WHERE category = $1
	`, string(c)).Scan(&raw)
	if err == sql.ErrNoRows {
		return []records.Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ledger []records.Record
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return []records.Record{}, nil
	}
	if ledger == nil {
		return []records.Record{}, nil
	}
	return ledger, nil
}

func (s *LedgerStore) Save(ctx context.Context, c records.Category, ledger []records.Record) error {
	if ledger == nil {
		ledger = []records.Record{}
	}
	b, err := json.Marshal(ledger)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledgers (category, records)
		VALUES ($1, $2)
		ON CONFLICT (category) DO UPDATE SET records = EXCLUDED.records
	`, string(c), b)
	return err
}

func (s *LedgerStore) Clear(ctx context.Context, c records.Category) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM ledgers WHERE category = $1
	`, string(c))
	return err
}
