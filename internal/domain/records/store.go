package records

import "context"

// Store es el almacén durable de cartillas: una secuencia ordenada de
// registros por categoría, reemplazada completa en cada escritura.
//
// Load falla suave: si no hay nada persistido o el contenido no parsea,
// devuelve la cartilla vacía sin error. Un error de Load es solo de I/O.
type Store interface {
	Load(ctx context.Context, c Category) ([]Record, error)
	Save(ctx context.Context, c Category, ledger []Record) error
	Clear(ctx context.Context, c Category) error
}
