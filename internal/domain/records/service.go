package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irma-m/cartilla/internal/platform/logger"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("record not found")
	ErrUnknownCategory = errors.New("unknown category")
	// ErrConfirmRequired protege el vaciado total: sin confirmación explícita
	// la cartilla queda intacta.
	ErrConfirmRequired = errors.New("confirmation required")
	ErrStorage         = errors.New("storage error")
)

// Notifier arma y retira recordatorios locales para un registro.
// Schedule devuelve scheduled=false (skipped) cuando no hay permiso de
// notificaciones; eso nunca es un error ni bloquea el guardado.
type Notifier interface {
	Schedule(ctx context.Context, title, body string, trigger time.Time) (handle string, scheduled bool, err error)
	Cancel(ctx context.Context, handle string) error
}

// EditTarget es el estado explícito Idle | Editing(id) que el colaborador de
// UI entrega junto con el submit. Nunca hay estado de edición ambiente.
type EditTarget struct {
	editing bool
	id      int64
}

// Idle es el target de un alta nueva.
func Idle() EditTarget { return EditTarget{} }

// Editing es el target de la edición del registro con ese id.
func Editing(id int64) EditTarget { return EditTarget{editing: true, id: id} }

func (t EditTarget) IsEditing() bool { return t.editing }
func (t EditTarget) ID() int64       { return t.id }

// Input son los valores de formulario de un submit. Qué campos son
// obligatorios depende del Descriptor de la categoría.
type Input struct {
	Name          string
	AppliedDate   Date
	IntervalValue int
	Location      BathLocation
	Type          string
	Weight        float64
}

// Service es el gestor de ciclo de vida de registros, uno genérico para las
// cuatro categorías. Orquesta validación, cálculo de próxima fecha,
// persistencia y recordatorios.
type Service struct {
	store    Store
	notifier Notifier
	log      logger.Logger
	now      func() time.Time
}

func NewService(store Store, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// List devuelve la cartilla completa de la categoría, en orden de inserción.
func (s *Service) List(ctx context.Context, c Category) ([]Record, error) {
	if _, ok := DescriptorFor(c); !ok {
		return nil, ErrUnknownCategory
	}
	return s.loadLedger(ctx, c), nil
}

// BeginEdit carga el registro para poblar el contexto de edición pendiente
// (propiedad del colaborador de UI). No muta el almacén.
func (s *Service) BeginEdit(ctx context.Context, c Category, id int64) (Record, EditTarget, error) {
	if _, ok := DescriptorFor(c); !ok {
		return Record{}, EditTarget{}, ErrUnknownCategory
	}
	ledger := s.loadLedger(ctx, c)
	idx := indexOf(ledger, id)
	if idx < 0 {
		return Record{}, EditTarget{}, ErrNotFound
	}
	return ledger[idx], Editing(id), nil
}

// Submit valida los campos, deriva la próxima fecha, persiste la cartilla
// completa y arma el recordatorio. Con target Editing(id) reemplaza el
// registro en su lugar (mismo id) y retira el recordatorio anterior.
//
// En fallo de validación no hay llamada al almacén ni al notificador.
func (s *Service) Submit(ctx context.Context, c Category, target EditTarget, in Input) (Record, error) {
	desc, ok := DescriptorFor(c)
	if !ok {
		return Record{}, ErrUnknownCategory
	}
	if err := validateInput(desc, in); err != nil {
		return Record{}, err
	}

	ledger := s.loadLedger(ctx, c)

	rec := buildRecord(desc, in)

	idx := -1
	prevHandle := ""
	if target.IsEditing() {
		idx = indexOf(ledger, target.ID())
		if idx < 0 {
			return Record{}, ErrNotFound
		}
		prevHandle = ledger[idx].ReminderID
		rec.ID = target.ID()
	} else {
		rec.ID = nextID(ledger, s.now())
	}

	// Retirar el recordatorio viejo antes de rearmar; un fallo aquí no
	// bloquea el guardado.
	if prevHandle != "" {
		if err := s.notifier.Cancel(ctx, prevHandle); err != nil {
			s.log.Warn("cancel previous reminder failed", map[string]any{
				"category": c, "id": rec.ID, "error": err.Error(),
			})
		}
	}

	// El handle se arma antes de persistir para que quede guardado junto al
	// registro; si el guardado falla, se retira.
	if desc.HasReminder() && rec.NextDate != nil {
		handle, scheduled, err := s.notifier.Schedule(ctx,
			desc.ReminderTitle,
			fmt.Sprintf(desc.ReminderBody, rec.Name),
			rec.NextDate.Time(),
		)
		switch {
		case err != nil:
			s.log.Warn("schedule reminder failed", map[string]any{
				"category": c, "id": rec.ID, "error": err.Error(),
			})
		case scheduled:
			rec.ReminderID = handle
		default:
			s.log.Info("reminder skipped: permission not granted", map[string]any{
				"category": c, "id": rec.ID,
			})
		}
	}

	if target.IsEditing() {
		ledger[idx] = rec
	} else {
		ledger = append(ledger, rec)
	}

	if err := s.store.Save(ctx, c, ledger); err != nil {
		s.log.Error("save ledger failed", map[string]any{
			"category": c, "id": rec.ID, "error": err.Error(),
		})
		if rec.ReminderID != "" {
			_ = s.notifier.Cancel(ctx, rec.ReminderID)
		}
		return Record{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return rec, nil
}

// Delete quita el registro y persiste. Un id ausente es un no-op, no un error.
func (s *Service) Delete(ctx context.Context, c Category, id int64) error {
	if _, ok := DescriptorFor(c); !ok {
		return ErrUnknownCategory
	}
	ledger := s.loadLedger(ctx, c)
	idx := indexOf(ledger, id)
	if idx < 0 {
		return nil
	}

	if h := ledger[idx].ReminderID; h != "" {
		if err := s.notifier.Cancel(ctx, h); err != nil {
			s.log.Warn("cancel reminder on delete failed", map[string]any{
				"category": c, "id": id, "error": err.Error(),
			})
		}
	}

	ledger = append(ledger[:idx], ledger[idx+1:]...)
	if err := s.store.Save(ctx, c, ledger); err != nil {
		s.log.Error("save ledger failed", map[string]any{
			"category": c, "id": id, "error": err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// ClearAll vacía la cartilla completa. El gate de confirmación en dos pasos
// vive en el borde de UI; aquí solo se exige el booleano ya confirmado.
func (s *Service) ClearAll(ctx context.Context, c Category, confirmed bool) error {
	if _, ok := DescriptorFor(c); !ok {
		return ErrUnknownCategory
	}
	if !confirmed {
		return ErrConfirmRequired
	}

	for _, r := range s.loadLedger(ctx, c) {
		if r.ReminderID == "" {
			continue
		}
		if err := s.notifier.Cancel(ctx, r.ReminderID); err != nil {
			s.log.Warn("cancel reminder on clear failed", map[string]any{
				"category": c, "id": r.ID, "error": err.Error(),
			})
		}
	}

	if err := s.store.Clear(ctx, c); err != nil {
		s.log.Error("clear ledger failed", map[string]any{
			"category": c, "error": err.Error(),
		})
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// loadLedger aplica la semántica fail-soft del almacén también a errores de
// I/O: se loguea y se sigue con la cartilla vacía (heredado del origen).
func (s *Service) loadLedger(ctx context.Context, c Category) []Record {
	ledger, err := s.store.Load(ctx, c)
	if err != nil {
		s.log.Warn("load ledger failed, using empty ledger", map[string]any{
			"category": c, "error": err.Error(),
		})
		return []Record{}
	}
	if ledger == nil {
		return []Record{}
	}
	return ledger
}

func buildRecord(desc Descriptor, in Input) Record {
	rec := Record{
		Name:        strings.TrimSpace(in.Name),
		AppliedDate: in.AppliedDate,
	}

	if desc.HasReminder() {
		rec.IntervalValue = in.IntervalValue
		nd := NextDue(in.AppliedDate, in.IntervalValue, desc.Unit)
		rec.NextDate = &nd
	}
	if desc.RequiresLocation {
		rec.Location = in.Location
	}
	if len(desc.Types) > 0 {
		rec.Type = in.Type
		if rec.Type == "" {
			rec.Type = desc.Types[0]
		}
	}
	if desc.RequiresWeight || in.Weight != 0 {
		rec.Weight = in.Weight
	}
	return rec
}

func validateInput(desc Descriptor, in Input) error {
	if in.AppliedDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if desc.RequiresName && strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if desc.RequiresInterval && in.IntervalValue <= 0 {
		return fmt.Errorf("%w: duration must be a positive number", ErrInvalidInput)
	}
	if desc.RequiresWeight && in.Weight <= 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if !desc.RequiresWeight && in.Weight < 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if desc.RequiresLocation {
		switch in.Location {
		case LocationCasa, LocationVeterinaria, LocationPetco:
		default:
			return fmt.Errorf("%w: location must be one of Casa, Veterinaria, Petco", ErrInvalidInput)
		}
	}
	if len(desc.Types) > 0 && in.Type != "" {
		ok := false
		for _, t := range desc.Types {
			if t == in.Type {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: type must be one of %s", ErrInvalidInput, strings.Join(desc.Types, ", "))
		}
	}
	return nil
}

func indexOf(ledger []Record, id int64) int {
	for i, r := range ledger {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// nextID asigna ids en milisegundos del reloj, estrictamente crecientes
// dentro de la cartilla (dos altas en el mismo milisegundo no chocan).
func nextID(ledger []Record, now time.Time) int64 {
	id := now.UnixMilli()
	for _, r := range ledger {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	return id
}
