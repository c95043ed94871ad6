package records

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout es la única representación de fechas persistidas (ISO date-only).
const dateLayout = "2006-01-02"

// Date es una fecha de calendario sin componente horario.
// Se serializa siempre como YYYY-MM-DD.
type Date struct {
	t time.Time
}

// NewDate construye una Date en UTC a medianoche.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca un time.Time a su fecha de calendario.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate interpreta YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// Time devuelve la medianoche UTC de la fecha.
// La hora exacta del recordatorio queda sin especificar a propósito.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) AddDays(n int) Date   { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date { return Date{t: d.t.AddDate(0, n, 0)} }

func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record es un evento registrado en una cartilla: una dosis de medicamento,
// un baño, una desparasitación o una vacuna. Los campos extra aplican según
// la categoría (ver Descriptor); los que no aplican quedan en cero.
type Record struct {
	// ID es único dentro de su cartilla, asignado al crear (milisegundos del
	// reloj del servicio, monotónico). Nunca se reusa ni cambia al editar.
	ID int64 `json:"id"`

	Name string `json:"name,omitempty"`

	// AppliedDate es la fecha en que ocurrió el tratamiento/evento.
	AppliedDate Date `json:"date"`

	// IntervalValue es la duración hasta la próxima aplicación, en la unidad
	// de la categoría (días u meses). Cero para categorías sin recurrencia.
	IntervalValue int `json:"duration,omitempty"`

	// NextDate = AppliedDate + IntervalValue en la unidad de la categoría.
	// Nil para baños.
	NextDate *Date `json:"next_date,omitempty"`

	Location BathLocation `json:"location,omitempty"`
	Type     string       `json:"type,omitempty"`
	Weight   float64      `json:"weight,omitempty"`

	// ReminderID es el handle del recordatorio armado para NextDate.
	// Permite retirarlo al editar o borrar el registro.
	ReminderID string `json:"reminder_id,omitempty"`
}
