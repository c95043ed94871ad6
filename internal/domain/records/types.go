package records

// Category identifica una cartilla (ledger) independiente.
// Cada categoría se persiste bajo su propia clave.
type Category string

const (
	CategoryMedications Category = "medications"
	CategoryBaths       Category = "baths"
	CategoryDewormings  Category = "dewormings"
	CategoryVaccines    Category = "vaccines"
)

// IntervalUnit es la unidad del intervalo hasta la próxima aplicación.
type IntervalUnit string

const (
	UnitDays   IntervalUnit = "days"
	UnitMonths IntervalUnit = "months"
	// UnitNone aplica a categorías sin recurrencia (baños).
	UnitNone IntervalUnit = "none"
)

// BathLocation define los lugares de baño soportados.
type BathLocation string

const (
	LocationCasa        BathLocation = "Casa"
	LocationVeterinaria BathLocation = "Veterinaria"
	LocationPetco       BathLocation = "Petco"
)

// DewormingType define los tipos de desparasitación.
type DewormingType string

const (
	DewormingInterna DewormingType = "Interna"
	DewormingExterna DewormingType = "Externa"
)

// VaccineType define los tipos de vacuna.
type VaccineType string

const (
	VaccineVirus      VaccineType = "Virus"
	VaccineBacteriana VaccineType = "Bacteriana"
	VaccineRefuerzo   VaccineType = "Refuerzo"
)

// Descriptor parametriza el ciclo de vida genérico por categoría:
// campos requeridos, unidad del intervalo y atributos extra.
// Es la única diferencia entre las cuatro cartillas.
type Descriptor struct {
	Category Category

	Unit IntervalUnit

	RequiresName     bool
	RequiresInterval bool
	RequiresWeight   bool
	RequiresLocation bool

	// Types son los valores permitidos para el atributo Type.
	// Vacío => la categoría no tiene tipo. El primero es el default.
	Types []string

	// Textos del recordatorio. ReminderBody recibe el nombre del registro.
	ReminderTitle string
	ReminderBody  string
}

// HasReminder indica si la categoría programa recordatorios de próxima dosis.
func (d Descriptor) HasReminder() bool {
	return d.Unit != UnitNone
}

var descriptors = []Descriptor{
	{
		Category:         CategoryMedications,
		Unit:             UnitDays,
		RequiresName:     true,
		RequiresInterval: true,
		ReminderTitle:    "Recordatorio de Medicamento",
		ReminderBody:     "Recuerda administrar %s",
	},
	{
		Category:         CategoryBaths,
		Unit:             UnitNone,
		RequiresLocation: true,
	},
	{
		Category:         CategoryDewormings,
		Unit:             UnitDays,
		RequiresName:     true,
		RequiresInterval: true,
		Types:            []string{string(DewormingInterna), string(DewormingExterna)},
		ReminderTitle:    "Recordatorio de Desparasitación",
		ReminderBody:     "Recuerda administrar %s",
	},
	{
		Category:         CategoryVaccines,
		Unit:             UnitMonths,
		RequiresName:     true,
		RequiresInterval: true,
		RequiresWeight:   true,
		Types:            []string{string(VaccineVirus), string(VaccineBacteriana), string(VaccineRefuerzo)},
		ReminderTitle:    "Recordatorio de Vacuna",
		ReminderBody:     "Recuerda aplicar la vacuna de %s",
	},
}

// DescriptorFor devuelve el descriptor de la categoría, si existe.
func DescriptorFor(c Category) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Category == c {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Categories devuelve los descriptores en orden estable (para el home).
func Categories() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}
