package records

// NextDue calcula la próxima fecha de aplicación: applied + interval en la
// unidad dada. Función pura; asume interval > 0 (el servicio valida antes).
//
// Para meses se usa la aritmética de time.AddDate, que normaliza por
// desborde de días: 2024-01-31 + 1 mes = 2024-02-31 => 2024-03-02.
// Esa es la regla de rollover elegida y la que cubren los tests.
func NextDue(applied Date, interval int, unit IntervalUnit) Date {
	switch unit {
	case UnitMonths:
		return applied.AddMonths(interval)
	default:
		return applied.AddDays(interval)
	}
}
