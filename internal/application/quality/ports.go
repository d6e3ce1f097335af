// Package quality casos de uso de los análisis merceológicos: ciclo borrador → validado,
// veredicto de conformidad frente al flujo, estadísticas y exportación.
package quality

// Metrics contador de validaciones por resultado.
type Metrics interface {
	SampleValidated(conforming bool)
}
