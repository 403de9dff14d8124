// Package topics holds the fixed biostatistics topic catalog.
// Topic names are Spanish because all generated content and prompts are Spanish.
package topics

// Catalog is the fixed list of biostatistics topics offered for quiz
// composition. Order matters: it is the display order of the topic picker.
var Catalog = []string{
	"Definición de Bioestadística y conceptos básicos",
	"Estadística Descriptiva",
	"Probabilidad y Distribuciones de Probabilidad",
	"Muestreo y Teorema del Límite Central",
	"Estimación e Intervalos de Confianza",
	"Pruebas de Hipótesis (Inferencia)",
	"Comparación de dos medias (Prueba t)",
	"Análisis de Varianza (ANOVA)",
	"Correlación de Pearson",
	"Regresión Lineal Simple",
	"Regresión Lineal Múltiple",
	"Prueba de Chi-cuadrado",
	"Regresión Logística",
	"Análisis de Supervivencia",
	"Diseño de Estudios Epidemiológicos",
}

// All returns a copy of the catalog so callers cannot mutate it.
func All() []string {
	out := make([]string, len(Catalog))
	copy(out, Catalog)
	return out
}

// Contains reports whether name is a catalog topic.
func Contains(name string) bool {
	for _, t := range Catalog {
		if t == name {
			return true
		}
	}
	return false
}
