package quizgen

import (
	"fmt"
	"math"
	"strings"
)

const systemPrompt = `Eres un experto en bioestadística y un excelente docente para estudiantes de ciencias de la salud de grado y posgrado.
Tu tarea es generar cuestionarios de preguntas de bioestadística de dificultad leve a moderada.

Cada pregunta debe tener:
- Un ID único.
- El texto de la pregunta.
- 4 opciones de respuesta (A, B, C, D), donde solo una es correcta.
- La letra de la respuesta correcta.
- Una explicación detallada:
    - "correct": Una explicación de 2-4 líneas de por qué la respuesta es correcta, usando un enfoque clínico o práctico cuando sea posible.
    - "incorrect": Explicaciones para las otras 3 opciones, de 1-2 líneas cada una, aclarando malentendidos comunes.
- El tema de bioestadística al que pertenece.
- El tipo de pregunta.`

// Composition holds the numeric balance constraints computed for one
// quiz request. The counts always sum to the requested total.
type Composition struct {
	NumCalculation int
	NumConceptual  int
	NumChart       int
	NumOutput      int

	// MaxPerTopic caps how many questions may share a single topic.
	MaxPerTopic int
}

// Compose computes the question-kind balance for a quiz of the given
// size. When extended is set, a tenth of the quiz is reserved for each
// interpretation kind and the remainder is split between calculation
// and conceptual. The conceptual count absorbs the rounding so the
// parts always sum to count.
func Compose(count int, extended bool) Composition {
	c := Composition{
		MaxPerTopic: max(3, int(math.Ceil(float64(count)/4))),
	}

	remaining := count
	if extended {
		c.NumChart = count / 10
		c.NumOutput = count / 10
		remaining -= c.NumChart + c.NumOutput
	}

	c.NumCalculation = int(math.Round(float64(remaining) * 0.2))
	c.NumConceptual = remaining - c.NumCalculation
	return c
}

// Total returns the sum of all kind counts.
func (c Composition) Total() int {
	return c.NumCalculation + c.NumConceptual + c.NumChart + c.NumOutput
}

// diversityRule returns the topic-diversity instruction for the given
// quiz size. Larger quizzes demand a higher floor of distinct topics.
func diversityRule(count int) string {
	switch {
	case count >= 50:
		return "Las preguntas deben cubrir al menos 15 temas distintos de la bioestadística."
	case count >= 20:
		return "Las preguntas deben cubrir al menos 10 temas distintos de la bioestadística."
	case count >= 10:
		return "Las preguntas deben cubrir al menos 6 temas distintos de la bioestadística."
	default:
		return "Las preguntas deben cubrir tantos temas distintos como sea posible."
	}
}

// buildUserMessage renders the balance constraints and mode-specific
// instructions for one quiz request.
func buildUserMessage(req Request, comp Composition) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Genera un cuestionario de %d preguntas de bioestadística.\n", req.Count)
	b.WriteString("El cuestionario debe estar perfectamente balanceado con la siguiente estructura:\n")
	fmt.Fprintf(&b, "- %d preguntas de tipo %q.\n", comp.NumCalculation, KindCalculation)
	fmt.Fprintf(&b, "- %d preguntas de tipo %q.\n", comp.NumConceptual, KindConceptual)
	if comp.NumChart > 0 {
		fmt.Fprintf(&b, "- %d preguntas de tipo %q, exactamente. Cada una debe incluir en el campo svgChart un gráfico SVG autocontenido (barras, dispersión o cajas) que el estudiante deba interpretar.\n", comp.NumChart, KindChart)
	}
	if comp.NumOutput > 0 {
		fmt.Fprintf(&b, "- %d preguntas de tipo %q, exactamente. Cada una debe incluir en el campo statisticalOutput una tabla de salida de software estadístico en texto plano que el estudiante deba interpretar.\n", comp.NumOutput, KindOutput)
	}
	fmt.Fprintf(&b, "- %s\n", diversityRule(req.Count))
	fmt.Fprintf(&b, "- No debe haber más de %d preguntas del mismo tema.\n", comp.MaxPerTopic)

	switch req.Mode {
	case ModeTopic:
		fmt.Fprintf(&b, "\nEnfócate en los siguientes temas, pero manteniendo el balance general: %s. Si no es posible mantener el balance estricto con los temas seleccionados, prioriza los temas pero acércate al balance lo más posible.\n", strings.Join(req.Topics, ", "))
	case ModeHashtag:
		fmt.Fprintf(&b, "\nFiltra las preguntas para que estén relacionadas con el hashtag: %q. Intenta mantener el balance de tipos y temas dentro de esta restricción.\n", req.Hashtag)
	default:
		b.WriteString("\nGenera un cuestionario aleatorio que cumpla con todas las reglas de balance mencionadas.\n")
	}

	fmt.Fprintf(&b, "\nDevuelve el resultado exclusivamente como un objeto JSON que sea un array de %d elementos, y que se ajuste al esquema proporcionado. No incluyas ninguna otra explicación o texto fuera del JSON.", req.Count)

	return b.String()
}
