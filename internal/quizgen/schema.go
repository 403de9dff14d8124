package quizgen

import (
	"fmt"

	"bioquiz/internal/llm"
)

// BatchSchema builds the JSON schema for a quiz generation response:
// an array of exactly count question objects. The schema name embeds
// the count and variant because compiled schemas are cached by name.
func BatchSchema(count int, extended bool) *llm.Schema {
	name := fmt.Sprintf("biostat-quiz-%d", count)
	if extended {
		name += "-ext"
	}

	kinds := []any{string(KindCalculation), string(KindConceptual)}
	if extended {
		kinds = append(kinds, string(KindChart), string(KindOutput))
	}

	properties := map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "ID único de la pregunta, ej: BIO-101",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "El texto de la pregunta.",
		},
		"options": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"A": map[string]any{"type": "string"},
				"B": map[string]any{"type": "string"},
				"C": map[string]any{"type": "string"},
				"D": map[string]any{"type": "string"},
			},
			"required": []any{"A", "B", "C", "D"},
		},
		"answer": map[string]any{
			"type":        "string",
			"enum":        []any{"A", "B", "C", "D"},
			"description": "La letra de la opción correcta (A, B, C, o D).",
		},
		"explanation": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct": map[string]any{
					"type":        "string",
					"description": "Explicación de por qué la respuesta es correcta.",
				},
				"incorrect": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"A": map[string]any{"type": "string", "description": "Explicación si A es incorrecta."},
						"B": map[string]any{"type": "string", "description": "Explicación si B es incorrecta."},
						"C": map[string]any{"type": "string", "description": "Explicación si C es incorrecta."},
						"D": map[string]any{"type": "string", "description": "Explicación si D es incorrecta."},
					},
				},
			},
			"required": []any{"correct", "incorrect"},
		},
		"topic": map[string]any{
			"type":        "string",
			"description": "El tema de bioestadística.",
		},
		"type": map[string]any{
			"type":        "string",
			"enum":        kinds,
			"description": "Tipo de pregunta.",
		},
	}
	required := []any{"id", "question", "options", "answer", "explanation", "topic", "type"}

	if extended {
		properties["svgChart"] = map[string]any{
			"type":        "string",
			"description": "Gráfico SVG autocontenido. Solo para preguntas de interpretación de gráfico.",
		}
		properties["statisticalOutput"] = map[string]any{
			"type":        "string",
			"description": "Salida de software estadístico en texto plano. Solo para preguntas de interpretación de salida.",
		}
	}

	return &llm.Schema{
		Name:        name,
		Description: fmt.Sprintf("Un cuestionario de %d preguntas de bioestadística de opción múltiple", count),
		Definition: map[string]any{
			"type":     "array",
			"minItems": count,
			"maxItems": count,
			"items": map[string]any{
				"type":       "object",
				"properties": properties,
				"required":   required,
			},
		},
	}
}
