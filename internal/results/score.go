package results

import "bioquiz/internal/quiz"

// Score summarizes a completed quiz attempt.
type Score struct {
	Correct    int
	Total      int
	Percentage float64
}

// Compute derives the score from the answer records.
func Compute(answers []quiz.UserAnswer) Score {
	s := Score{Total: len(answers)}
	for _, a := range answers {
		if a.Answered() && a.Correct {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Percentage = float64(s.Correct) / float64(s.Total) * 100
	}
	return s
}

// Feedback returns the qualitative message for a score. Three fixed
// tiers: up to 50 percent, up to 80, and above.
func Feedback(s Score) string {
	switch {
	case s.Percentage <= 50:
		return "Buen comienzo. Revisa los conceptos clave y vuelve a intentarlo."
	case s.Percentage <= 80:
		return "Vas muy bien. Pulamos detalles estadísticos finos."
	default:
		return "¡Excelente manejo! Estás lista/o para problemas más complejos."
	}
}
