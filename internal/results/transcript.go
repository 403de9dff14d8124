package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bioquiz/internal/quiz"
	"bioquiz/internal/quizgen"
)

// FormatDuration renders whole seconds as MM:SS with zero-padded
// fields. Minutes are not wrapped at sixty.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Transcript renders a completed attempt as a plain-text document:
// a header with timestamp, mode, time and score, then one block per
// question with the chosen and correct labels.
func Transcript(questions []quizgen.Question, answers []quiz.UserAnswer, elapsedSeconds int, mode quizgen.Mode, at time.Time) string {
	score := Compute(answers)

	var b strings.Builder
	b.WriteString("Resultados del Cuestionario de Bioestadística\n")
	fmt.Fprintf(&b, "Fecha: %s\n", at.Format("2/1/2006, 15:04:05"))
	fmt.Fprintf(&b, "Modo: %s\n", mode)
	fmt.Fprintf(&b, "Tiempo Utilizado: %s\n", FormatDuration(elapsedSeconds))
	fmt.Fprintf(&b, "Aciertos: %d/%d (%.1f%%)\n\n", score.Correct, score.Total, score.Percentage)
	b.WriteString("--- DETALLE DE PREGUNTAS ---\n\n")

	for i, q := range questions {
		fmt.Fprintf(&b, "Pregunta ID: %s\n", q.ID)
		fmt.Fprintf(&b, "Tema: %s\n", q.Topic)
		fmt.Fprintf(&b, "Pregunta: %s\n", q.Prompt)

		chosen := "No respondida"
		result := "Incorrecta"
		if i < len(answers) {
			a := answers[i]
			if a.Answered() {
				chosen = string(a.Chosen)
			}
			if a.Correct {
				result = "Correcta"
			}
		}
		fmt.Fprintf(&b, "Tu respuesta: %s\n", chosen)
		fmt.Fprintf(&b, "Respuesta correcta: %s\n", q.Answer)
		fmt.Fprintf(&b, "Resultado: %s\n", result)
		b.WriteString("---------------------------------\n\n")
	}

	return b.String()
}

// FileName returns the deterministic export name for the given date,
// e.g. resultados_bioestadistica_2026-08-30.txt.
func FileName(at time.Time) string {
	return fmt.Sprintf("resultados_bioestadistica_%s.txt", at.Format("2006-01-02"))
}

// Save writes the transcript to dir under the date-stamped name and
// returns the full path.
func Save(dir string, questions []quizgen.Question, answers []quiz.UserAnswer, elapsedSeconds int, mode quizgen.Mode, at time.Time) (string, error) {
	path := filepath.Join(dir, FileName(at))
	content := Transcript(questions, answers, elapsedSeconds, mode, at)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("saving transcript: %w", err)
	}
	return path, nil
}
