package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"bioquiz/internal/quizgen"
	"bioquiz/internal/ui/components"
	"bioquiz/internal/ui/theme"
)

// explanationForChoice returns the incorrect-option explanation for
// the learner's choice, empty when the choice was correct.
func explanationForChoice(q *quizgen.Question, chosen quizgen.Label) string {
	return q.Explanation.Incorrect[chosen]
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.loading || s.session == nil {
		return renderLoading(width, s.request.Count)
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the current question, its options and,
// once answered, the explanation panel.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Position and progress line.
	posLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Pregunta %d de %d", s.session.CurrentIndex()+1, s.session.Len()))

	bar := components.NewProgressBar(
		"",
		float64(s.session.Progress())/float64(s.session.Len()),
		false,
		min(width/3, 30),
	)
	answered := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d respondidas  ", s.session.Progress()))

	infoRight := answered + bar.View()
	rightPad := width - lipgloss.Width(posLine) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		posLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(posLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Topic and kind.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s · %s", q.Topic, q.Kind)))
	b.WriteString("\n\n")

	// Question text.
	textWidth := min(width-8, 90)
	b.WriteString(lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		PaddingLeft(2).
		Render(q.Prompt))
	b.WriteString("\n\n")

	// Interpretation payloads, shown verbatim in a dim block.
	if q.StatOutput != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			PaddingLeft(4).
			Render(q.StatOutput))
		b.WriteString("\n\n")
	}
	if q.ChartMarkup != "" {
		// SVG markup cannot be drawn in a terminal; point at the kind
		// instead so the question is still answerable from its text.
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			PaddingLeft(4).
			Render("[gráfico adjunto descrito en el enunciado]"))
		b.WriteString("\n\n")
	}

	// Options.
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.options.View()))
	b.WriteString("\n")

	// Explanation panel, only after the answer is locked in.
	if a := s.session.CurrentAnswer(); a.Answered() {
		b.WriteString(s.renderExplanation(q.Explanation.Correct, explanationForChoice(q, a.Chosen), a.Correct, width))
	}

	return b.String()
}

// renderExplanation renders the post-answer panel: verdict, the
// explanation of the correct option and, for a wrong choice, why the
// chosen option fails.
func (s *QuizScreen) renderExplanation(correct, chosenWhy string, wasCorrect bool, width int) string {
	var b strings.Builder

	verdict := theme.Correct.Render("  ✔ Correcta")
	if !wasCorrect {
		verdict = theme.Incorrect.Render("  ✘ Incorrecta")
	}
	b.WriteString(verdict)
	b.WriteString("\n\n")

	expWidth := min(width-8, 90)
	if !wasCorrect && chosenWhy != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(expWidth).
			Foreground(theme.Error).
			PaddingLeft(2).
			Render("Tu opción: " + chosenWhy))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(expWidth).
		Foreground(theme.Text).
		PaddingLeft(2).
		Render(correct))
	b.WriteString("\n")

	return b.String()
}

func renderLoading(width, count int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  Generando tu cuestionario de %d preguntas con IA...", count))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  No se pudieron generar las preguntas.\n  %s\n\n  Pulsa cualquier tecla para volver.", errMsg))
}
