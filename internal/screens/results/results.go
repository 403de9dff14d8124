package results

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"bioquiz/internal/quiz"
	"bioquiz/internal/quizgen"
	"bioquiz/internal/results"
	"bioquiz/internal/router"
	"bioquiz/internal/screen"
	"bioquiz/internal/ui/layout"
	"bioquiz/internal/ui/theme"
)

// ResultsScreen shows the final score with qualitative feedback and
// offers the plain-text transcript export.
type ResultsScreen struct {
	questions []quizgen.Question
	answers   []quiz.UserAnswer
	elapsed   int
	mode      quizgen.Mode
	score     results.Score

	savedPath string
	saveErr   error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a completed attempt.
func New(questions []quizgen.Question, answers []quiz.UserAnswer, elapsedSeconds int, mode quizgen.Mode) *ResultsScreen {
	return &ResultsScreen{
		questions: questions,
		answers:   answers,
		elapsed:   elapsedSeconds,
		mode:      mode,
		score:     results.Compute(answers),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Resultados Finales"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "G", Description: "Guardar (.txt)"},
		{Key: "Enter/Esc", Description: "Inicio"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "g":
		s.save()
		return s, nil
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// save writes the transcript next to the working directory.
func (s *ResultsScreen) save() {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	s.savedPath, s.saveErr = results.Save(dir, s.questions, s.answers, s.elapsed, s.mode, time.Now())
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Resultados Finales"))
	b.WriteString("\n\n")

	stats := []struct {
		value, label string
	}{
		{fmt.Sprintf("%d/%d", s.score.Correct, s.score.Total), "Aciertos"},
		{fmt.Sprintf("%.0f%%", s.score.Percentage), "Porcentaje"},
		{results.FormatDuration(s.elapsed), "Tiempo Utilizado"},
	}
	cards := make([]string, 0, len(stats))
	for _, st := range stats {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Align(lipgloss.Center).Width(16).Render(st.value) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Width(16).Render(st.label),
		)
		cards = append(cards, card)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Italic(true).
		Render("“" + results.Feedback(s.score) + "”"))
	b.WriteString("\n\n")

	switch {
	case s.saveErr != nil:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("No se pudo guardar: " + s.saveErr.Error()))
	case s.savedPath != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Resultados guardados en " + s.savedPath))
	}

	return b.String()
}
