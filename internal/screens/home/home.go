package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"bioquiz/internal/quizgen"
	"bioquiz/internal/router"
	"bioquiz/internal/screen"
	quizscreen "bioquiz/internal/screens/quiz"
	"bioquiz/internal/topics"
	"bioquiz/internal/ui/components"
	"bioquiz/internal/ui/layout"
	"bioquiz/internal/ui/theme"
)

// phase is the visible section of the home screen.
type phase int

const (
	phaseMenu phase = iota
	phaseTopics
	phaseHashtag
)

// countChoices are the quiz lengths offered on the home screen.
var countChoices = []int{5, 10, 20, 30, 50}

// HomeScreen is the entry screen: mode selection, quiz length and the
// topic/hashtag sub-forms.
type HomeScreen struct {
	generator quizgen.Generator
	phase     phase
	menu      components.Menu
	picker    components.Checklist
	hashtag   components.TextInput
	countIdx  int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(generator quizgen.Generator, defaultCount int) *HomeScreen {
	h := &HomeScreen{
		generator: generator,
		picker:    components.NewChecklist(topics.All()),
		hashtag:   components.NewTextInput("#regresionlogistica", 40),
		countIdx:  1, // 10 questions
	}
	for i, c := range countChoices {
		if c == defaultCount {
			h.countIdx = i
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "Cuestionario Aleatorio", Action: func() tea.Cmd {
			return h.start(quizgen.Request{Mode: quizgen.ModeRandom, Count: h.count()})
		}},
		{Label: "Elegir por Tema", Action: func() tea.Cmd {
			h.phase = phaseTopics
			return nil
		}},
		{Label: "Buscar por Hashtag", Action: func() tea.Cmd {
			h.phase = phaseHashtag
			return h.hashtag.Init()
		}},
		{Label: "Salir", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})

	return h
}

func (h *HomeScreen) count() int {
	return countChoices[h.countIdx]
}

// start pushes the quiz screen for the given request.
func (h *HomeScreen) start(req quizgen.Request) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quizscreen.New(h.generator, req),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	switch h.phase {
	case phaseTopics:
		return []layout.KeyHint{
			{Key: "Espacio", Description: "Marcar"},
			{Key: "Enter", Description: "Iniciar"},
			{Key: "Esc", Description: "Volver"},
		}
	case phaseHashtag:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Buscar e iniciar"},
			{Key: "Esc", Description: "Volver"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "+/-", Description: "Preguntas"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch h.phase {
		case phaseTopics:
			return h.updateTopics(kmsg)
		case phaseHashtag:
			return h.updateHashtag(kmsg, msg)
		}

		switch kmsg.String() {
		case "+", "=":
			if h.countIdx < len(countChoices)-1 {
				h.countIdx++
			}
			return h, nil
		case "-":
			if h.countIdx > 0 {
				h.countIdx--
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateTopics(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		h.phase = phaseMenu
		return h, nil
	case "enter":
		selected := h.picker.Selected()
		if len(selected) == 0 {
			return h, nil
		}
		h.phase = phaseMenu
		return h, h.start(quizgen.Request{
			Mode:   quizgen.ModeTopic,
			Count:  h.count(),
			Topics: selected,
		})
	}

	var cmd tea.Cmd
	h.picker, cmd = h.picker.Update(kmsg)
	return h, cmd
}

func (h *HomeScreen) updateHashtag(kmsg tea.KeyMsg, msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		h.phase = phaseMenu
		return h, nil
	case "enter":
		tag := strings.TrimSpace(h.hashtag.Value())
		if tag == "" {
			return h, nil
		}
		h.phase = phaseMenu
		return h, h.start(quizgen.Request{
			Mode:    quizgen.ModeHashtag,
			Count:   h.count(),
			Hashtag: tag,
		})
	}

	var cmd tea.Cmd
	h.hashtag, cmd = h.hashtag.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Preguntas para aprender Bioestadística"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("— Diseñado por IA —"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Cada pregunta te ayudará a afianzar conceptos clave de estadística aplicada a la salud."))
	b.WriteString("\n\n")

	switch h.phase {
	case phaseTopics:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			PaddingLeft(2).
			Render("Selecciona uno o más temas:"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(h.picker.View()))

	case phaseHashtag:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			PaddingLeft(2).
			Render("Busca por etiqueta (ej: p-valor, ensayo clínico):"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(h.hashtag.View()))

	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Preguntas por cuestionario: %d", h.count())))
	}

	return b.String()
}
