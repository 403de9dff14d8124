package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	sess "bioquiz/internal/quiz"
	"bioquiz/internal/quizgen"
	"bioquiz/internal/results"
	"bioquiz/internal/router"
	"bioquiz/internal/screen"
	resultsscreen "bioquiz/internal/screens/results"
	"bioquiz/internal/ui/components"
	"bioquiz/internal/ui/layout"
)

// QuizScreen runs one quiz attempt: it generates the batch, then
// drives the session through answering and navigation.
type QuizScreen struct {
	generator quizgen.Generator
	request   quizgen.Request
	session   *sess.Session
	options   components.OptionList
	loading   bool
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a quiz screen for the given request.
func New(generator quizgen.Generator, request quizgen.Request) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		request:   request,
		loading:   true,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.generate(), tickCmd())
}

func (s *QuizScreen) Title() string {
	return "Cuestionario"
}

// Status renders the running timer for the header.
func (s *QuizScreen) Status() string {
	if s.session == nil || s.session.State() != sess.StateInProgress {
		return ""
	}
	return results.FormatDuration(s.session.Elapsed())
}

// Close stops the session timer when the screen is discarded.
func (s *QuizScreen) Close() {
	if s.session != nil {
		s.session.Close()
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Volver"}}
	}
	if s.loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancelar"}}
	}

	hints := []layout.KeyHint{
		{Key: "←→", Description: "Navegar"},
	}
	if !s.session.CurrentAnswer().Answered() {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Elegir"},
			layout.KeyHint{Key: "Enter/A-D", Description: "Responder"},
		)
	} else if s.onLastQuestion() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finalizar"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Siguiente"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Abandonar"})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleReady(msg)

	case quizFailedMsg:
		s.loading = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case displayTickMsg:
		if s.session != nil && s.session.State() != sess.StateInProgress {
			return s, nil
		}
		return s, tickCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// generate runs the generation call off the UI loop.
func (s *QuizScreen) generate() tea.Cmd {
	generator := s.generator
	request := s.request
	return func() tea.Msg {
		questions, err := generator.Generate(context.Background(), request)
		if err != nil {
			return quizFailedMsg{Err: err}
		}
		return quizReadyMsg{Questions: questions}
	}
}

func (s *QuizScreen) handleReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	s.session = sess.New(s.request.Mode)
	s.session.Initialize(msg.Questions)
	s.syncOptions()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back to the home screen.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.loading || s.session == nil {
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		s.session.Previous()
		s.syncOptions()
		return s, nil

	case "right", "l":
		s.session.Next()
		s.syncOptions()
		return s, nil

	case "enter":
		if !s.session.CurrentAnswer().Answered() {
			return s.commit(s.options.CursorLabel())
		}
		if s.onLastQuestion() {
			return s.finish()
		}
		s.session.Next()
		s.syncOptions()
		return s, nil

	case "a", "1":
		return s.commit(quizgen.LabelA)
	case "b", "2":
		return s.commit(quizgen.LabelB)
	case "c", "3":
		return s.commit(quizgen.LabelC)
	case "d", "4":
		return s.commit(quizgen.LabelD)
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// commit records the answer for the current question. The session
// ignores the call if the question is already answered.
func (s *QuizScreen) commit(label quizgen.Label) (screen.Screen, tea.Cmd) {
	s.session.SelectOption(label)
	s.syncOptions()
	return s, nil
}

// finish completes the session and hands over to the results screen.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	answers, elapsed, ok := s.session.Finish()
	if !ok {
		return s, nil
	}
	questions := s.session.Questions()
	mode := s.session.Mode()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: resultsscreen.New(questions, answers, elapsed, mode),
		}
	}
}

// syncOptions rebuilds the option list from the answer record at the
// cursor, so revisiting a question always shows the same state.
func (s *QuizScreen) syncOptions() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	s.options = components.NewOptionList(q.Options)
	if a := s.session.CurrentAnswer(); a.Answered() {
		s.options = s.options.Lock(a.Chosen, q.Answer)
	}
}

func (s *QuizScreen) onLastQuestion() bool {
	return s.session.CurrentIndex() == s.session.Len()-1
}

// tickCmd returns a 1-second re-render tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return displayTickMsg(t)
	})
}
