package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"bioquiz/internal/quizgen"
)

// State tracks the lifecycle of a quiz attempt.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// UserAnswer records the learner's response to one question. Chosen is
// empty until the learner commits an answer; once set it never changes.
type UserAnswer struct {
	QuestionID string
	Chosen     quizgen.Label
	Correct    bool
}

// Answered reports whether the learner has committed an answer.
func (a UserAnswer) Answered() bool {
	return a.Chosen != ""
}

// Session owns one in-progress quiz attempt: the question batch, the
// answer records, the cursor position and the elapsed-time counter.
// All methods are safe for concurrent use. The session holds no state
// beyond its own attempt; a new quiz means a new Session.
type Session struct {
	mu        sync.Mutex
	id        string
	mode      quizgen.Mode
	state     State
	questions []quizgen.Question
	answers   []UserAnswer
	current   int
	elapsed   int

	stopTimer chan struct{}
	stopOnce  sync.Once
}

// New creates an empty session for the given mode.
func New(mode quizgen.Mode) *Session {
	return &Session{
		id:        uuid.NewString(),
		mode:      mode,
		stopTimer: make(chan struct{}),
	}
}

// Initialize loads the question batch and starts the elapsed-time
// counter. Allowed only from the not-started state; otherwise a no-op.
func (s *Session) Initialize(questions []quizgen.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted || len(questions) == 0 {
		return
	}

	s.questions = questions
	s.answers = make([]UserAnswer, len(questions))
	for i, q := range questions {
		s.answers[i] = UserAnswer{QuestionID: q.ID}
	}
	s.current = 0
	s.state = StateInProgress

	go s.runTimer()
}

// runTimer increments the elapsed counter once per second until the
// session finishes or is closed.
func (s *Session) runTimer() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopTimer:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick advances the elapsed counter by one second while in progress.
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress {
		s.elapsed++
	}
}

// SelectOption commits the learner's answer for the current question.
// The commit is one-shot: if the current question is already answered
// the call is a no-op and the recorded answer is unchanged.
func (s *Session) SelectOption(label quizgen.Label) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if s.answers[s.current].Answered() {
		return
	}

	q := s.questions[s.current]
	s.answers[s.current] = UserAnswer{
		QuestionID: q.ID,
		Chosen:     label,
		Correct:    label == q.Answer,
	}
}

// Next advances the cursor. No-op on the last question.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.current < len(s.questions)-1 {
		s.current++
	}
}

// Previous moves the cursor back. No-op on the first question.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateInProgress && s.current > 0 {
		s.current--
	}
}

// Finish completes the session. Allowed only while on the last
// question; otherwise a no-op returning ok=false. On success it stops
// the timer and returns a copy of the answer records and the total
// elapsed seconds.
func (s *Session) Finish() (answers []UserAnswer, elapsedSeconds int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress || s.current != len(s.questions)-1 {
		return nil, 0, false
	}

	s.state = StateCompleted
	s.stopOnce.Do(func() { close(s.stopTimer) })

	answers = make([]UserAnswer, len(s.answers))
	copy(answers, s.answers)
	return answers, s.elapsed, true
}

// Close stops the timer without completing the session. Safe to call
// at any time, in any state, more than once.
func (s *Session) Close() {
	s.stopOnce.Do(func() { close(s.stopTimer) })
}

// ID returns the unique identifier of this attempt.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the composition mode this session was created for.
func (s *Session) Mode() quizgen.Mode {
	return s.mode
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Len returns the number of questions in the batch.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question at the cursor, or nil before
// initialization.
func (s *Session) CurrentQuestion() *quizgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.questions) == 0 {
		return nil
	}
	q := s.questions[s.current]
	return &q
}

// CurrentAnswer returns the answer record at the cursor. The zero
// value is returned before initialization.
func (s *Session) CurrentAnswer() UserAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.answers) == 0 {
		return UserAnswer{}
	}
	return s.answers[s.current]
}

// Questions returns a copy of the question batch. Callers cannot
// mutate the session's questions through the returned slice.
func (s *Session) Questions() []quizgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]quizgen.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Progress returns how many questions have been answered, independent
// of the cursor position.
func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.answers {
		if a.Answered() {
			n++
		}
	}
	return n
}

// Elapsed returns the elapsed whole seconds so far.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}
