package quiz

import (
	"time"

	"bioquiz/internal/quizgen"
)

// quizReadyMsg carries the generated question batch.
type quizReadyMsg struct {
	Questions []quizgen.Question
}

// quizFailedMsg signals that generation failed.
type quizFailedMsg struct {
	Err error
}

// displayTickMsg triggers a periodic re-render so the timer advances
// on screen. The elapsed counter itself lives in the session.
type displayTickMsg time.Time
