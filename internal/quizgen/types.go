package quizgen

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies one of the four fixed answer options.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// Kind is the pedagogical category of a question. The values are the
// literal Spanish strings the provider is instructed to emit.
type Kind string

const (
	KindCalculation Kind = "cálculo sencillo"
	KindConceptual  Kind = "conceptual/razonamiento"

	// Extended kinds, only requested when Config.ExtendedKinds is set.
	KindChart  Kind = "interpretación de gráfico"
	KindOutput Kind = "interpretación de salida"
)

// Mode selects the composition strategy for a quiz.
type Mode string

const (
	// ModeRandom draws questions freely across the whole catalog.
	ModeRandom Mode = "random"

	// ModeTopic prefers the topics listed in Request.Topics.
	ModeTopic Mode = "topic"

	// ModeHashtag filters questions by the tag in Request.Hashtag.
	ModeHashtag Mode = "hashtag"
)

// Explanation carries the didactic text attached to a question.
// Incorrect holds one entry per option label other than the correct one.
type Explanation struct {
	Correct   string           `json:"correct"`
	Incorrect map[Label]string `json:"incorrect"`
}

// Question is a single generated multiple-choice question.
type Question struct {
	ID          string           `json:"id"`
	Prompt      string           `json:"question"`
	Options     map[Label]string `json:"options"`
	Answer      Label            `json:"answer"`
	Explanation Explanation      `json:"explanation"`
	Topic       string           `json:"topic"`
	Kind        Kind             `json:"type"`

	// ChartMarkup holds a self-contained SVG for KindChart questions.
	ChartMarkup string `json:"svgChart,omitempty"`

	// StatOutput holds a plain-text software output table for
	// KindOutput questions.
	StatOutput string `json:"statisticalOutput,omitempty"`
}

// Request describes one quiz to generate.
type Request struct {
	Mode  Mode
	Count int

	// Topics is required and non-empty when Mode is ModeTopic.
	Topics []string

	// Hashtag is required and non-empty when Mode is ModeHashtag.
	Hashtag string
}

// Validate checks that the request is internally consistent.
func (r Request) Validate() error {
	if r.Count < 1 {
		return fmt.Errorf("question count must be positive, got %d", r.Count)
	}
	switch r.Mode {
	case ModeRandom:
	case ModeTopic:
		if len(r.Topics) == 0 {
			return errors.New("topic mode requires at least one topic")
		}
	case ModeHashtag:
		if strings.TrimSpace(r.Hashtag) == "" {
			return errors.New("hashtag mode requires a non-empty hashtag")
		}
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	return nil
}
