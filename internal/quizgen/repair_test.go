package quizgen

import "testing"

func repairTestQuestion() Question {
	return Question{
		ID:     "BIO-1",
		Prompt: "¿Qué mide la desviación estándar?",
		Options: map[Label]string{
			LabelA: "La dispersión de los datos",
			LabelB: "El valor central",
			LabelC: "La asimetría",
			LabelD: "El tamaño muestral",
		},
		Answer: LabelA,
		Explanation: Explanation{
			Correct: "La desviación estándar cuantifica la dispersión alrededor de la media.",
			Incorrect: map[Label]string{
				LabelB: "Eso corresponde a la media o la mediana.",
				LabelC: "La asimetría se mide con otros estadísticos.",
				LabelD: "El tamaño muestral es n, no una medida de dispersión.",
			},
		},
		Topic: "Medidas de tendencia central y dispersión",
		Kind:  KindConceptual,
	}
}

func assertRepaired(t *testing.T, q Question) {
	t.Helper()
	if _, ok := q.Explanation.Incorrect[q.Answer]; ok {
		t.Errorf("repaired map contains the correct label %s", q.Answer)
	}
	for label := range q.Options {
		if label == q.Answer {
			continue
		}
		if _, ok := q.Explanation.Incorrect[label]; !ok {
			t.Errorf("repaired map missing entry for label %s", label)
		}
	}
	if len(q.Explanation.Incorrect) != len(q.Options)-1 {
		t.Errorf("repaired map has %d entries, want %d", len(q.Explanation.Incorrect), len(q.Options)-1)
	}
}

func TestRepair_WellFormedUnchanged(t *testing.T) {
	q := repairTestQuestion()
	repairExplanation(&q)
	assertRepaired(t, q)
	if q.Explanation.Incorrect[LabelB] != "Eso corresponde a la media o la mediana." {
		t.Errorf("provider text was not carried over: %q", q.Explanation.Incorrect[LabelB])
	}
}

func TestRepair_DropsEntryForCorrectLabel(t *testing.T) {
	q := repairTestQuestion()
	q.Explanation.Incorrect[LabelA] = "Texto espurio para la respuesta correcta."
	repairExplanation(&q)
	assertRepaired(t, q)
}

func TestRepair_FillsMissingEntry(t *testing.T) {
	q := repairTestQuestion()
	delete(q.Explanation.Incorrect, LabelC)
	repairExplanation(&q)
	assertRepaired(t, q)
	if q.Explanation.Incorrect[LabelC] != "" {
		t.Errorf("missing entry should be filled with empty text, got %q", q.Explanation.Incorrect[LabelC])
	}
}

func TestRepair_DropsUnknownLabel(t *testing.T) {
	q := repairTestQuestion()
	q.Explanation.Incorrect[Label("E")] = "Etiqueta que no existe en las opciones."
	repairExplanation(&q)
	assertRepaired(t, q)
	if _, ok := q.Explanation.Incorrect[Label("E")]; ok {
		t.Error("repaired map retains a label absent from options")
	}
}

func TestRepair_NilIncorrectMap(t *testing.T) {
	q := repairTestQuestion()
	q.Explanation.Incorrect = nil
	repairExplanation(&q)
	assertRepaired(t, q)
}
