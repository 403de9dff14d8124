package quizgen

// repairExplanation rebuilds the incorrect-explanation mapping from
// scratch. Providers occasionally key an entry by the correct label,
// key one by a label that is not an option, or omit a label entirely.
// The rebuilt map contains exactly one entry per option label other
// than the answer, carrying over the provider text where it exists.
func repairExplanation(q *Question) {
	repaired := make(map[Label]string, len(q.Options))
	for label := range q.Options {
		if label == q.Answer {
			continue
		}
		repaired[label] = q.Explanation.Incorrect[label]
	}
	q.Explanation.Incorrect = repaired
}
