package quiz

// ComputeScore counts exact matches between the submitted answers and
// the correct option of each question in the selection. A question
// without a submitted answer counts as incorrect, never as an error.
// Answers for ids outside the selection are ignored.
func ComputeScore(selection Selection, answers map[int]string) int {
	score := 0
	for id, q := range selection {
		answer, ok := answers[id]
		if !ok {
			// no answer for this question
			continue
		}
		if answer == q.Correct {
			score++
		}
	}
	return score
}
