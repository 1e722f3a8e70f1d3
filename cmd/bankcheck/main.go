package main

import (
	"flag"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/frageverk/internal/quiz"
)

// bankcheck validates a question bank file without starting the server:
// parse errors, duplicate ids, wrong option counts and correct-answer
// mismatches all fail the run.
func main() {
	var bankPath = flag.String("bank", "questions.toml", "Path to question bank file")
	flag.Parse()

	bank, err := quiz.LoadBank(*bankPath)
	if err != nil {
		logger.Error.Fatalf("Bank check failed: %v", err)
	}

	prompts := make(map[string]int)
	for _, q := range bank {
		prompts[q.Prompt]++
	}

	repeated := 0
	for prompt, count := range prompts {
		if count > 1 {
			repeated++
			logger.Debug.Printf("Prompt appears %d times: %q", count, prompt)
		}
	}

	logger.Info.Printf("Bank OK: %d questions, %d distinct prompts", len(bank), len(prompts))
	if repeated > 0 {
		logger.Info.Printf("Note: %d prompts repeat (run with debug logging for the list)", repeated)
	}
}
