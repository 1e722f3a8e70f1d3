package quiz

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Question is one entry of the static bank. Options keeps its source
// order; Correct must be one of Options.
type Question struct {
	ID      int      `toml:"id" json:"id" validate:"required,gt=0"`
	Prompt  string   `toml:"prompt" json:"prompt" validate:"required"`
	Options []string `toml:"options" json:"options" validate:"required,len=4"`
	Correct string   `toml:"correct" json:"correct" validate:"required"`
}

func (q *Question) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return err
	}
	for _, opt := range q.Options {
		if opt == q.Correct {
			return nil
		}
	}
	return fmt.Errorf("question %d: correct answer %q is not among its options", q.ID, q.Correct)
}

// Bank is the process-wide question set. Built once at startup, shared
// by reference across all requests, never mutated afterwards.
type Bank map[int]Question

type bankFile struct {
	Questions []Question `toml:"questions"`
}

// LoadBank reads and validates a TOML bank file.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading bank file: %w", err)
	}

	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("error in bank file %s: %w", path, err)
	}

	return bank, nil
}

func ParseBank(data []byte) (Bank, error) {
	var file bankFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bank: %w", err)
	}

	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("bank contains no questions")
	}

	bank := make(Bank, len(file.Questions))
	for _, q := range file.Questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if _, dup := bank[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %d", q.ID)
		}
		bank[q.ID] = q
	}

	return bank, nil
}
