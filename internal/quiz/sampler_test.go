package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBank(n int) Bank {
	bank := make(Bank, n)
	for i := 1; i <= n; i++ {
		bank[i] = Question{
			ID:      i,
			Prompt:  fmt.Sprintf("question %d", i),
			Options: []string{"a", "b", "c", "d"},
			Correct: "a",
		}
	}
	return bank
}

func TestSample(t *testing.T) {
	t.Run("draws exactly k distinct questions from a larger bank", func(t *testing.T) {
		bank := makeBank(300)

		selection := Sample(bank, 30)

		require.Len(t, selection, 30)
		for id, q := range selection {
			source, ok := bank[id]
			require.True(t, ok, "sampled id %d not present in bank", id)
			assert.Equal(t, source.Prompt, q.Prompt)
			assert.Equal(t, source.Options, q.Options)
			assert.Equal(t, source.Correct, q.Correct)
		}
	})

	t.Run("returns the whole bank when it is smaller than k", func(t *testing.T) {
		bank := makeBank(7)

		selection := Sample(bank, 30)

		assert.Len(t, selection, 7)
		for id := range bank {
			assert.Contains(t, selection, id)
		}
	})

	t.Run("does not mutate the bank", func(t *testing.T) {
		bank := makeBank(50)

		Sample(bank, 30)

		require.Len(t, bank, 50)
		for i := 1; i <= 50; i++ {
			assert.Equal(t, i, bank[i].ID)
		}
	})

	t.Run("consecutive draws are independent", func(t *testing.T) {
		bank := makeBank(300)

		first := Sample(bank, 30)
		second := Sample(bank, 30)

		require.Len(t, first, 30)
		require.Len(t, second, 30)
		// Two identical 30-subsets of 300 are vanishingly unlikely.
		assert.NotEqual(t, first, second)
	})

	t.Run("zero and negative k yield an empty selection", func(t *testing.T) {
		bank := makeBank(10)

		assert.Empty(t, Sample(bank, 0))
		assert.Empty(t, Sample(bank, -5))
	})
}
