package quiz

import "math/rand/v2"

// Selection is the subset issued to one session for one attempt. It is
// never persisted; only the resulting score survives the request that
// consumes it.
type Selection map[int]Question

// Sample draws k distinct questions uniformly from the bank. A bank
// smaller than k yields the whole bank. Every call shuffles
// independently and leaves the bank untouched.
func Sample(bank Bank, k int) Selection {
	ids := make([]int, 0, len(bank))
	for id := range bank {
		ids = append(ids, id)
	}

	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	if k < 0 {
		k = 0
	}
	if k > len(ids) {
		k = len(ids)
	}

	selection := make(Selection, k)
	for _, id := range ids[:k] {
		selection[id] = bank[id]
	}

	return selection
}
