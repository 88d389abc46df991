// Package words holds the categorized word pools and the sampling used to
// build each round's grid.
package words

import (
	"math/rand"

	"linklogic/internal/domain"
)

// Pool returns the word pool for a difficulty level: 1-3 easy, 4-6 medium,
// 7-9 hard. Out-of-range levels fall back to medium.
func Pool(level int) []string {
	switch {
	case level >= 1 && level <= 3:
		return easyWords
	case level >= 4 && level <= 6:
		return mediumWords
	case level >= 7 && level <= 9:
		return hardWords
	}
	return mediumWords
}

// Sample returns count distinct words from the level's pool in shuffled
// order. Asking for more words than the pool holds is an error.
func Sample(count, level int) ([]string, error) {
	pool := Pool(level)
	if count > len(pool) {
		return nil, domain.ErrInsufficientPool
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:count], nil
}

// SampleBonusIndices draws min(bonusCount, totalWords) distinct indices in
// [0, totalWords) uniformly without replacement.
func SampleBonusIndices(totalWords, bonusCount int) []int {
	if totalWords <= 0 || bonusCount <= 0 {
		return []int{}
	}
	if bonusCount > totalWords {
		bonusCount = totalWords
	}
	return rand.Perm(totalWords)[:bonusCount]
}
