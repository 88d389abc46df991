package domain

import "linklogic/internal/grid"

// BasePoints returns the base score for a link of the given word count:
// 2 words -> 2, 3 -> 4, 4 -> 8, 5+ -> 16. Under the exactly-two policy
// every link scores the flat baseline instead.
func (r Rules) BasePoints(wordCount int) int {
	if r.Submission == SubmissionExactlyTwo {
		return r.FlatPoints
	}
	switch {
	case wordCount >= 5:
		return 16
	case wordCount == 4:
		return 8
	case wordCount == 3:
		return 4
	case wordCount == 2:
		return 2
	}
	return 0
}

// SimpleBonus returns +1 if any selected index is a bonus tile
func SimpleBonus(selected, bonusIndices []int) int {
	bonus := make(map[int]bool, len(bonusIndices))
	for _, i := range bonusIndices {
		bonus[i] = true
	}
	for _, i := range selected {
		if bonus[i] {
			return 1
		}
	}
	return 0
}

// SubmissionBonus returns the per-submission bonus for the round. Themed
// rounds (2-5 under BonusThemed) carry no per-submission bonus; their bonus
// is cumulative, see RoundBonus.
func (r Rules) SubmissionBonus(roundNum int, selected, bonusIndices []int) int {
	if r.Bonus == BonusSimple || roundNum <= 1 {
		return SimpleBonus(selected, bonusIndices)
	}
	return 0
}

// RoundBonus returns the tiered themed bonus for a player's cumulative
// selections in the round: 2 qualifying words -> tier1, 3 -> tier2,
// 4+ -> tier3. Zero outside themed rounds.
func (r Rules) RoundBonus(roundNum int, cumulative []int) int {
	if r.Bonus != BonusThemed || roundNum <= 1 {
		return 0
	}
	qualifying := grid.Qualifying(roundNum, cumulative)
	return r.TiersFor(roundNum).Points(qualifying)
}
