package domain

// SubmissionPolicy selects which submission-size rule a room plays with.
// The product shipped both at different times; the engine treats it as
// configuration rather than hard-coding either.
type SubmissionPolicy string

const (
	// SubmissionMinTwo accepts any link of two or more distinct grid words,
	// scored by the 2/4/8/16 base table. This is the default.
	SubmissionMinTwo SubmissionPolicy = "min_two"

	// SubmissionExactlyTwo caps links at exactly two words and scores each
	// accepted link a flat baseline, for the defended two-word format.
	SubmissionExactlyTwo SubmissionPolicy = "exactly_two"
)

// VerdictPolicy selects how challenge votes resolve
type VerdictPolicy string

const (
	// VerdictMajority accepts a challenged submission iff at least one vote
	// was cast and accepts make up half or more of the total. Default.
	VerdictMajority VerdictPolicy = "majority"

	// VerdictForceAcceptTwoPlayers behaves like VerdictMajority except that
	// with exactly two players in the room every challenged submission is
	// accepted, since the only eligible voter is the challenger.
	VerdictForceAcceptTwoPlayers VerdictPolicy = "force_accept_two_players"
)

// BonusPolicy selects how bonus points are granted
type BonusPolicy string

const (
	// BonusThemed applies the simple +1 bonus-tile rule in round 1 and the
	// tiered corner/touch/edge/line bonuses in rounds 2-5, computed over the
	// player's cumulative selections for the round. Default.
	BonusThemed BonusPolicy = "themed"

	// BonusSimple applies the +1 bonus-tile rule in every round.
	BonusSimple BonusPolicy = "simple"
)

// BonusTiers are the point values granted for 2, 3 and 4+ qualifying words
// in a themed round.
type BonusTiers struct {
	Tier1 int `json:"tier1"`
	Tier2 int `json:"tier2"`
	Tier3 int `json:"tier3"`
}

// DefaultBonusTiers returns the standard tier values
func DefaultBonusTiers() BonusTiers {
	return BonusTiers{Tier1: 10, Tier2: 20, Tier3: 30}
}

// Points returns the bonus for the given qualifying-word count
func (t BonusTiers) Points(qualifying int) int {
	switch {
	case qualifying >= 4:
		return t.Tier3
	case qualifying == 3:
		return t.Tier2
	case qualifying == 2:
		return t.Tier1
	}
	return 0
}

// Rules bundles the per-room policy knobs with their tier values
type Rules struct {
	Submission SubmissionPolicy   `json:"submission"`
	Verdict    VerdictPolicy      `json:"verdict"`
	Bonus      BonusPolicy        `json:"bonus"`
	Tiers      map[int]BonusTiers `json:"tiers,omitempty"` // per-round overrides
	FlatPoints int                `json:"flatPoints"`      // baseline under SubmissionExactlyTwo
}

// DefaultRules returns the default policy set
func DefaultRules() Rules {
	return Rules{
		Submission: SubmissionMinTwo,
		Verdict:    VerdictMajority,
		Bonus:      BonusThemed,
		FlatPoints: 10,
	}
}

// TiersFor returns the bonus tiers for a round, falling back to the defaults
func (r Rules) TiersFor(round int) BonusTiers {
	if t, ok := r.Tiers[round]; ok {
		return t
	}
	return DefaultBonusTiers()
}
