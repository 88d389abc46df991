package domain

// Phase represents the current phase of a room
type Phase string

const (
	PhaseWaiting     Phase = "waiting"     // Players gathering, chat open
	PhasePlaying     Phase = "playing"     // Round active, timer running
	PhaseScoring     Phase = "scoring"     // Reviewing submissions, flagging challenges
	PhaseChallenge   Phase = "challenge"   // Defending and voting on challenges
	PhaseLeaderboard Phase = "leaderboard" // Standings between rounds
	PhaseFinished    Phase = "finished"    // Game over, winner shown
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid.
// The playing -> leaderboard edge covers the two-player shortcut, and
// finished -> waiting covers "play again".
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseWaiting:     {PhasePlaying},
		PhasePlaying:     {PhaseScoring, PhaseLeaderboard},
		PhaseScoring:     {PhaseChallenge, PhaseLeaderboard},
		PhaseChallenge:   {PhaseLeaderboard},
		PhaseLeaderboard: {PhaseWaiting, PhaseFinished},
		PhaseFinished:    {PhaseWaiting},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}

// IsActiveGame reports whether the phase belongs to an in-progress game,
// i.e. the current round number must be within [1, settings.rounds].
func (p Phase) IsActiveGame() bool {
	switch p {
	case PhasePlaying, PhaseScoring, PhaseChallenge, PhaseLeaderboard:
		return true
	}
	return false
}
