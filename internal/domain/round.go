package domain

import (
	"fmt"
	"sort"
	"time"
)

// Vote values cast on a challenged submission
const (
	VoteAccept = "accept"
	VoteReject = "reject"
)

// Verdict values recorded for a challenged submission
const (
	VerdictAccepted = "accepted"
	VerdictRejected = "rejected"
)

// Round is one numbered play cycle. It is created implicitly when the first
// write for that round number lands, and is never mutated after its results
// are finalized.
type Round struct {
	StartedAt time.Time `json:"startedAt,omitempty"`

	// Submissions keyed by player ID; each player writes only their own entry.
	Submissions map[string]*PlayerRound `json:"submissions,omitempty"`

	// ChallengeMarks are the reversible scoring-phase flags, keyed by the
	// challenger's ID so each player owns their own sub-path. The host folds
	// them into Challenges when the challenge phase opens.
	ChallengeMarks map[string]map[string]bool `json:"challengeMarks,omitempty"`

	// Challenges is the snapshotted challenge set: challenged player ID to
	// the indices of their flagged submissions. Host-written, then frozen.
	Challenges map[string][]int `json:"challenges,omitempty"`

	// Defenses keyed by "playerId-index", written by the challenged player.
	Defenses map[string]string `json:"defenses,omitempty"`

	// Votes keyed by "playerId-index" then voter ID. A voter's later vote
	// overwrites their earlier one.
	Votes map[string]map[string]string `json:"votes,omitempty"`

	// Results keyed by "playerId-index": "accepted" or "rejected".
	Results map[string]string `json:"results,omitempty"`

	// Per-phase acknowledgment gates, keyed by player ID.
	PlayersReady     map[string]bool `json:"playersReady,omitempty"`
	ChallengeReady   map[string]bool `json:"challengeReady,omitempty"`
	LeaderboardReady map[string]bool `json:"leaderboardReady,omitempty"`

	// Advanced records which phase transitions have already fired for this
	// round, keyed by the phase being left. Host-written, checked before any
	// auto-advance so re-observing the same ready state is a no-op.
	Advanced map[string]bool `json:"advanced,omitempty"`
}

// RoundKey is the document key for a round number, e.g. "round3"
func RoundKey(n int) string {
	return fmt.Sprintf("round%d", n)
}

// IsChallenged reports whether the given submission is in the snapshotted
// challenge set.
func (r *Round) IsChallenged(playerID string, index int) bool {
	for _, idx := range r.Challenges[playerID] {
		if idx == index {
			return true
		}
	}
	return false
}

// ChallengesLocked reports whether the challenge set has been snapshotted,
// after which scoring-phase marks are frozen.
func (r *Round) ChallengesLocked() bool {
	return len(r.Challenges) > 0 || len(r.Results) > 0
}

// MarkedBy reports whether a challenger currently has a mark on the given
// submission.
func (r *Round) MarkedBy(challengerID, key string) bool {
	return r.ChallengeMarks[challengerID][key]
}

// SnapshotChallenges folds every player's challenge marks into the frozen
// challenge set. Marks on the challenger's own submissions are ignored.
func (r *Round) SnapshotChallenges() map[string][]int {
	merged := make(map[string]map[int]bool)
	for challengerID, marks := range r.ChallengeMarks {
		for key, on := range marks {
			if !on {
				continue
			}
			targetID, idx, ok := ParseSubmissionKey(key)
			if !ok || targetID == challengerID {
				continue
			}
			if merged[targetID] == nil {
				merged[targetID] = make(map[int]bool)
			}
			merged[targetID][idx] = true
		}
	}

	challenges := make(map[string][]int, len(merged))
	for targetID, set := range merged {
		indices := make([]int, 0, len(set))
		for idx := range set {
			indices = append(indices, idx)
		}
		sort.Ints(indices)
		challenges[targetID] = indices
	}
	return challenges
}

// AllReady reports whether every listed player has acknowledged in the given
// gate. An empty player list never counts as ready.
func AllReady(gate map[string]bool, playerIDs []string) bool {
	if len(playerIDs) == 0 {
		return false
	}
	for _, id := range playerIDs {
		if !gate[id] {
			return false
		}
	}
	return true
}
