package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Submission is one link a player made within a round. Immutable once
// written; a later rejected verdict subtracts its points at standings time
// instead of rewriting the record.
type Submission struct {
	Words     []string  `json:"words"`
	LinkWord  string    `json:"linkWord"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

// PlayerRound holds one player's submissions for a round. TotalPoints is
// recomputed by the owning player from its own list on every submission,
// never from a shared counter.
type PlayerRound struct {
	PlayerName  string       `json:"playerName"`
	Submissions []Submission `json:"submissions"`
	BonusPoints int          `json:"bonusPoints"` // themed round bonus, cumulative
	TotalPoints int          `json:"totalPoints"`
}

// RecomputeTotal sums submission points plus the round bonus
func (pr *PlayerRound) RecomputeTotal() {
	total := pr.BonusPoints
	for _, s := range pr.Submissions {
		total += s.Points
	}
	pr.TotalPoints = total
}

// SelectedIndices returns the grid indices of every word this player has
// submitted so far in the round, deduplicated.
func (pr *PlayerRound) SelectedIndices(grid []string) []int {
	seen := make(map[int]bool)
	var indices []int
	for _, s := range pr.Submissions {
		for _, w := range s.Words {
			for i, g := range grid {
				if g == w && !seen[i] {
					seen[i] = true
					indices = append(indices, i)
				}
			}
		}
	}
	return indices
}

// SubmissionKey builds the "playerId-index" key used for challenges,
// defenses, votes and results.
func SubmissionKey(playerID string, index int) string {
	return fmt.Sprintf("%s-%d", playerID, index)
}

// ParseSubmissionKey splits a "playerId-index" key. Player IDs may contain
// dashes, so the split happens at the last one.
func ParseSubmissionKey(key string) (playerID string, index int, ok bool) {
	i := strings.LastIndex(key, "-")
	if i <= 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(key[i+1:])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return key[:i], idx, true
}
