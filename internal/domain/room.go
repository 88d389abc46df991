package domain

import (
	"sort"
	"strings"
	"time"
)

// ChatMessage is one waiting-room chat entry, tagged with the sender's name
type ChatMessage struct {
	PlayerName string    `json:"playerName"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// Room is the root aggregate for one game session, keyed in the document
// store by its 6-digit room code. Phase/round-global fields are host-written;
// players write only their own id-keyed sub-paths.
type Room struct {
	HostID       string                 `json:"hostId"`
	HostName     string                 `json:"hostName"`
	Status       Phase                  `json:"status"`
	Settings     Settings               `json:"settings"`
	Rules        Rules                  `json:"rules"`
	CurrentRound int                    `json:"currentRound"`
	Players      map[string]*Player     `json:"players,omitempty"`
	Words        []string               `json:"words,omitempty"`
	BonusIndices []int                  `json:"bonusIndices,omitempty"`
	Rounds       map[string]*Round      `json:"rounds,omitempty"`
	Chat         map[string]ChatMessage `json:"chat,omitempty"`
	Countdown    string                 `json:"countdown,omitempty"` // "ready"/"set"/"go" start sequence
	CreatedAt    time.Time              `json:"createdAt"`
}

// NewRoom creates a room in the waiting phase with the host already seated
func NewRoom(hostID, hostName string, settings Settings, rules Rules) *Room {
	return &Room{
		HostID:   hostID,
		HostName: hostName,
		Status:   PhaseWaiting,
		Settings: settings,
		Rules:    rules,
		Players: map[string]*Player{
			hostID: NewPlayer(hostName, true),
		},
		CurrentRound: 0,
		CreatedAt:    time.Now(),
	}
}

// IsHost checks whether the given player is the host
func (rm *Room) IsHost(playerID string) bool {
	return rm.HostID == playerID
}

// PlayerCount returns the number of seated players
func (rm *Room) PlayerCount() int {
	return len(rm.Players)
}

// PlayerIDs returns all seated player IDs, sorted for determinism
func (rm *Room) PlayerIDs() []string {
	ids := make([]string, 0, len(rm.Players))
	for id := range rm.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Round returns the round record for the given number, or nil
func (rm *Room) Round(n int) *Round {
	if rm.Rounds == nil {
		return nil
	}
	return rm.Rounds[RoundKey(n)]
}

// ActiveRound returns the record for the current round, or nil
func (rm *Room) ActiveRound() *Round {
	return rm.Round(rm.CurrentRound)
}

// SubmitterIDs returns the IDs of players who submitted in the given round
func (rm *Room) SubmitterIDs(n int) []string {
	round := rm.Round(n)
	if round == nil {
		return nil
	}
	ids := make([]string, 0, len(round.Submissions))
	for id := range round.Submissions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoundDeadline returns when the current round's timer expires. The zero
// time means the round has no recorded start.
func (rm *Room) RoundDeadline() time.Time {
	round := rm.ActiveRound()
	if round == nil || round.StartedAt.IsZero() {
		return time.Time{}
	}
	return round.StartedAt.Add(time.Duration(rm.Settings.Timer) * time.Second)
}

// ValidateSubmission checks a link against the active grid and the room's
// submission policy. It returns the grid indices of the selected words;
// the error is ErrValidation for any malformed input.
func (rm *Room) ValidateSubmission(words []string, linkWord string) ([]int, error) {
	if strings.TrimSpace(linkWord) == "" {
		return nil, ErrValidation
	}
	if len(words) < 2 {
		return nil, ErrValidation
	}
	if rm.Rules.Submission == SubmissionExactlyTwo && len(words) != 2 {
		return nil, ErrValidation
	}

	indices := make([]int, 0, len(words))
	seen := make(map[int]bool)
	for _, w := range words {
		idx := -1
		for i, g := range rm.Words {
			if g == w {
				idx = i
				break
			}
		}
		if idx < 0 || seen[idx] {
			return nil, ErrValidation
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices, nil
}

// RoundTitle names the themed bonus for a round, empty for round 1
func RoundTitle(n int) string {
	switch n {
	case 2:
		return "Corner Bonus"
	case 3:
		return "Touch Bonus"
	case 4:
		return "Edge Bonus"
	case 5:
		return "Line Bonus"
	}
	return ""
}
