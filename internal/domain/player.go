package domain

import "time"

// Player is one identity inside a room. Entries are created when a player
// enters the waiting phase and live until the room is torn down.
type Player struct {
	PlayerName string    `json:"playerName"`
	Points     int       `json:"points"` // mirrored from the standings after each round
	IsHost     bool      `json:"isHost"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// NewPlayer creates a player entry with the given display name
func NewPlayer(name string, isHost bool) *Player {
	return &Player{
		PlayerName: name,
		Points:     0,
		IsHost:     isHost,
		JoinedAt:   time.Now(),
	}
}

// Registration is the global player-registration record, independent of any
// room. PlayerName is unique case-insensitively across the system.
type Registration struct {
	PlayerID   string    `json:"playerId"`
	RealName   string    `json:"realName"`
	PlayerName string    `json:"playerName"`
	CellPhone  string    `json:"cellPhone"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
