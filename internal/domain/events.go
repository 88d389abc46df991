package domain

import "time"

// EventType represents the type of room event pushed to clients
type EventType string

const (
	EventRoomState     EventType = "ROOM_STATE" // full document snapshot after a change
	EventPlayerJoined  EventType = "PLAYER_JOINED"
	EventCountdown     EventType = "COUNTDOWN"  // ready/set/go start sequence
	EventRoundOpen     EventType = "ROUND_OPEN" // words and bonus tiles published
	EventRoundClosed   EventType = "ROUND_CLOSED"
	EventChallengeOpen EventType = "CHALLENGE_OPEN"
	EventResults       EventType = "RESULTS" // challenge verdicts recorded
	EventGameOver      EventType = "GAME_OVER"
)

// RoomEvent is one notification delivered to room clients
type RoomEvent struct {
	Type      EventType   `json:"type"`
	RoomCode  string      `json:"roomCode"`
	PlayerID  string      `json:"playerId,omitempty"` // set when player-specific
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a room-wide event
func NewEvent(eventType EventType, roomCode string, payload interface{}) *RoomEvent {
	return &RoomEvent{
		Type:      eventType,
		RoomCode:  roomCode,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewPlayerEvent creates an event delivered to a single player
func NewPlayerEvent(eventType EventType, roomCode, playerID string, payload interface{}) *RoomEvent {
	return &RoomEvent{
		Type:      eventType,
		RoomCode:  roomCode,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// RoomStatePayload is the client-facing snapshot broadcast after every
// document change. Clients drive their own local countdown from the round
// deadline; only the host's countdown ends the round.
type RoomStatePayload struct {
	Status       Phase                  `json:"status"`
	Settings     Settings               `json:"settings"`
	CurrentRound int                    `json:"currentRound"`
	RoundTitle   string                 `json:"roundTitle,omitempty"`
	Players      map[string]*Player     `json:"players,omitempty"`
	Words        []string               `json:"words,omitempty"`
	BonusIndices []int                  `json:"bonusIndices,omitempty"`
	Round        *Round                 `json:"round,omitempty"`
	Deadline     *time.Time             `json:"deadline,omitempty"`
	Standings    []Standing             `json:"standings,omitempty"`
	Countdown    string                 `json:"countdown,omitempty"`
	Chat         map[string]ChatMessage `json:"chat,omitempty"`
}

// Snapshot builds the broadcast payload from a room document
func Snapshot(room *Room) *RoomStatePayload {
	payload := &RoomStatePayload{
		Status:       room.Status,
		Settings:     room.Settings,
		CurrentRound: room.CurrentRound,
		RoundTitle:   RoundTitle(room.CurrentRound),
		Players:      room.Players,
		Words:        room.Words,
		BonusIndices: room.BonusIndices,
		Round:        room.ActiveRound(),
		Countdown:    room.Countdown,
		Chat:         room.Chat,
	}

	if deadline := room.RoundDeadline(); !deadline.IsZero() {
		payload.Deadline = &deadline
	}

	switch room.Status {
	case PhaseScoring, PhaseLeaderboard, PhaseFinished:
		payload.Standings = ComputeStandings(room)
	}

	return payload
}
