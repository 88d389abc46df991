package ws

import (
	"encoding/json"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgJoinRoom        MessageType = "join_room"
	MsgChat            MessageType = "chat"
	MsgUpdateSettings  MessageType = "update_settings"
	MsgStartGame       MessageType = "start_game"
	MsgSubmitLink      MessageType = "submit_link"
	MsgToggleChallenge MessageType = "toggle_challenge"
	MsgSubmitDefense   MessageType = "submit_defense"
	MsgCastVote        MessageType = "cast_vote"
	MsgMarkReady       MessageType = "mark_ready"
	MsgPlayAgain       MessageType = "play_again"
	MsgNewGame         MessageType = "new_game"
	MsgPing            MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected MessageType = "connected"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server. The payload is
// kept raw until the type is known.
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// ChatPayload is the payload for chat message
type ChatPayload struct {
	Message string `json:"message"`
}

// UpdateSettingsPayload is the payload for update_settings message
type UpdateSettingsPayload struct {
	Level int `json:"level"`
}

// SubmitLinkPayload is the payload for submit_link message
type SubmitLinkPayload struct {
	Words    []string `json:"words"`
	LinkWord string   `json:"linkWord"`
}

// ToggleChallengePayload is the payload for toggle_challenge message
type ToggleChallengePayload struct {
	TargetPlayerID string `json:"targetPlayerId"`
	Index          int    `json:"index"`
}

// SubmitDefensePayload is the payload for submit_defense message
type SubmitDefensePayload struct {
	Index   int    `json:"index"`
	Defense string `json:"defense"`
}

// CastVotePayload is the payload for cast_vote message
type CastVotePayload struct {
	TargetPlayerID string `json:"targetPlayerId"`
	Index          int    `json:"index"`
	Vote           string `json:"vote"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	PlayerID string `json:"playerId"`
	RoomCode string `json:"roomCode"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage   = "INVALID_MESSAGE"
	ErrCodeRoomNotFound     = "ROOM_NOT_FOUND"
	ErrCodeRoomFull         = "ROOM_FULL"
	ErrCodeNotHost          = "NOT_HOST"
	ErrCodeInvalidPhase     = "INVALID_PHASE"
	ErrCodeRoundClosed      = "ROUND_CLOSED"
	ErrCodeValidation       = "VALIDATION_FAILED"
	ErrCodeSelfChallenge    = "CANNOT_CHALLENGE_SELF"
	ErrCodeSelfVote         = "CANNOT_VOTE_SELF"
	ErrCodeChallengesLocked = "CHALLENGES_LOCKED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)
