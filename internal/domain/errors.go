package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomFull          = errors.New("room is full")
	ErrRoundNotFound     = errors.New("round not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNotHost           = errors.New("only host can perform this action")
	ErrInvalidPhase      = errors.New("invalid action for current phase")
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrValidation        = errors.New("invalid submission")
	ErrRoundClosed       = errors.New("round is closed")
	ErrInsufficientPool  = errors.New("word pool too small for requested sample")
	ErrSelfChallenge     = errors.New("cannot challenge your own submission")
	ErrSelfVote          = errors.New("cannot vote on your own submission")
	ErrChallengesLocked  = errors.New("challenges are locked for this round")
	ErrNameTaken         = errors.New("player name already taken")
)
