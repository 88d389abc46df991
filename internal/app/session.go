package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"linklogic/internal/docstore"
	"linklogic/internal/domain"
)

// Ctx identifies the acting player for an engine call. It is passed
// explicitly into every operation instead of being captured by callbacks,
// so authority checks are always made against the caller.
type Ctx struct {
	PlayerID   string
	PlayerName string
}

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	GetPlayerID() string
	Close() error
}

// RoomSession runs one room's game engine over the shared document store.
// Every operation is a read-then-write sequence against the room document;
// per-player writes touch only the caller's own id-keyed sub-paths, while
// phase and round-global writes are host-privileged. The session also
// performs the host-side duties (round generation, the authoritative
// countdown, readiness auto-advance) in reaction to change notifications,
// each guarded to be strictly idempotent.
type RoomSession struct {
	code       string
	store      docstore.Store
	maxPlayers int
	logger     *slog.Logger

	mu sync.Mutex // serializes host-side evaluation and timer state

	clients   map[string]ClientConnection
	clientsMu sync.RWMutex

	// advanced guards auto-advance transitions, keyed "round/phase". It
	// mirrors the document's per-round advanced markers so re-observing the
	// same ready state never double-fires.
	advanced map[string]bool

	// timerRound is the round number the close timer is armed for
	timerRound int
	timer      *time.Timer

	events chan *domain.RoomEvent
	done   chan struct{}

	unsubscribe func()
	closeOnce   sync.Once
}

// NewRoomSession creates a session bound to the room's document subtree and
// subscribes to its changes.
func NewRoomSession(code string, store docstore.Store, maxPlayers int, logger *slog.Logger) *RoomSession {
	s := &RoomSession{
		code:       code,
		store:      store,
		maxPlayers: maxPlayers,
		logger:     logger.With("roomCode", code),
		clients:    make(map[string]ClientConnection),
		advanced:   make(map[string]bool),
		events:     make(chan *domain.RoomEvent, 100),
		done:       make(chan struct{}),
	}

	go s.eventLoop()

	s.unsubscribe = store.Subscribe(roomPath(code), s.onChange)

	return s
}

// Code returns the room code
func (s *RoomSession) Code() string {
	return s.code
}

// Room decodes the current room document
func (s *RoomSession) Room() (*domain.Room, error) {
	var room domain.Room
	if err := docstore.Decode(s.store, roomPath(s.code), &room); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Join seats a player in the waiting room. The entry is the player's own
// sub-path, so rejoining simply rewrites it.
func (s *RoomSession) Join(ctx Ctx) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if room.Status != domain.PhaseWaiting {
		return domain.ErrInvalidPhase
	}
	if _, seated := room.Players[ctx.PlayerID]; !seated && room.PlayerCount() >= s.maxPlayers {
		return domain.ErrRoomFull
	}

	player := domain.NewPlayer(ctx.PlayerName, room.HostID == ctx.PlayerID)
	s.store.Replace(roomPath(s.code)+"/players/"+ctx.PlayerID, player)

	s.queueEvent(domain.NewPlayerEvent(domain.EventPlayerJoined, s.code, ctx.PlayerID, player))
	return nil
}

// SendChat appends a chat message tagged with the sender's name
func (s *RoomSession) SendChat(ctx Ctx, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.ErrValidation
	}
	if _, err := s.Room(); err != nil {
		return err
	}

	msgID := fmt.Sprintf("%d", time.Now().UnixNano())
	s.store.Write(roomPath(s.code)+"/chat", map[string]interface{}{
		msgID: domain.ChatMessage{
			PlayerName: ctx.PlayerName,
			Message:    message,
			Timestamp:  time.Now(),
		},
	})
	return nil
}

// UpdateSettings replaces the room settings. Host-only, waiting phase only.
func (s *RoomSession) UpdateSettings(ctx Ctx, settings domain.Settings) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if !room.IsHost(ctx.PlayerID) {
		return domain.ErrNotHost
	}
	if room.Status != domain.PhaseWaiting {
		return domain.ErrInvalidPhase
	}

	s.store.Write(roomPath(s.code), map[string]interface{}{"settings": settings})
	return nil
}

// StartGame begins the ready/set/go countdown and then opens the first (or
// next) round. Host-only.
func (s *RoomSession) StartGame(ctx Ctx) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if !room.IsHost(ctx.PlayerID) {
		return domain.ErrNotHost
	}
	if room.Status != domain.PhaseWaiting {
		return domain.ErrInvalidPhase
	}

	go s.runStartCountdown(room.CurrentRound)
	return nil
}

// runStartCountdown writes the ready/set/go sequence, then flips the room
// into the playing phase. Word generation follows from the change
// notification, see evaluate.
func (s *RoomSession) runStartCountdown(currentRound int) {
	for _, step := range []string{"ready", "set", "go"} {
		s.store.Write(roomPath(s.code), map[string]interface{}{"countdown": step})
		s.queueEvent(domain.NewEvent(domain.EventCountdown, s.code, step))
		select {
		case <-s.done:
			return
		case <-time.After(time.Second):
		}
	}

	next := currentRound
	if next < 1 {
		next = 1
	}
	s.store.Write(roomPath(s.code), map[string]interface{}{
		"countdown":    nil,
		"status":       string(domain.PhasePlaying),
		"currentRound": next,
	})
}

// Submit accepts one link from a player during the active round. The new
// submission list and total are computed from the caller's own previously
// written list, never from a shared counter.
func (s *RoomSession) Submit(ctx Ctx, selected []string, linkWord string) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if room.Status != domain.PhasePlaying {
		return domain.ErrRoundClosed
	}
	if deadline := room.RoundDeadline(); !deadline.IsZero() && time.Now().After(deadline) {
		return domain.ErrRoundClosed
	}

	indices, err := room.ValidateSubmission(selected, linkWord)
	if err != nil {
		return err
	}

	pr := &domain.PlayerRound{PlayerName: ctx.PlayerName}
	if round := room.ActiveRound(); round != nil && round.Submissions[ctx.PlayerID] != nil {
		pr = round.Submissions[ctx.PlayerID]
		pr.PlayerName = ctx.PlayerName
	}

	points := room.Rules.BasePoints(len(indices)) +
		room.Rules.SubmissionBonus(room.CurrentRound, indices, room.BonusIndices)

	pr.Submissions = append(pr.Submissions, domain.Submission{
		Words:     append([]string{}, selected...),
		LinkWord:  strings.TrimSpace(linkWord),
		Points:    points,
		Timestamp: time.Now(),
	})
	pr.BonusPoints = room.Rules.RoundBonus(room.CurrentRound, pr.SelectedIndices(room.Words))
	pr.RecomputeTotal()

	s.store.Replace(roundPath(s.code, room.CurrentRound)+"/submissions/"+ctx.PlayerID, pr)
	return nil
}

// ToggleChallenge flips the caller's challenge mark on another player's
// submission. Reversible until the challenge phase snapshots the set.
func (s *RoomSession) ToggleChallenge(ctx Ctx, targetID string, index int) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if room.Status != domain.PhaseScoring {
		return domain.ErrInvalidPhase
	}
	if targetID == ctx.PlayerID {
		return domain.ErrSelfChallenge
	}

	round := room.ActiveRound()
	if round == nil {
		return domain.ErrRoundNotFound
	}
	if round.ChallengesLocked() {
		return domain.ErrChallengesLocked
	}
	target := round.Submissions[targetID]
	if target == nil || index < 0 || index >= len(target.Submissions) {
		return domain.ErrValidation
	}

	key := domain.SubmissionKey(targetID, index)
	s.store.Write(roundPath(s.code, room.CurrentRound)+"/challengeMarks/"+ctx.PlayerID,
		map[string]interface{}{key: !round.MarkedBy(ctx.PlayerID, key)})
	return nil
}

// SubmitDefense attaches (or rewrites) the challenged player's free-text
// defense for one of their challenged submissions.
func (s *RoomSession) SubmitDefense(ctx Ctx, index int, defense string) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if room.Status != domain.PhaseChallenge {
		return domain.ErrInvalidPhase
	}

	round := room.ActiveRound()
	if round == nil {
		return domain.ErrRoundNotFound
	}
	if !round.IsChallenged(ctx.PlayerID, index) {
		return domain.ErrValidation
	}

	key := domain.SubmissionKey(ctx.PlayerID, index)
	s.store.Write(roundPath(s.code, room.CurrentRound)+"/defenses",
		map[string]interface{}{key: defense})
	return nil
}

// CastVote records the caller's accept/reject vote on a challenged
// submission. A later vote from the same voter overwrites the earlier one.
func (s *RoomSession) CastVote(ctx Ctx, targetID string, index int, vote string) error {
	if vote != domain.VoteAccept && vote != domain.VoteReject {
		return domain.ErrValidation
	}

	room, err := s.Room()
	if err != nil {
		return err
	}
	if room.Status != domain.PhaseChallenge {
		return domain.ErrInvalidPhase
	}
	if targetID == ctx.PlayerID {
		return domain.ErrSelfVote
	}

	round := room.ActiveRound()
	if round == nil {
		return domain.ErrRoundNotFound
	}
	if !round.IsChallenged(targetID, index) {
		return domain.ErrValidation
	}

	key := domain.SubmissionKey(targetID, index)
	s.store.Write(roundPath(s.code, room.CurrentRound)+"/votes/"+key,
		map[string]interface{}{ctx.PlayerID: vote})
	return nil
}

// MarkReady sets the caller's acknowledgment flag for the current phase.
// The host-side observer advances the room once every player is ready.
func (s *RoomSession) MarkReady(ctx Ctx) error {
	room, err := s.Room()
	if err != nil {
		return err
	}

	var gate string
	switch room.Status {
	case domain.PhaseScoring:
		gate = "playersReady"
	case domain.PhaseChallenge:
		gate = "challengeReady"
	case domain.PhaseLeaderboard:
		gate = "leaderboardReady"
	default:
		return domain.ErrInvalidPhase
	}

	s.store.Write(roundPath(s.code, room.CurrentRound)+"/"+gate,
		map[string]interface{}{ctx.PlayerID: true})
	return nil
}

// Standings projects the current ranked totals from round history
func (s *RoomSession) Standings() ([]domain.Standing, error) {
	room, err := s.Room()
	if err != nil {
		return nil, err
	}
	return domain.ComputeStandings(room), nil
}

// PlayAgain resets scores and round history but keeps settings and players,
// returning the room to the waiting phase. Host-only, finished phase only.
func (s *RoomSession) PlayAgain(ctx Ctx) error {
	room, err := s.Room()
	if err != nil {
		return err
	}
	if !room.IsHost(ctx.PlayerID) {
		return domain.ErrNotHost
	}
	if room.Status != domain.PhaseFinished {
		return domain.ErrInvalidPhase
	}

	fields := map[string]interface{}{
		"status":       string(domain.PhaseWaiting),
		"currentRound": 0,
		"rounds":       nil,
		"words":        nil,
		"bonusIndices": nil,
		"countdown":    nil,
	}
	for playerID := range room.Players {
		fields["players/"+playerID+"/points"] = 0
	}
	s.store.Write(roomPath(s.code), fields)

	s.resetGuards()
	return nil
}

// resetGuards clears the host-side idempotency state after a full reset
func (s *RoomSession) resetGuards() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanced = make(map[string]bool)
	s.timerRound = 0
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// RegisterClient registers a client connection for a player
func (s *RoomSession) RegisterClient(playerID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[playerID] = client
}

// UnregisterClient removes a client connection. The Player entry stays;
// there is no leave protocol and presence is inferred from registration.
func (s *RoomSession) UnregisterClient(playerID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, playerID)
}

// ClientCount returns the number of connected clients
func (s *RoomSession) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// queueEvent adds an event to the broadcast queue
func (s *RoomSession) queueEvent(event *domain.RoomEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop pushes queued events out to clients
func (s *RoomSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to the appropriate clients
func (s *RoomSession) broadcastEvent(event *domain.RoomEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if event.PlayerID != "" {
		if client, ok := s.clients[event.PlayerID]; ok {
			if err := client.Send(event); err != nil {
				s.logger.Debug("failed to send to client", "playerID", event.PlayerID, "error", err)
			}
		}
		return
	}

	for playerID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "playerID", playerID, "error", err)
		}
	}
}

// Close shuts down the session
func (s *RoomSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if s.unsubscribe != nil {
			s.unsubscribe()
		}

		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.mu.Unlock()

		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Close()
		}
		s.clients = make(map[string]ClientConnection)
		s.clientsMu.Unlock()
	})
}
