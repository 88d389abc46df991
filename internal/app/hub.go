package app

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"linklogic/internal/docstore"
	"linklogic/internal/domain"
)

const (
	// defaultStaleRoomTimeout is how long before a room with no connected
	// clients is torn down.
	defaultStaleRoomTimeout = 2 * time.Hour

	defaultMaxPlayers = 12
)

// Options tune hub behavior. The zero value picks sensible defaults.
type Options struct {
	StaleRoomTimeout time.Duration
	MaxPlayers       int
}

func (o Options) withDefaults() Options {
	if o.StaleRoomTimeout <= 0 {
		o.StaleRoomTimeout = defaultStaleRoomTimeout
	}
	if o.MaxPlayers <= 0 {
		o.MaxPlayers = defaultMaxPlayers
	}
	return o
}

// Hub manages all active room sessions over one shared document store
type Hub struct {
	store    docstore.Store
	sessions map[string]*RoomSession
	mu       sync.RWMutex
	opts     Options
	logger   *slog.Logger
	done     chan struct{}
}

// NewHub creates a hub over the given store
func NewHub(store docstore.Store, opts Options, logger *slog.Logger) *Hub {
	hub := &Hub{
		store:    store,
		sessions: make(map[string]*RoomSession),
		opts:     opts.withDefaults(),
		logger:   logger,
		done:     make(chan struct{}),
	}

	go hub.cleanupLoop()

	return hub
}

// CreateRoom creates a room document with the host seated and returns its
// session. Room codes are human-shareable 6-digit strings.
func (h *Hub) CreateRoom(hostID, hostName string, settings domain.Settings, rules domain.Rules) (*RoomSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var code string
	for attempts := 0; attempts < 10; attempts++ {
		code = generateRoomCode()
		_, taken := h.store.Read(roomPath(code))
		if _, live := h.sessions[code]; !live && !taken {
			break
		}
		code = ""
	}
	if code == "" {
		return nil, fmt.Errorf("failed to generate unique room code")
	}

	room := domain.NewRoom(hostID, hostName, settings, rules)
	h.store.Replace(roomPath(code), room)

	session := NewRoomSession(code, h.store, h.opts.MaxPlayers, h.logger)
	h.sessions[code] = session

	h.logger.Info("room created", "roomCode", code, "host", hostName)

	return session, nil
}

// GetSession returns the session for a room code
func (h *Hub) GetSession(code string) (*RoomSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return session, nil
}

// DeleteRoom tears down a room: document and session both go
func (h *Hub) DeleteRoom(code string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deleteRoomLocked(code)
}

// NewGame is the host's post-game teardown: the finished room is deleted and
// everyone returns to the lobby. PlayAgain is the alternative that keeps the
// room alive.
func (h *Hub) NewGame(code string, ctx Ctx) error {
	session, err := h.GetSession(code)
	if err != nil {
		return err
	}
	room, err := session.Room()
	if err != nil {
		return err
	}
	if !room.IsHost(ctx.PlayerID) {
		return domain.ErrNotHost
	}
	if room.Status != domain.PhaseFinished {
		return domain.ErrInvalidPhase
	}

	h.DeleteRoom(code)
	return nil
}

func (h *Hub) deleteRoomLocked(code string) {
	if session, ok := h.sessions[code]; ok {
		session.Close()
		delete(h.sessions, code)
	}
	h.store.Delete(roomPath(code))
	h.logger.Info("room deleted", "roomCode", code)
}

// SessionCount returns the number of active rooms
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// ClientCount returns the number of connected clients across all rooms
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.ClientCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *Hub) Close() {
	close(h.done)

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*RoomSession)
}

// cleanupLoop periodically reaps abandoned rooms
func (h *Hub) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.cleanupStaleRooms()
		}
	}
}

func (h *Hub) cleanupStaleRooms() {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	var stale []string

	for code, session := range h.sessions {
		if session.ClientCount() > 0 {
			continue
		}
		room, err := session.Room()
		if err != nil || now.Sub(room.CreatedAt) > h.opts.StaleRoomTimeout {
			stale = append(stale, code)
		}
	}

	for _, code := range stale {
		h.deleteRoomLocked(code)
		h.logger.Info("stale room cleaned up", "roomCode", code)
	}
}

// generateRoomCode returns a random 6-digit room code
func generateRoomCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// roomPath is the document path of a room's subtree
func roomPath(code string) string {
	return "rooms/" + code
}

// roundPath is the document path of one round inside a room
func roundPath(code string, round int) string {
	return roomPath(code) + "/rounds/" + domain.RoundKey(round)
}
