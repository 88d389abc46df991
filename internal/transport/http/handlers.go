package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"linklogic/internal/domain"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterRequest is the body for player registration
type RegisterRequest struct {
	RealName   string `json:"realName"`
	PlayerName string `json:"playerName"`
	CellPhone  string `json:"cellPhone"`
	Email      string `json:"email"`
}

// CreateRoomRequest is the body for room creation
type CreateRoomRequest struct {
	PlayerID string `json:"playerId"`
	Level    int    `json:"level"`
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	RoomCode   string          `json:"roomCode"`
	InviteLink string          `json:"inviteLink"`
	InviteText string          `json:"inviteText"`
	Settings   domain.Settings `json:"settings"`
}

// GetRoomResponse is the response for getting room info
type GetRoomResponse struct {
	RoomCode    string `json:"roomCode"`
	HostName    string `json:"hostName"`
	PlayerCount int    `json:"playerCount"`
	Status      string `json:"status"`
	CanJoin     bool   `json:"canJoin"`
	InProgress  bool   `json:"inProgress"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveRooms  int `json:"activeRooms"`
	TotalClients int `json:"totalClients"`
}

// handleRegister handles POST /api/players
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	reg, err := s.registry.Register(r.Context(), req.RealName, req.PlayerName, req.CellPhone, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameTaken):
			s.sendError(w, http.StatusConflict, "NAME_TAKEN", "Player name is already taken")
		case errors.Is(err, domain.ErrValidation):
			s.sendError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		default:
			s.logger.Error("registration failed", "error", err)
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, reg)
}

// handleGetPlayer handles GET /api/players/{playerID}
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	reg, err := s.registry.Get(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerNotFound) {
			s.sendError(w, http.StatusNotFound, "PLAYER_NOT_FOUND", "Player not found")
		} else {
			s.logger.Error("player lookup failed", "error", err)
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return
	}

	s.sendSuccess(w, reg)
}

// handleCreateRoom handles POST /api/rooms
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	reg, err := s.registry.Get(r.Context(), req.PlayerID)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "PLAYER_NOT_FOUND", "Register before creating a room")
		return
	}

	level := req.Level
	if level == 0 {
		level = s.config.Game.DefaultLevel
	}
	settings := domain.GetPreset(level).Settings()

	session, err := s.hub.CreateRoom(reg.PlayerID, reg.PlayerName, settings, domain.DefaultRules())
	if err != nil {
		s.logger.Error("room creation failed", "error", err)
		s.sendError(w, http.StatusInternalServerError, "CREATION_FAILED", "Failed to create room")
		return
	}

	s.sendSuccess(w, &CreateRoomResponse{
		RoomCode:   session.Code(),
		InviteLink: s.inviteLink(session.Code()),
		InviteText: s.inviteText(session.Code()),
		Settings:   settings,
	})
}

// handleGetRoom handles GET /api/rooms/{roomCode}
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	roomCode := chi.URLParam(r, "roomCode")

	session, err := s.hub.GetSession(roomCode)
	if err != nil {
		s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		return
	}

	room, err := session.Room()
	if err != nil {
		s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		return
	}

	s.sendSuccess(w, &GetRoomResponse{
		RoomCode:    session.Code(),
		HostName:    room.HostName,
		PlayerCount: room.PlayerCount(),
		Status:      string(room.Status),
		CanJoin:     room.Status == domain.PhaseWaiting,
		InProgress:  room.Status.IsActiveGame(),
	})
}

// handleInviteQR handles GET /api/rooms/{roomCode}/invite.png
func (s *Server) handleInviteQR(w http.ResponseWriter, r *http.Request) {
	roomCode := chi.URLParam(r, "roomCode")

	if _, err := s.hub.GetSession(roomCode); err != nil {
		s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		return
	}

	png, err := qrcode.Encode(s.inviteLink(roomCode), qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("qr encoding failed", "roomCode", roomCode, "error", err)
		s.sendError(w, http.StatusInternalServerError, "QR_FAILED", "Failed to generate invite code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handlePresets handles GET /api/presets
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, domain.Presets)
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{Status: "ok"})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveRooms:  s.hub.SessionCount(),
		TotalClients: s.hub.ClientCount(),
	})
}

// inviteLink builds the shareable join URL for a room
func (s *Server) inviteLink(roomCode string) string {
	return s.config.Server.PublicURL + "/join/" + roomCode
}

// inviteText composes the invitation message hosts share with friends
func (s *Server) inviteText(roomCode string) string {
	return fmt.Sprintf("You're invited to play Link Logic!\n\nRoom Number: %s\n\nClick to Join: %s",
		roomCode, s.inviteLink(roomCode))
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
