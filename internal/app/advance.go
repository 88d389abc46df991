package app

import (
	"time"

	"linklogic/internal/domain"
	"linklogic/internal/words"
)

// onChange fires after every write under the room's subtree. It rebroadcasts
// the room snapshot to connected clients and then runs the host-side duties
// for the phase the room is in. All duties are idempotent: notifications are
// at-least-once and every transition is marker-guarded.
func (s *RoomSession) onChange(value interface{}) {
	if value == nil {
		return
	}

	room, err := s.Room()
	if err != nil {
		return
	}

	s.queueEvent(domain.NewEvent(domain.EventRoomState, s.code, domain.Snapshot(room)))

	s.evaluate(room)
}

// evaluate performs the host-side work owed in the room's current phase
func (s *RoomSession) evaluate(room *domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch room.Status {
	case domain.PhasePlaying:
		s.maybeOpenRound(room)
		s.armTimer(room)

	case domain.PhaseScoring:
		round := room.ActiveRound()
		if round == nil {
			return
		}
		// A round nobody submitted to has no ready gate to fill; move on.
		submitters := room.SubmitterIDs(room.CurrentRound)
		if len(submitters) == 0 || domain.AllReady(round.PlayersReady, submitters) {
			s.advanceOnce(room, round, domain.PhaseScoring, s.openChallenge)
		}

	case domain.PhaseChallenge:
		round := room.ActiveRound()
		if round == nil {
			return
		}
		submitters := room.SubmitterIDs(room.CurrentRound)
		if len(submitters) == 0 || domain.AllReady(round.ChallengeReady, submitters) {
			s.advanceOnce(room, round, domain.PhaseChallenge, s.resolveChallenge)
		}

	case domain.PhaseLeaderboard:
		round := room.ActiveRound()
		if round == nil {
			return
		}
		if domain.AllReady(round.LeaderboardReady, room.PlayerIDs()) {
			s.advanceOnce(room, round, domain.PhaseLeaderboard, s.advanceRound)
		}
	}
}

// advanceOnce runs transition exactly once per round and leaving-phase. The
// in-memory guard stops re-entry before the notification echoes back; the
// document marker survives a session restart. Both land only after the
// transition took, so a refused transition stays retryable.
func (s *RoomSession) advanceOnce(room *domain.Room, round *domain.Round, leaving domain.Phase, transition func(room *domain.Room) bool) {
	key := domain.RoundKey(room.CurrentRound) + "/" + string(leaving)
	if s.advanced[key] || round.Advanced[string(leaving)] {
		return
	}

	if !transition(room) {
		return
	}
	s.advanced[key] = true

	s.store.Write(roundPath(s.code, room.CurrentRound)+"/advanced",
		map[string]interface{}{string(leaving): true})
}

// setStatus writes the room's phase after checking the transition table
func (s *RoomSession) setStatus(room *domain.Room, next domain.Phase) bool {
	if !room.Status.CanTransitionTo(next) {
		s.logger.Warn("refusing phase transition",
			"from", room.Status, "to", next, "error", domain.ErrInvalidTransition)
		return false
	}
	s.store.Write(roomPath(s.code), map[string]interface{}{"status": string(next)})
	room.Status = next
	return true
}

// maybeOpenRound generates the word grid and stamps the round start on
// entering the playing phase. The presence of words doubles as the guard.
func (s *RoomSession) maybeOpenRound(room *domain.Room) {
	if room.CurrentRound < 1 || len(room.Words) > 0 {
		return
	}

	key := domain.RoundKey(room.CurrentRound) + "/open"
	if s.advanced[key] {
		return
	}
	s.advanced[key] = true

	grid, err := words.Sample(room.Settings.Words, room.Settings.Level)
	if err != nil {
		s.logger.Error("word generation failed", "round", room.CurrentRound, "error", err)
		return
	}

	fields := map[string]interface{}{
		"words":        grid,
		"bonusIndices": words.SampleBonusIndices(len(grid), room.Settings.BonusWords),
		"rounds/" + domain.RoundKey(room.CurrentRound) + "/startedAt": time.Now(),
	}
	s.store.Write(roomPath(s.code), fields)

	s.queueEvent(domain.NewEvent(domain.EventRoundOpen, s.code, map[string]interface{}{
		"round": room.CurrentRound,
		"words": grid,
	}))
	s.logger.Info("round opened", "round", room.CurrentRound, "words", len(grid))
}

// armTimer schedules the round close at the deadline. Re-arming for the
// same round is a no-op.
func (s *RoomSession) armTimer(room *domain.Room) {
	deadline := room.RoundDeadline()
	if deadline.IsZero() || s.timerRound == room.CurrentRound {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerRound = room.CurrentRound

	round := room.CurrentRound
	s.timer = time.AfterFunc(time.Until(deadline), func() {
		s.closeRound(round)
	})
}

// closeRound ends the submission window when the timer expires. With only
// two players the scoring and challenge phases are skipped.
func (s *RoomSession) closeRound(roundNum int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.Room()
	if err != nil {
		return
	}
	if room.Status != domain.PhasePlaying || room.CurrentRound != roundNum {
		return
	}

	key := domain.RoundKey(roundNum) + "/" + string(domain.PhasePlaying)
	if s.advanced[key] {
		return
	}
	if round := room.ActiveRound(); round != nil && round.Advanced[string(domain.PhasePlaying)] {
		return
	}
	next := domain.PhaseScoring
	if room.PlayerCount() <= 2 {
		next = domain.PhaseLeaderboard
	}

	if !s.setStatus(room, next) {
		return
	}
	s.advanced[key] = true
	s.store.Write(roundPath(s.code, roundNum)+"/advanced",
		map[string]interface{}{string(domain.PhasePlaying): true})

	if next == domain.PhaseLeaderboard {
		s.syncPoints(room)
	}

	s.queueEvent(domain.NewEvent(domain.EventRoundClosed, s.code, map[string]interface{}{
		"round": roundNum,
	}))
	s.logger.Info("round closed", "round", roundNum, "next", next)
}

// openChallenge freezes the challenge marks into the challenge set and moves
// to the challenge phase. An empty set skips straight to the leaderboard.
func (s *RoomSession) openChallenge(room *domain.Room) bool {
	round := room.ActiveRound()
	if round == nil {
		return false
	}

	challenges := round.SnapshotChallenges()
	if len(challenges) == 0 {
		if !s.setStatus(room, domain.PhaseLeaderboard) {
			return false
		}
		s.syncPoints(room)
		s.logger.Info("no challenges, skipping to leaderboard", "round", room.CurrentRound)
		return true
	}

	s.store.Write(roundPath(s.code, room.CurrentRound), map[string]interface{}{
		"challenges": challenges,
	})
	if !s.setStatus(room, domain.PhaseChallenge) {
		return false
	}

	s.queueEvent(domain.NewEvent(domain.EventChallengeOpen, s.code, map[string]interface{}{
		"round":      room.CurrentRound,
		"challenges": challenges,
	}))
	s.logger.Info("challenge phase opened", "round", room.CurrentRound, "challenged", len(challenges))
	return true
}

// resolveChallenge tallies the votes into verdicts and moves to the
// leaderboard. Rejected submissions lose the points they were stored with.
func (s *RoomSession) resolveChallenge(room *domain.Room) bool {
	round := room.ActiveRound()
	if round == nil {
		return false
	}

	results := domain.ResolveResults(round, room.PlayerCount(), room.Rules.Verdict)
	round.Results = results

	s.store.Write(roundPath(s.code, room.CurrentRound), map[string]interface{}{
		"results": results,
	})
	if !s.setStatus(room, domain.PhaseLeaderboard) {
		return false
	}
	s.syncPoints(room)

	s.queueEvent(domain.NewEvent(domain.EventResults, s.code, map[string]interface{}{
		"round":   room.CurrentRound,
		"results": results,
	}))
	s.logger.Info("challenge resolved", "round", room.CurrentRound, "results", len(results))
	return true
}

// syncPoints mirrors the computed standings into each player entry so the
// roster always shows current totals.
func (s *RoomSession) syncPoints(room *domain.Room) {
	fields := make(map[string]interface{})
	for _, st := range domain.ComputeStandings(room) {
		fields["players/"+st.PlayerID+"/points"] = st.TotalPoints
	}
	if len(fields) > 0 {
		s.store.Write(roomPath(s.code), fields)
	}
}

// advanceRound leaves the leaderboard: either back to the waiting room for
// the next round or to the finished phase after the last one.
func (s *RoomSession) advanceRound(room *domain.Room) bool {
	if room.CurrentRound >= room.Settings.Rounds {
		if !s.setStatus(room, domain.PhaseFinished) {
			return false
		}
		s.queueEvent(domain.NewEvent(domain.EventGameOver, s.code, domain.ComputeStandings(room)))
		s.logger.Info("game over", "rounds", room.CurrentRound)
		return true
	}

	if !room.Status.CanTransitionTo(domain.PhaseWaiting) {
		return false
	}
	s.store.Write(roomPath(s.code), map[string]interface{}{
		"status":       string(domain.PhaseWaiting),
		"currentRound": room.CurrentRound + 1,
		"words":        nil,
		"bonusIndices": nil,
	})

	s.logger.Info("round advanced", "nextRound", room.CurrentRound+1)
	return true
}
