package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linklogic/internal/docstore"
	"linklogic/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHub(t *testing.T) (*Hub, *docstore.Memory) {
	t.Helper()
	store := docstore.NewMemory()
	hub := NewHub(store, Options{MaxPlayers: 4}, testLogger())
	t.Cleanup(hub.Close)
	return hub, store
}

func newTestRoom(t *testing.T, hub *Hub) *RoomSession {
	t.Helper()
	settings := domain.DefaultSettings()
	settings.Timer = 1000 // keep the round timer out of the way
	session, err := hub.CreateRoom("host-id", "Host", settings, domain.DefaultRules())
	require.NoError(t, err)
	return session
}

// waitForRoom polls the room document until cond holds, since change
// delivery and the host-side reactions run asynchronously.
func waitForRoom(t *testing.T, s *RoomSession, cond func(*domain.Room) bool) *domain.Room {
	t.Helper()
	var room *domain.Room
	require.Eventually(t, func() bool {
		r, err := s.Room()
		if err != nil {
			return false
		}
		if cond(r) {
			room = r
			return true
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	return room
}

func TestCreateRoomSeatsHost(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	room, err := session.Room()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseWaiting, room.Status)
	assert.True(t, room.IsHost("host-id"))
	assert.Len(t, session.Code(), 6)
}

func TestJoin(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.PlayerCount() == 2
	})
	assert.Equal(t, "Ana", room.Players["p1"].PlayerName)
	assert.False(t, room.Players["p1"].IsHost)
}

func TestJoinFullRoom(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	for _, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, session.Join(Ctx{PlayerID: id, PlayerName: id}))
	}
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 4 })

	err := session.Join(Ctx{PlayerID: "p4", PlayerName: "Dan"})
	assert.ErrorIs(t, err, domain.ErrRoomFull)

	assert.NoError(t, session.Join(Ctx{PlayerID: "p3", PlayerName: "p3"}),
		"a seated player can rejoin a full room")
}

func TestJoinOutsideWaiting(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)

	store.Write(roomPath(session.Code()), map[string]interface{}{"status": "leaderboard"})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseLeaderboard })

	err := session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidPhase)
}

func TestUpdateSettings(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	err := session.UpdateSettings(Ctx{PlayerID: "p1"}, domain.GetPreset(9).Settings())
	assert.ErrorIs(t, err, domain.ErrNotHost)

	require.NoError(t, session.UpdateSettings(Ctx{PlayerID: "host-id"}, domain.GetPreset(9).Settings()))
	room := waitForRoom(t, session, func(r *domain.Room) bool { return r.Settings.Level == 9 })
	assert.Equal(t, 14, room.Settings.Words)
}

func TestStartGameOpensFirstRound(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	assert.ErrorIs(t, session.StartGame(Ctx{PlayerID: "p1"}), domain.ErrNotHost)

	require.NoError(t, session.StartGame(Ctx{PlayerID: "host-id"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhasePlaying && len(r.Words) > 0
	})
	assert.Equal(t, 1, room.CurrentRound)
	assert.Len(t, room.Words, room.Settings.Words)
	assert.Len(t, room.BonusIndices, room.Settings.BonusWords)
	require.NotNil(t, room.ActiveRound())
	assert.False(t, room.ActiveRound().StartedAt.IsZero())
}

func TestStartGameRequiresWaiting(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)

	store.Write(roomPath(session.Code()), map[string]interface{}{"status": "playing"})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhasePlaying })

	assert.ErrorIs(t, session.StartGame(Ctx{PlayerID: "host-id"}), domain.ErrInvalidPhase)
}

// seedPlaying puts the room straight into a playing round with a fixed grid
func seedPlaying(t *testing.T, store *docstore.Memory, session *RoomSession, roundNum int, grid []string, bonus []int) {
	t.Helper()
	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":       "playing",
		"currentRound": roundNum,
		"words":        grid,
		"bonusIndices": bonus,
		"rounds/" + domain.RoundKey(roundNum) + "/startedAt": time.Now(),
	})
	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhasePlaying && len(r.Words) == len(grid)
	})
}

func TestSubmitScoresLink(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	grid := []string{"sun", "moon", "star", "sky", "sea", "tree"}
	seedPlaying(t, store, session, 1, grid, []int{2})

	require.NoError(t, session.Submit(Ctx{PlayerID: "host-id", PlayerName: "Host"},
		[]string{"sun", "star", "sky"}, "night"))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		round := r.ActiveRound()
		return round != nil && round.Submissions["host-id"] != nil
	})

	pr := room.ActiveRound().Submissions["host-id"]
	require.Len(t, pr.Submissions, 1)
	// 3 words -> 4 base, index 2 (star) is a bonus tile -> +1
	assert.Equal(t, 5, pr.Submissions[0].Points)
	assert.Equal(t, 5, pr.TotalPoints)
	assert.Equal(t, "night", pr.Submissions[0].LinkWord)
}

func TestSubmitAccumulatesThemedBonus(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	// grid indices 0 and 4 are corners of the 4x5 layout
	grid := make([]string, 20)
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
		"k", "l", "m", "n", "o", "p", "q", "r", "s", "t"}
	copy(grid, names)
	seedPlaying(t, store, session, 2, grid, nil)

	require.NoError(t, session.Submit(Ctx{PlayerID: "host-id", PlayerName: "Host"},
		[]string{"a", "e"}, "cornered")) // indices 0 and 4

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		round := r.ActiveRound()
		return round != nil && round.Submissions["host-id"] != nil
	})

	pr := room.ActiveRound().Submissions["host-id"]
	assert.Equal(t, 2, pr.Submissions[0].Points, "themed rounds have no per-submission bonus")
	assert.Equal(t, 10, pr.BonusPoints, "two corner words reach the first tier")
	assert.Equal(t, 12, pr.TotalPoints)
}

func TestSubmitRejectsOutsidePlaying(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)

	store.Write(roomPath(session.Code()), map[string]interface{}{"status": "scoring"})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseScoring })

	err := session.Submit(Ctx{PlayerID: "host-id"}, []string{"a", "b"}, "link")
	assert.ErrorIs(t, err, domain.ErrRoundClosed)
}

func TestSubmitRejectsAfterDeadline(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)

	// the settings timer is long but the round started far in the past
	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "playing",
		"currentRound":            1,
		"words":                   []string{"sun", "moon"},
		"rounds/round1/startedAt": time.Now().Add(-2000 * time.Second),
	})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status != domain.PhasePlaying })

	err := session.Submit(Ctx{PlayerID: "host-id"}, []string{"sun", "moon"}, "link")
	assert.ErrorIs(t, err, domain.ErrRoundClosed)
}

func TestSubmitRejectsInvalidLink(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedPlaying(t, store, session, 1, []string{"sun", "moon"}, nil)

	err := session.Submit(Ctx{PlayerID: "host-id"}, []string{"sun", "cloud"}, "sky")
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = session.Submit(Ctx{PlayerID: "host-id"}, []string{"sun", "moon"}, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoundCloseTwoPlayerShortcut(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 2 })

	// deadline already passed, so the armed timer fires immediately
	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "playing",
		"currentRound":            1,
		"words":                   []string{"sun", "moon"},
		"rounds/round1/startedAt": time.Now().Add(-2000 * time.Second),
	})

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseLeaderboard
	})
	require.NotNil(t, room.ActiveRound())
	assert.True(t, room.ActiveRound().Advanced[string(domain.PhasePlaying)])
}

func TestRoundCloseGoesToScoringWithThreePlayers(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	require.NoError(t, session.Join(Ctx{PlayerID: "p2", PlayerName: "Ben"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 3 })

	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "playing",
		"currentRound":            1,
		"words":                   []string{"sun", "moon"},
		"rounds/round1/startedAt": time.Now().Add(-2000 * time.Second),
	})

	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseScoring
	})
}

// seedScoring puts the room into the scoring phase with two submitters
func seedScoring(t *testing.T, store *docstore.Memory, session *RoomSession) {
	t.Helper()
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	require.NoError(t, session.Join(Ctx{PlayerID: "p2", PlayerName: "Ben"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 3 })

	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":       "scoring",
		"currentRound": 1,
		"words":        []string{"sun", "moon", "star", "sky"},
		"rounds/round1/submissions": map[string]interface{}{
			"p1": &domain.PlayerRound{
				PlayerName:  "Ana",
				Submissions: []domain.Submission{{Words: []string{"sun", "moon"}, LinkWord: "sky", Points: 2}},
				TotalPoints: 2,
			},
			"p2": &domain.PlayerRound{
				PlayerName:  "Ben",
				Submissions: []domain.Submission{{Words: []string{"star", "sky"}, LinkWord: "night", Points: 2}},
				TotalPoints: 2,
			},
		},
	})
	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseScoring && r.ActiveRound() != nil
	})
}

func TestToggleChallenge(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	err := session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p1", 0)
	assert.ErrorIs(t, err, domain.ErrSelfChallenge)

	err = session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 5)
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	waitForRoom(t, session, func(r *domain.Room) bool {
		round := r.ActiveRound()
		return round != nil && round.MarkedBy("p1", "p2-0")
	})

	// toggling again clears the mark
	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	waitForRoom(t, session, func(r *domain.Room) bool {
		round := r.ActiveRound()
		return round != nil && !round.MarkedBy("p1", "p2-0")
	})
}

func TestScoringAdvancesToChallenge(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseChallenge
	})
	round := room.ActiveRound()
	require.NotNil(t, round)
	assert.Equal(t, map[string][]int{"p2": {0}}, round.Challenges)
	assert.True(t, round.Advanced[string(domain.PhaseScoring)])
}

func TestScoringSkipsToLeaderboardWithoutChallenges(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseLeaderboard
	})
	assert.Empty(t, room.ActiveRound().Challenges)
}

func TestChallengeFlow(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseChallenge })

	t.Run("challenges are locked once snapshotted", func(t *testing.T) {
		err := session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPhase)
	})

	t.Run("only the challenged player defends", func(t *testing.T) {
		assert.ErrorIs(t, session.SubmitDefense(Ctx{PlayerID: "p1"}, 0, "they fit"), domain.ErrValidation)
		require.NoError(t, session.SubmitDefense(Ctx{PlayerID: "p2"}, 0, "stars are in the sky"))
		waitForRoom(t, session, func(r *domain.Room) bool {
			return r.ActiveRound().Defenses["p2-0"] != ""
		})
	})

	t.Run("voting", func(t *testing.T) {
		assert.ErrorIs(t, session.CastVote(Ctx{PlayerID: "p2"}, "p2", 0, domain.VoteAccept), domain.ErrSelfVote)
		assert.ErrorIs(t, session.CastVote(Ctx{PlayerID: "p1"}, "p2", 0, "maybe"), domain.ErrValidation)

		require.NoError(t, session.CastVote(Ctx{PlayerID: "p1"}, "p2", 0, domain.VoteReject))
		// a later vote from the same voter overwrites the earlier one
		require.NoError(t, session.CastVote(Ctx{PlayerID: "p1"}, "p2", 0, domain.VoteAccept))
		require.NoError(t, session.CastVote(Ctx{PlayerID: "host-id"}, "p2", 0, domain.VoteAccept))
		waitForRoom(t, session, func(r *domain.Room) bool {
			votes := r.ActiveRound().Votes["p2-0"]
			return votes["p1"] == domain.VoteAccept && votes["host-id"] == domain.VoteAccept
		})
	})

	t.Run("resolution", func(t *testing.T) {
		require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
		require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))

		room := waitForRoom(t, session, func(r *domain.Room) bool {
			return r.Status == domain.PhaseLeaderboard && r.Players["p2"].Points == 2
		})
		assert.Equal(t, domain.VerdictAccepted, room.ActiveRound().Results["p2-0"])
	})
}

func TestRejectedSubmissionLosesPoints(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseChallenge })

	// single reject vote, no accepts
	require.NoError(t, session.CastVote(Ctx{PlayerID: "p1"}, "p2", 0, domain.VoteReject))
	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.ActiveRound().Votes["p2-0"]["p1"] == domain.VoteReject
	})

	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseLeaderboard && r.Players["p1"].Points == 2
	})
	assert.Equal(t, domain.VerdictRejected, room.ActiveRound().Results["p2-0"])
	assert.Equal(t, 0, room.Players["p2"].Points)

	standings, err := session.Standings()
	require.NoError(t, err)
	assert.Equal(t, "p1", standings[0].PlayerID)
}

func TestScoringWithoutSubmissionsSkipsToLeaderboard(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	require.NoError(t, session.Join(Ctx{PlayerID: "p2", PlayerName: "Ben"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 3 })

	// nobody submitted, so there is no ready gate to wait on
	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "scoring",
		"currentRound":            1,
		"words":                   []string{"sun", "moon", "star", "sky"},
		"rounds/round1/startedAt": time.Now(),
	})

	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseLeaderboard
	})
}

func TestLeaderboardAdvancesToNextRound(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 2 })

	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "leaderboard",
		"currentRound":            1,
		"words":                   []string{"sun", "moon"},
		"bonusIndices":            []int{0, 1, 2},
		"rounds/round1/startedAt": time.Now(),
	})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseLeaderboard })

	require.NoError(t, session.MarkReady(Ctx{PlayerID: "host-id"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseWaiting && r.CurrentRound == 2
	})
	assert.Empty(t, room.Words, "the grid is cleared for the next round")
	assert.Empty(t, room.BonusIndices, "bonus tiles are cleared with the grid")

	require.NoError(t, session.StartGame(Ctx{PlayerID: "host-id"}))
	room = waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhasePlaying && len(r.Words) > 0
	})
	assert.Equal(t, 2, room.CurrentRound)
	assert.Len(t, room.BonusIndices, room.Settings.BonusWords,
		"each round samples its own bonus tiles against the fresh grid")
}

func TestFinalLeaderboardFinishesGame(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 2 })

	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "leaderboard",
		"currentRound":            5,
		"rounds/round5/startedAt": time.Now(),
	})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseLeaderboard })

	require.NoError(t, session.MarkReady(Ctx{PlayerID: "host-id"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))

	waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseFinished
	})
}

func TestAdvanceGuardSetOnlyAfterTransition(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	room, err := session.Room()
	require.NoError(t, err)
	room.CurrentRound = 1
	round := &domain.Round{}

	session.mu.Lock()
	session.advanceOnce(room, round, domain.PhaseScoring, func(r *domain.Room) bool { return false })
	refused := len(session.advanced)
	session.advanceOnce(room, round, domain.PhaseScoring, func(r *domain.Room) bool { return true })
	taken := session.advanced["round1/"+string(domain.PhaseScoring)]
	session.mu.Unlock()

	assert.Zero(t, refused, "a refused transition must stay retryable")
	assert.True(t, taken, "the retry runs and records the advance")

	room = waitForRoom(t, session, func(r *domain.Room) bool {
		rnd, ok := r.Rounds["round1"]
		return ok && rnd.Advanced[string(domain.PhaseScoring)]
	})
	assert.Equal(t, domain.PhaseWaiting, room.Status, "no phase was written by the guard itself")
}

func TestMarkReadyIsIdempotentForAdvance(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	seedScoring(t, store, session)

	require.NoError(t, session.ToggleChallenge(Ctx{PlayerID: "p1"}, "p2", 0))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p1"}))
	require.NoError(t, session.MarkReady(Ctx{PlayerID: "p2"}))

	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseChallenge })

	// a repeated notification of the same ready state must not re-run the
	// transition; the room stays in the challenge phase
	store.Write(roundPath(session.Code(), 1)+"/playersReady", map[string]interface{}{"p1": true})

	time.Sleep(100 * time.Millisecond)
	room, err := session.Room()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseChallenge, room.Status)
}

func TestPlayAgain(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	require.NoError(t, session.Join(Ctx{PlayerID: "p1", PlayerName: "Ana"}))
	waitForRoom(t, session, func(r *domain.Room) bool { return r.PlayerCount() == 2 })

	store.Write(roomPath(session.Code()), map[string]interface{}{
		"status":                  "finished",
		"currentRound":            5,
		"words":                   []string{"sun"},
		"players/p1/points":       42,
		"rounds/round1/startedAt": time.Now(),
	})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseFinished })

	assert.ErrorIs(t, session.PlayAgain(Ctx{PlayerID: "p1"}), domain.ErrNotHost)

	require.NoError(t, session.PlayAgain(Ctx{PlayerID: "host-id"}))

	room := waitForRoom(t, session, func(r *domain.Room) bool {
		return r.Status == domain.PhaseWaiting && r.CurrentRound == 0
	})
	assert.Empty(t, room.Rounds)
	assert.Empty(t, room.Words)
	assert.Equal(t, 0, room.Players["p1"].Points)
	assert.Len(t, room.Players, 2, "players keep their seats")
}

func TestNewGameDeletesRoom(t *testing.T) {
	hub, store := newTestHub(t)
	session := newTestRoom(t, hub)
	code := session.Code()

	store.Write(roomPath(code), map[string]interface{}{"status": "finished"})
	waitForRoom(t, session, func(r *domain.Room) bool { return r.Status == domain.PhaseFinished })

	assert.ErrorIs(t, hub.NewGame(code, Ctx{PlayerID: "p1"}), domain.ErrNotHost)

	require.NoError(t, hub.NewGame(code, Ctx{PlayerID: "host-id"}))

	_, err := hub.GetSession(code)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, ok := store.Read(roomPath(code))
	assert.False(t, ok, "the room document is gone")
}

func TestNewGameRequiresFinished(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	err := hub.NewGame(session.Code(), Ctx{PlayerID: "host-id"})
	assert.ErrorIs(t, err, domain.ErrInvalidPhase)
}

func TestSendChat(t *testing.T) {
	hub, _ := newTestHub(t)
	session := newTestRoom(t, hub)

	assert.ErrorIs(t, session.SendChat(Ctx{PlayerID: "host-id", PlayerName: "Host"}, "   "),
		domain.ErrValidation)

	require.NoError(t, session.SendChat(Ctx{PlayerID: "host-id", PlayerName: "Host"}, "hello"))

	room := waitForRoom(t, session, func(r *domain.Room) bool { return len(r.Chat) == 1 })
	for _, msg := range room.Chat {
		assert.Equal(t, "Host", msg.PlayerName)
		assert.Equal(t, "hello", msg.Message)
	}
}
