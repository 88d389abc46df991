package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRoom(players map[string]string) *Room {
	room := NewRoom("host", "Host", DefaultSettings(), DefaultRules())
	for id, name := range players {
		room.Players[id] = NewPlayer(name, false)
	}
	return room
}

func TestComputeStandingsEveryPlayerAppears(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Ana", "p2": "Ben"})

	standings := ComputeStandings(room)

	assert.Len(t, standings, 3)
	for _, st := range standings {
		assert.Equal(t, 0, st.TotalPoints, "players start at zero before any round")
	}
}

func TestComputeStandingsSumsRounds(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Ana"})
	room.Rounds = map[string]*Round{
		"round1": {Submissions: map[string]*PlayerRound{
			"p1":   {TotalPoints: 7},
			"host": {TotalPoints: 3},
		}},
		"round2": {Submissions: map[string]*PlayerRound{
			"p1": {TotalPoints: 5},
		}},
	}

	standings := ComputeStandings(room)

	assert.Equal(t, "p1", standings[0].PlayerID)
	assert.Equal(t, 12, standings[0].TotalPoints)
	assert.Equal(t, "host", standings[1].PlayerID)
	assert.Equal(t, 3, standings[1].TotalPoints)
}

func TestComputeStandingsSubtractsRejected(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Ana"})
	room.Rounds = map[string]*Round{
		"round1": {
			Submissions: map[string]*PlayerRound{
				"p1": {
					Submissions: []Submission{{Points: 3}, {Points: 2}},
					TotalPoints: 5,
				},
			},
			Results: map[string]string{
				"p1-1": VerdictRejected,
			},
		},
	}

	standings := ComputeStandings(room)

	assert.Equal(t, "p1", standings[0].PlayerID)
	assert.Equal(t, 3, standings[0].TotalPoints, "rejected submission loses its stored points")
}

func TestComputeStandingsAcceptedKeepPoints(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Ana"})
	room.Rounds = map[string]*Round{
		"round1": {
			Submissions: map[string]*PlayerRound{
				"p1": {Submissions: []Submission{{Points: 4}}, TotalPoints: 4},
			},
			Results: map[string]string{"p1-0": VerdictAccepted},
		},
	}

	assert.Equal(t, 4, ComputeStandings(room)[0].TotalPoints)
}

func TestComputeStandingsTieBreakByName(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Zoe", "p2": "Amy"})
	room.Rounds = map[string]*Round{
		"round1": {Submissions: map[string]*PlayerRound{
			"p1": {TotalPoints: 6},
			"p2": {TotalPoints: 6},
		}},
	}

	standings := ComputeStandings(room)

	assert.Equal(t, "Amy", standings[0].PlayerName)
	assert.Equal(t, "Zoe", standings[1].PlayerName)
}

func TestComputeStandingsIgnoresUnseatedSubmitters(t *testing.T) {
	room := testRoom(nil)
	room.Rounds = map[string]*Round{
		"round1": {Submissions: map[string]*PlayerRound{
			"ghost": {TotalPoints: 99},
		}},
	}

	standings := ComputeStandings(room)

	assert.Len(t, standings, 1)
	assert.Equal(t, "host", standings[0].PlayerID)
}

func TestWinner(t *testing.T) {
	room := testRoom(map[string]string{"p1": "Ana"})
	room.Rounds = map[string]*Round{
		"round1": {Submissions: map[string]*PlayerRound{"p1": {TotalPoints: 9}}},
	}

	winner, ok := Winner(room)
	assert.True(t, ok)
	assert.Equal(t, "p1", winner.PlayerID)

	_, ok = Winner(&Room{})
	assert.False(t, ok)
}
