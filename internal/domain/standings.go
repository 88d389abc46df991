package domain

import "sort"

// Standing is one row of the ranked score view
type Standing struct {
	PlayerID    string `json:"playerId"`
	PlayerName  string `json:"playerName"`
	TotalPoints int    `json:"totalPoints"`
}

// ComputeStandings projects the ranked total-score view from the room's
// round history. Every seated player appears, at zero if they never
// submitted. Each round contributes the player's recorded totalPoints minus
// the stored points of any of their submissions with a rejected verdict.
// Sort is descending by points with name ascending as tie-break, so the
// winner (first element) is deterministic.
func ComputeStandings(room *Room) []Standing {
	totals := make(map[string]int, len(room.Players))
	for id := range room.Players {
		totals[id] = 0
	}

	for _, round := range room.Rounds {
		for playerID, pr := range round.Submissions {
			if _, known := totals[playerID]; !known {
				continue
			}
			points := pr.TotalPoints
			for key, verdict := range round.Results {
				if verdict != VerdictRejected {
					continue
				}
				challengedID, idx, ok := ParseSubmissionKey(key)
				if !ok || challengedID != playerID {
					continue
				}
				if idx < len(pr.Submissions) {
					points -= pr.Submissions[idx].Points
				}
			}
			totals[playerID] += points
		}
	}

	standings := make([]Standing, 0, len(totals))
	for id, points := range totals {
		name := ""
		if p := room.Players[id]; p != nil {
			name = p.PlayerName
		}
		standings = append(standings, Standing{PlayerID: id, PlayerName: name, TotalPoints: points})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].PlayerName < standings[j].PlayerName
	})

	return standings
}

// Winner returns the top standing, false for an empty room
func Winner(room *Room) (Standing, bool) {
	standings := ComputeStandings(room)
	if len(standings) == 0 {
		return Standing{}, false
	}
	return standings[0], true
}
