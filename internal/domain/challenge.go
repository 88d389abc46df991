package domain

// ResolveVerdict decides a single challenged submission from its vote map.
// Pure: the same votes always produce the same verdict. Under the majority
// rule a submission needs at least one vote, with accepts making up half or
// more of the total; no votes means rejected.
func ResolveVerdict(votes map[string]string, playerCount int, policy VerdictPolicy) string {
	if policy == VerdictForceAcceptTwoPlayers && playerCount == 2 {
		return VerdictAccepted
	}

	accepts, total := 0, 0
	for _, v := range votes {
		switch v {
		case VoteAccept:
			accepts++
			total++
		case VoteReject:
			total++
		}
	}

	if total > 0 && float64(accepts)/float64(total) >= 0.5 {
		return VerdictAccepted
	}
	return VerdictRejected
}

// ResolveResults computes the verdict for every challenged submission in the
// round. Submissions that were never challenged get no entry; their points
// stand implicitly.
func ResolveResults(round *Round, playerCount int, policy VerdictPolicy) map[string]string {
	results := make(map[string]string)
	for challengedID, indices := range round.Challenges {
		for _, idx := range indices {
			key := SubmissionKey(challengedID, idx)
			results[key] = ResolveVerdict(round.Votes[key], playerCount, policy)
		}
	}
	return results
}
