package domain

import (
	"math"
	"sort"
)

// TallyCount is the number of selections of one candidate for one position.
type TallyCount struct {
	PositionID  string
	CandidateID string
	Count       int
}

type CandidateResult struct {
	CandidateID string
	Name        string
	Votes       int
}

type PositionResult struct {
	PositionID string
	Title      string
	Candidates []CandidateResult
}

// Results is the tally of a finished election.
type Results struct {
	ElectionID       string
	ElectionTitle    string
	ClubName         string
	TotalBallotsCast int
	Positions        []PositionResult
}

// BuildResults lays the raw counts over the election's configured ballot.
// Every configured candidate appears, with zero if never selected; counts for
// pairs no longer on the ballot are ignored. Candidates are sorted by votes
// descending, ties keeping ballot order.
func BuildResults(e Election, clubName string, counts []TallyCount, totalBallots int) Results {
	type key struct{ pos, cand string }
	byPair := make(map[key]int, len(counts))
	for _, c := range counts {
		byPair[key{c.PositionID, c.CandidateID}] += c.Count
	}

	positions := make([]PositionResult, 0, len(e.Positions))
	for _, p := range e.Positions {
		cands := make([]CandidateResult, 0, len(p.Candidates))
		for _, c := range p.Candidates {
			cands = append(cands, CandidateResult{
				CandidateID: c.UserID,
				Name:        c.Name,
				Votes:       byPair[key{p.ID, c.UserID}],
			})
		}
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].Votes > cands[j].Votes })
		positions = append(positions, PositionResult{PositionID: p.ID, Title: p.Title, Candidates: cands})
	}

	return Results{
		ElectionID:       e.ID,
		ElectionTitle:    e.Title,
		ClubName:         clubName,
		TotalBallotsCast: totalBallots,
		Positions:        positions,
	}
}

// UnknownFaculty labels voters without a faculty in analytics.
const UnknownFaculty = "Unknown"

// Analytics summarises turnout for an election.
type Analytics struct {
	ElectionID          string
	TotalEligibleVoters int
	TotalVotersWhoVoted int
	ParticipationRate   float64
	VotesByFaculty      map[string]int
}

// NewAnalytics builds turnout figures from the eligible voter count and the
// faculty of each voter who voted.
func NewAnalytics(electionID string, eligible int, voterFaculties []string) Analytics {
	byFaculty := make(map[string]int)
	for _, f := range voterFaculties {
		if f == "" {
			f = UnknownFaculty
		}
		byFaculty[f]++
	}
	return Analytics{
		ElectionID:          electionID,
		TotalEligibleVoters: eligible,
		TotalVotersWhoVoted: len(voterFaculties),
		ParticipationRate:   ParticipationRate(len(voterFaculties), eligible),
		VotesByFaculty:      byFaculty,
	}
}

// ParticipationRate returns voted/eligible as a percentage rounded to two
// decimals, or 0 when nobody is eligible.
func ParticipationRate(voted, eligible int) float64 {
	if eligible <= 0 {
		return 0
	}
	return math.Round(float64(voted)/float64(eligible)*10000) / 100
}
