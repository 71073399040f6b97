package domain

import "time"

// Selection is one (position, candidate) pick on a ballot.
type Selection struct {
	PositionID  string
	CandidateID string
}

// Ballot is an anonymous vote. It carries no reference to the voter.
type Ballot struct {
	ID         string
	ElectionID string
	Selections []Selection
	CreatedAt  time.Time
}
