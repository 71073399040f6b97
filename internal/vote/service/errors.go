package service

import "errors"

// Voting.
var (
	ErrElectionNotFound    = errors.New("election not found")
	ErrElectionNotActive   = errors.New("election is not currently active")
	ErrNoSelections        = errors.New("vote selections are required")
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrNotEligible         = errors.New("not a member of this club and not eligible to vote")
	ErrAlreadyVoted        = errors.New("already voted in this election")
	ErrVoteNotRecorded     = errors.New("vote was not recorded")
	ErrResultsNotAvailable = errors.New("results are not available until the voting period has ended")
)

// Administration.
var (
	ErrForbidden     = errors.New("forbidden")
	ErrClubNotFound  = errors.New("club not found")
	ErrClubNameTaken = errors.New("a club with that name already exists")
	ErrLastAdmin     = errors.New("a club must keep at least one admin")
	ErrNotMember     = errors.New("user is not a member of this club")
	ErrEmptyUpdate   = errors.New("no update data provided")
	ErrBallotsCast   = errors.New("ballots have been cast; positions can no longer change")
)

// Accounts.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("a user with that student id or email already exists")
	ErrInvalidCredentials = errors.New("invalid student id or password")
	ErrSoleClubAdmin      = errors.New("user is the only admin of one or more clubs")
)
