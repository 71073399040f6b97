package http

import (
	"github.com/aussiebroadwan/ballotbox/internal/vote/domain"
	"github.com/aussiebroadwan/ballotbox/internal/vote/service"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

func toUserResponse(u domain.User) votesdk.UserResponse {
	return votesdk.UserResponse{
		ID:          u.ID,
		StudentID:   u.StudentID,
		Email:       u.Email,
		Name:        u.Name,
		Faculty:     u.Faculty,
		Gender:      u.Gender,
		YearOfStudy: u.YearOfStudy,
		Roles:       domain.RoleStrings(u.Roles),
		CreatedAt:   u.CreatedAt,
	}
}

func toUsersResponse(users []domain.User) votesdk.ListUsersResponse {
	out := votesdk.ListUsersResponse{Users: make([]votesdk.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, toUserResponse(u))
	}
	return out
}

func toAuthResponse(s service.Session) votesdk.AuthResponse {
	return votesdk.AuthResponse{
		Token:     s.Token.Token,
		TokenType: s.Token.TokenType,
		ExpiresIn: s.Token.ExpiresIn,
		ExpiresAt: s.Token.ExpiresAt,
		User:      toUserResponse(s.User),
	}
}

func toRegistration(req votesdk.RegisterRequest) domain.Registration {
	return domain.Registration{
		StudentID:   req.StudentID,
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Faculty:     req.Faculty,
		Gender:      req.Gender,
		YearOfStudy: req.YearOfStudy,
	}
}

func toClubResponse(c domain.Club) votesdk.ClubResponse {
	return votesdk.ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		LogoURL:     c.LogoURL,
		Admins:      nonNil(c.Admins),
		Members:     nonNil(c.Members),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toClubsResponse(clubs []domain.Club) votesdk.ListClubsResponse {
	out := votesdk.ListClubsResponse{Clubs: make([]votesdk.ClubResponse, 0, len(clubs))}
	for _, c := range clubs {
		out.Clubs = append(out.Clubs, toClubResponse(c))
	}
	return out
}

func toPositions(in []votesdk.PositionRequest) []domain.Position {
	out := make([]domain.Position, 0, len(in))
	for _, p := range in {
		pos := domain.Position{ID: p.ID, Title: p.Title, MaxSelections: p.MaxSelections}
		for _, c := range p.Candidates {
			pos.Candidates = append(pos.Candidates, domain.Candidate{UserID: c.CandidateID, Statement: c.Statement})
		}
		out = append(out, pos)
	}
	return out
}

func toElection(req votesdk.CreateElectionRequest) domain.Election {
	return domain.Election{
		ClubID:      req.ClubID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Positions:   toPositions(req.Positions),
	}
}

func toElectionUpdate(req votesdk.UpdateElectionRequest) domain.ElectionUpdate {
	upd := domain.ElectionUpdate{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		upd.Status = &s
	}
	if req.Positions != nil {
		p := toPositions(*req.Positions)
		upd.Positions = &p
	}
	return upd
}

func toElectionResponse(e domain.Election) votesdk.ElectionResponse {
	out := votesdk.ElectionResponse{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		Status:      string(e.Status),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Positions:   make([]votesdk.PositionResponse, 0, len(e.Positions)),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, p := range e.Positions {
		pos := votesdk.PositionResponse{
			ID:            p.ID,
			Title:         p.Title,
			MaxSelections: p.MaxSelections,
			Candidates:    make([]votesdk.CandidateResponse, 0, len(p.Candidates)),
		}
		for _, c := range p.Candidates {
			pos.Candidates = append(pos.Candidates, votesdk.CandidateResponse{
				CandidateID: c.UserID,
				Name:        c.Name,
				Statement:   c.Statement,
			})
		}
		out.Positions = append(out.Positions, pos)
	}
	return out
}

func toElectionsResponse(elections []domain.Election) votesdk.ListElectionsResponse {
	out := votesdk.ListElectionsResponse{Elections: make([]votesdk.ElectionResponse, 0, len(elections))}
	for _, e := range elections {
		out.Elections = append(out.Elections, toElectionResponse(e))
	}
	return out
}

func toSelections(in []votesdk.SelectionRequest) []domain.Selection {
	out := make([]domain.Selection, 0, len(in))
	for _, s := range in {
		out = append(out, domain.Selection{PositionID: s.PositionID, CandidateID: s.CandidateID})
	}
	return out
}

func toResultsResponse(res domain.Results) votesdk.ResultsResponse {
	out := votesdk.ResultsResponse{
		ElectionID:       res.ElectionID,
		ElectionTitle:    res.ElectionTitle,
		ClubName:         res.ClubName,
		TotalBallotsCast: res.TotalBallotsCast,
		Results:          make([]votesdk.PositionResult, 0, len(res.Positions)),
	}
	for _, p := range res.Positions {
		pr := votesdk.PositionResult{
			PositionID:    p.PositionID,
			PositionTitle: p.Title,
			Candidates:    make([]votesdk.CandidateResult, 0, len(p.Candidates)),
		}
		for _, c := range p.Candidates {
			pr.Candidates = append(pr.Candidates, votesdk.CandidateResult{
				CandidateID: c.CandidateID,
				Name:        c.Name,
				VoteCount:   c.Votes,
			})
		}
		out.Results = append(out.Results, pr)
	}
	return out
}

func toAnalyticsResponse(a domain.Analytics) votesdk.AnalyticsResponse {
	return votesdk.AnalyticsResponse{
		ElectionID:          a.ElectionID,
		TotalEligibleVoters: a.TotalEligibleVoters,
		TotalVotersWhoVoted: a.TotalVotersWhoVoted,
		ParticipationRate:   a.ParticipationRate,
		VotesByFaculty:      a.VotesByFaculty,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
