/*
Package votesdk is a Go client for the ballotbox voting service.

# Overview

The package carries the JSON wire types shared with the server and a small
client over them. Public operations are available on a bare Client:

	client := votesdk.NewClient("https://vote.example.com")

	health, err := client.GetLiveness(ctx)
	clubs, err := client.ListClubs(ctx)

Register or Login returns an AuthResponse whose token the client keeps for
authenticated calls:

	auth, err := client.Login(ctx, votesdk.LoginRequest{StudentID: "z1234567", Password: pw})

	active, err := client.ListActiveElections(ctx)
	err = client.CastVote(ctx, electionID, votesdk.CastVoteRequest{Selections: sels})

A token obtained elsewhere can be attached with WithToken.

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the server's error code:

	var apiErr *votesdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		// already voted
	}
*/
package votesdk
