package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/aussiebroadwan/ballotbox/pkg/cryptox"
	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

var errElectionID = errors.New("an election id is required")

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runLogin(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("login")
	studentID := fs.String("id", "", "student id")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *studentID == "" || *password == "" {
		return errors.New("-id and -password are required")
	}

	resp, err := e.client.Login(ctx, votesdk.LoginRequest{StudentID: *studentID, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Signed in as %s (%s), token expires %s\n",
		resp.User.Name, resp.User.StudentID, resp.ExpiresAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(e.out, "export VOTECTL_TOKEN=%s\n", resp.Token)
	return nil
}

func runElections(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("elections")
	clubID := fs.String("club", "", "list every election of this club instead of the active ones")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		resp *votesdk.ListElectionsResponse
		err  error
	)
	if *clubID != "" {
		resp, err = e.client.ListClubElections(ctx, *clubID)
	} else {
		resp, err = e.client.ListActiveElections(ctx)
	}
	if err != nil {
		return err
	}

	renderElections(e.out, resp.Elections)
	return nil
}

func runResults(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return errElectionID
	}

	resp, err := e.client.GetResults(ctx, args[0])
	if err != nil {
		return err
	}

	renderResults(e.out, resp)
	return nil
}

func runAnalytics(ctx context.Context, e *env, args []string) error {
	if len(args) != 1 {
		return errElectionID
	}

	resp, err := e.client.GetAnalytics(ctx, args[0])
	if err != nil {
		return err
	}

	renderAnalytics(e.out, resp)
	return nil
}

func runHealth(ctx context.Context, e *env, _ []string) error {
	resp, err := e.client.GetReadiness(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "status=%s version=%s uptime=%s\n", resp.Status, resp.Version, resp.Uptime)
	if resp.Checks != nil {
		fmt.Fprintf(e.out, "database=%s signer=%s\n", resp.Checks.Database, resp.Checks.Signer)
	}
	return nil
}

// runKeygen writes the Ed25519 signing key the server reads from
// VOTE_SIGNING_KEY_FILE. An existing key is left untouched.
func runKeygen(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("keygen")
	out := fs.String("out", "signing.pem", "key file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, created, err := cryptox.LoadOrCreateEd25519Key(*out)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(e.out, "wrote new signing key to %s\n", *out)
	} else {
		fmt.Fprintf(e.out, "%s already holds a signing key\n", *out)
	}
	return nil
}
