// Command votectl is a small operator client for the vote service. It signs
// in, lists elections and prints results and turnout as tables.
//
//	votectl login -id s123 -password ...    # prints a token for VOTECTL_TOKEN
//	votectl elections [-club <id>]
//	votectl results <electionId>
//	votectl analytics <electionId>
//	votectl health
//	votectl keygen -out signing.pem
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

const defaultURL = "http://localhost:8080"

type command struct {
	usage string
	run   func(ctx context.Context, env *env, args []string) error
}

// env is what every command gets to work with.
type env struct {
	client *votesdk.Client
	out    io.Writer
}

var commands = map[string]command{
	"login":     {"login -id <studentId> -password <password>", runLogin},
	"elections": {"elections [-club <clubId>]", runElections},
	"results":   {"results <electionId>", runResults},
	"analytics": {"analytics <electionId>", runAnalytics},
	"health":    {"health", runHealth},
	"keygen":    {"keygen -out <path>", runKeygen},
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "votectl: failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// os.Exit skips deferred calls.
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "votectl: unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	baseURL := os.Getenv("VOTECTL_URL")
	if baseURL == "" {
		baseURL = defaultURL
	}
	client := votesdk.NewClient(baseURL).WithToken(os.Getenv("VOTECTL_TOKEN"))

	if err := cmd.run(ctx, &env{client: client, out: stdout}, args[1:]); err != nil {
		fmt.Fprintf(stderr, "votectl %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: votectl <command> [flags]")
	for _, name := range []string{"login", "elections", "results", "analytics", "health", "keygen"} {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "environment: VOTECTL_URL (default "+defaultURL+"), VOTECTL_TOKEN")
}
