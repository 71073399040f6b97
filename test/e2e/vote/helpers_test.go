package vote_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/ballotbox/pkg/votesdk"
)

/*
 * Common constants and helper functions for vote service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "ballotbox-vote-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminStudentID = "admin"
	adminPassword  = "Admin123!"
	memberPassword = "Member123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Vote Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Vote Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/vote/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"BOOTSTRAP_TOKEN":      bootstrapToken,
		"VOTE_DATABASE_FILE":   "/data/vote.db",
		"VOTE_PEPPER_FILE":     "/data/pepper",
		"VOTE_ISSUER":          "ballotbox-e2e",
		"VOTE_CLOSER_INTERVAL": "2s",
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",
	}
}

// relaxedRateLimits raises the credential limits; tests register many
// accounts from a single address.
func relaxedRateLimits(env map[string]string) map[string]string {
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	return env
}

// setupVoteContainer starts the vote service with relaxed rate limits and
// returns its base URL.
func setupVoteContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, relaxedRateLimits(baseEnv()))
}

// setupVoteContainerWithDefaultRateLimits starts the vote service with the
// production rate limits. Only the rate limit tests should need it.
func setupVoteContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// bootstrapAdmin creates the system administrator and returns a client
// holding its token.
func bootstrapAdmin(t *testing.T, baseURL string) (*votesdk.Client, *votesdk.UserResponse) {
	t.Helper()

	client := votesdk.NewClient(baseURL)
	resp, err := client.Bootstrap(t.Context(), bootstrapToken, votesdk.RegisterRequest{
		StudentID: adminStudentID,
		Email:     "admin@ballotbox.test",
		Password:  adminPassword,
		Name:      "Administrator",
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.NotEmpty(t, resp.Token)
	require.Contains(t, resp.User.Roles, "systemAdmin")

	return client, &resp.User
}

// registerMember registers a voter and returns a client holding its token.
func registerMember(t *testing.T, baseURL, studentID, faculty string) (*votesdk.Client, *votesdk.UserResponse) {
	t.Helper()

	client := votesdk.NewClient(baseURL)
	resp, err := client.Register(t.Context(), votesdk.RegisterRequest{
		StudentID: studentID,
		Email:     studentID + "@uni.test",
		Password:  memberPassword,
		Name:      "Student " + studentID,
		Faculty:   faculty,
	})
	require.NoError(t, err, "Registration of %s should succeed", studentID)
	assertAuthResponse(t, resp)

	return client, &resp.User
}

func assertAuthResponse(t *testing.T, resp *votesdk.AuthResponse) {
	t.Helper()
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.Token, "Token should not be empty")
	require.Equal(t, "Bearer", resp.TokenType)
	require.Positive(t, resp.ExpiresIn)
	require.NotEmpty(t, resp.User.ID)
}

func assertHealthy(t *testing.T, health *votesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks err is an *votesdk.APIError with the given status
// and error code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *votesdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %v", err)
	if code != "" {
		require.Equal(t, code, apiErr.Code, "unexpected error code: %v", err)
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	assertAPIError(t, err, status, "")
}
