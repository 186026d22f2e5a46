// Package cli holds helpers for CLI command tests. It lives apart from
// testutil so service tests can import testutil without importing app.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/embudo/internal/app"
	"github.com/thenoetrevino/embudo/internal/config"
	"github.com/thenoetrevino/embudo/internal/database"
	"github.com/thenoetrevino/embudo/internal/testutil"
)

// SetupCLITest creates an in-memory store and an App over it
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo, config.Default())
}

// ExecuteCLICommand runs cmd with args against testApp and returns stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}
	cmd.SetContext(context.WithValue(context.Background(), testutil.TestAppKey, testApp))
	return testutil.ExecuteCommand(t, cmd, args...)
}
