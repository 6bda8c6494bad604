package config_test

import (
	"context"
	"testing"

	"github.com/dd2482/submitcheck/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parseGitHubFlags runs a throwaway command so the flag values land in the
// config struct the same way they do in the real CLI
func parseGitHubFlags(t *testing.T, cfg *config.GitHub, args ...string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}

	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestGitHub_Flags(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		var cfg config.GitHub
		parseGitHubFlags(t, &cfg, "--github-token", "gh-token")
		gt.Value(t, cfg.Token).Equal("gh-token")
	})

	t.Run("app credentials bind as 64-bit IDs", func(t *testing.T) {
		var cfg config.GitHub
		parseGitHubFlags(t, &cfg,
			"--github-app-id", "123456",
			"--github-installation-id", "9876543210",
			"--github-private-key", "/tmp/key.pem",
		)
		gt.Value(t, cfg.AppID).Equal(int64(123456))
		gt.Value(t, cfg.InstallationID).Equal(int64(9876543210))
		gt.Value(t, cfg.PrivateKeyPath).Equal("/tmp/key.pem")
	})
}

func TestGitHub_NewClient(t *testing.T) {
	t.Run("token client", func(t *testing.T) {
		cfg := &config.GitHub{Token: "gh-token"}
		client, err := cfg.NewClient()
		gt.NoError(t, err)
		gt.Value(t, client.Authenticated()).Equal(true)
	})

	t.Run("no credential yields unauthenticated client", func(t *testing.T) {
		cfg := &config.GitHub{}
		client, err := cfg.NewClient()
		gt.NoError(t, err)
		gt.Value(t, client.Authenticated()).Equal(false)
	})

	t.Run("app auth requires installation ID and key", func(t *testing.T) {
		cfg := &config.GitHub{AppID: 123456}
		_, err := cfg.NewClient()
		gt.Error(t, err)
	})

	t.Run("app auth with missing key file", func(t *testing.T) {
		cfg := &config.GitHub{
			AppID:          123456,
			InstallationID: 9876543210,
			PrivateKeyPath: "/nonexistent/key.pem",
		}
		_, err := cfg.NewClient()
		gt.Error(t, err)
	})
}
