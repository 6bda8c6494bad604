package config

import (
	"os"

	"github.com/dd2482/submitcheck/pkg/domain/interfaces"
	githubinfra "github.com/dd2482/submitcheck/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GitHub holds the credential configuration for the forge client. Either a
// personal access token or GitHub App credentials may be supplied; with
// neither, the client is unauthenticated and only read operations against
// public repositories work.
type GitHub struct {
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	BaseURL        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Aliases:     []string{"s"},
			Usage:       "GitHub access token used for labels, comments and statuses",
			Destination: &c.Token,
			Sources:     cli.EnvVars("SUBMITCHECK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (alternative to a token)",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("SUBMITCHECK_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("SUBMITCHECK_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "Path to the GitHub App private key file",
			Destination: &c.PrivateKeyPath,
			Sources:     cli.EnvVars("SUBMITCHECK_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("SUBMITCHECK_GITHUB_API_URL"),
		},
	}
}

// NewClient builds a forge client from the configured credentials
func (c *GitHub) NewClient() (interfaces.ForgeClient, error) {
	var opts []githubinfra.Option
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}

	if c.AppID != 0 {
		if c.InstallationID == 0 || c.PrivateKeyPath == "" {
			return nil, goerr.New("GitHub App auth requires installation ID and private key")
		}
		privateKey, err := os.ReadFile(c.PrivateKeyPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read private key", goerr.V("path", c.PrivateKeyPath))
		}
		return githubinfra.NewAppClient(c.AppID, c.InstallationID, privateKey, opts...)
	}

	return githubinfra.NewClient(c.Token, opts...)
}
