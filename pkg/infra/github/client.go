package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/dd2482/submitcheck/pkg/domain/interfaces"
	"github.com/dd2482/submitcheck/pkg/domain/model"
	"github.com/dd2482/submitcheck/pkg/domain/types"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

type client struct {
	githubClient  *github.Client
	authenticated bool
}

// Option configures the client
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL redirects API traffic to the given base URL, mainly for tests
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a GitHub client authenticated with a personal access
// token. An empty token yields an unauthenticated client, which can still
// perform the read operations against public repositories.
func NewClient(token string, opts ...Option) (interfaces.ForgeClient, error) {
	cfg := applyOptions(opts)

	httpClient := cfg.httpClient
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		octx := context.Background()
		if httpClient != nil {
			octx = context.WithValue(octx, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(octx, ts)
	}

	githubClient := github.NewClient(httpClient)
	if err := setBaseURL(githubClient, cfg.baseURL); err != nil {
		return nil, err
	}

	return &client{
		githubClient:  githubClient,
		authenticated: token != "",
	}, nil
}

// NewAppClient creates a GitHub client authenticated as a GitHub App
// installation
func NewAppClient(appID, installationID int64, privateKey []byte, opts ...Option) (interfaces.ForgeClient, error) {
	cfg := applyOptions(opts)

	transport := http.DefaultTransport
	if cfg.httpClient != nil && cfg.httpClient.Transport != nil {
		transport = cfg.httpClient.Transport
	}

	itr, err := ghinstallation.New(transport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport")
	}

	githubClient := github.NewClient(&http.Client{Transport: itr})
	if err := setBaseURL(githubClient, cfg.baseURL); err != nil {
		return nil, err
	}

	return &client{
		githubClient:  githubClient,
		authenticated: true,
	}, nil
}

func applyOptions(opts []Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func setBaseURL(githubClient *github.Client, baseURL string) error {
	if baseURL == "" {
		return nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid API base URL", goerr.V("base_url", baseURL))
	}
	githubClient.BaseURL = parsed
	return nil
}

// Authenticated reports whether the client carries a credential
func (c *client) Authenticated() bool {
	return c.authenticated
}

// GetRepository fetches repository metadata. Visibility fails closed: when
// the private field is absent the repository is reported as private.
func (c *client) GetRepository(ctx context.Context, owner, name string) (*model.RepoInfo, error) {
	repo, _, err := c.githubClient.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", name))
	}

	private := true
	if repo.Private != nil {
		private = *repo.Private
	}

	return &model.RepoInfo{
		FullName: repo.GetFullName(),
		Private:  private,
	}, nil
}

// ListChangedFiles lists all files changed by a pull request, following
// pagination
func (c *client) ListChangedFiles(ctx context.Context, owner, repo string, number int) ([]model.ChangedFile, error) {
	var files []model.ChangedFile

	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := c.githubClient.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull request files",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
		}

		for _, f := range page {
			files = append(files, model.ChangedFile{
				Path:   f.GetFilename(),
				Status: f.GetStatus(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

// GetRawFileContent fetches and decodes the content of a single file at a ref
func (c *client) GetRawFileContent(ctx context.Context, owner, repo, ref, path string) (string, error) {
	file, _, _, err := c.githubClient.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to get file content",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("ref", ref), goerr.V("path", path))
	}
	if file == nil {
		return "", goerr.New("path is not a file", goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode file content", goerr.V("path", path))
	}

	return content, nil
}

// SetLabels adds labels to a pull request
func (c *client) SetLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	if _, _, err := c.githubClient.Issues.AddLabelsToIssue(ctx, owner, repo, number, labels); err != nil {
		return goerr.Wrap(err, "failed to set labels",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number), goerr.V("labels", labels))
	}
	return nil
}

// PostComment posts a comment on a pull request and returns its HTML URL
func (c *client) PostComment(ctx context.Context, owner, repo string, number int, body string) (string, error) {
	comment, _, err := c.githubClient.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to post comment",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
	}

	return comment.GetHTMLURL(), nil
}

// SetCommitStatus sets a commit status on the given SHA
func (c *client) SetCommitStatus(ctx context.Context, owner, repo, sha string, status model.CommitStatus) error {
	repoStatus := &github.RepoStatus{
		State:       github.Ptr(string(status.State)),
		Description: github.Ptr(status.Description),
		Context:     github.Ptr(types.StatusContext),
	}
	if status.TargetURL != "" {
		repoStatus.TargetURL = github.Ptr(status.TargetURL)
	}

	if _, _, err := c.githubClient.Repositories.CreateStatus(ctx, owner, repo, sha, repoStatus); err != nil {
		return goerr.Wrap(err, "failed to set commit status",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("sha", sha), goerr.V("state", status.State))
	}
	return nil
}
